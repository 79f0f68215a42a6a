package models

import (
	"github.com/uptrace/bun"
)

type Venue struct {
	bun.BaseModel `bun:"table:venues"`

	ID      string `bun:"id,pk" json:"id"`
	Name    string `bun:"name,unique,notnull" json:"name"`
	Address string `bun:"address,nullzero" json:"address,omitempty"`
	Color   string `bun:"color,nullzero" json:"color,omitempty"`
}
