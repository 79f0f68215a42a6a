package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Report issue types.
const (
	IssueInaccurate  = "inaccurate"
	IssueCancelled   = "cancelled"
	IssueTimeChanged = "time_changed"
	IssueDuplicate   = "duplicate"
	IssueOther       = "other"
)

// Report statuses.
const (
	ReportPending  = "pending"
	ReportResolved = "resolved"
)

// Report flags a data-quality issue against a published event.
type Report struct {
	bun.BaseModel `bun:"table:reports"`

	ID          string    `bun:"id,pk" json:"id"`
	EventID     string    `bun:"event_id,notnull" json:"event_id"`
	IssueType   string    `bun:"issue_type,notnull" json:"issue_type"`
	Description string    `bun:"description,nullzero" json:"description,omitempty"`
	Status      string    `bun:"status,notnull" json:"status"`
	CreatedAt   time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`

	Event *Event `bun:"rel:belongs-to,join:event_id=id" json:"events,omitempty"`
}
