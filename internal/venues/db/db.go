package db

import (
	"context"

	"github.com/uptrace/bun"

	"gigboard/internal/models"
)

type DB struct {
	Bun *bun.DB
}

func (d *DB) ListVenues() ([]models.Venue, error) {
	var venues []models.Venue
	err := d.Bun.NewSelect().
		Model(&venues).
		Order("name ASC").
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return venues, nil
}

func (d *DB) GetVenueByName(name string) (*models.Venue, error) {
	var venue models.Venue
	err := d.Bun.NewSelect().
		Model(&venue).
		Where("name = ?", name).
		Limit(1).
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return &venue, nil
}
