package db

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	"gigboard/internal/models"
)

type DB struct {
	Bun *bun.DB
}

// ListPublished returns published events on or after from, earliest
// first, with the venue relation joined.
func (d *DB) ListPublished(from time.Time) ([]models.Event, error) {
	var events []models.Event
	err := d.Bun.NewSelect().
		Model(&events).
		Relation("Venue").
		Where("event.status = ?", models.StatusPublished).
		Where("event.event_date >= ?", from).
		Order("event_date ASC").
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return events, nil
}

// ListAll returns every event regardless of status, earliest first.
func (d *DB) ListAll() ([]models.Event, error) {
	var events []models.Event
	err := d.Bun.NewSelect().
		Model(&events).
		Relation("Venue").
		Order("event_date ASC").
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (d *DB) GetEventByID(id string) (*models.Event, error) {
	var event models.Event
	err := d.Bun.NewSelect().
		Model(&event).
		Relation("Venue").
		Where("event.id = ?", id).
		Limit(1).
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (d *DB) CreateEvent(event models.Event) error {
	_, err := d.Bun.NewInsert().Model(&event).Exec(context.Background())
	return err
}

func (d *DB) UpdateEvent(event models.Event) error {
	_, err := d.Bun.NewUpdate().
		Model(&event).
		Column("artist_name", "artist_bio", "venue_id", "venue_name",
			"event_date", "genre", "vibe", "cover", "ticket_link",
			"recurring", "status", "source", "verified_at").
		Where("id = ?", event.ID).
		Exec(context.Background())
	return err
}

// DeleteEvent removes an event by id. Deleting an id that does not
// exist is a no-op, not an error.
func (d *DB) DeleteEvent(id string) error {
	_, err := d.Bun.NewDelete().
		Model((*models.Event)(nil)).
		Where("id = ?", id).
		Exec(context.Background())
	return err
}
