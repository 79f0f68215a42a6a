package db

import (
	"context"

	"github.com/uptrace/bun"

	"gigboard/internal/models"
)

type DB struct {
	Bun *bun.DB
}

func (d *DB) CreateSubmission(submission models.Submission) error {
	_, err := d.Bun.NewInsert().Model(&submission).Exec(context.Background())
	return err
}

// ListSubmissions returns every submission, newest first.
func (d *DB) ListSubmissions() ([]models.Submission, error) {
	var submissions []models.Submission
	err := d.Bun.NewSelect().
		Model(&submissions).
		Order("created_at DESC").
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return submissions, nil
}

func (d *DB) GetSubmissionByID(id string) (*models.Submission, error) {
	var submission models.Submission
	err := d.Bun.NewSelect().
		Model(&submission).
		Where("id = ?", id).
		Limit(1).
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

func (d *DB) UpdateSubmissionStatus(id, status string) error {
	_, err := d.Bun.NewUpdate().
		Model((*models.Submission)(nil)).
		Set("status = ?", status).
		Where("id = ?", id).
		Exec(context.Background())
	return err
}
