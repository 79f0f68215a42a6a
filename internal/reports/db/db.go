package db

import (
	"context"

	"github.com/uptrace/bun"

	"gigboard/internal/models"
)

type DB struct {
	Bun *bun.DB
}

func (d *DB) CreateReport(report models.Report) error {
	_, err := d.Bun.NewInsert().Model(&report).Exec(context.Background())
	return err
}

// ListReports returns every report, newest first, with a summary of the
// reported event joined in.
func (d *DB) ListReports() ([]models.Report, error) {
	var reports []models.Report
	err := d.Bun.NewSelect().
		Model(&reports).
		Relation("Event").
		Order("report.created_at DESC").
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return reports, nil
}

func (d *DB) GetReportByID(id string) (*models.Report, error) {
	var report models.Report
	err := d.Bun.NewSelect().
		Model(&report).
		Where("report.id = ?", id).
		Limit(1).
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (d *DB) UpdateReportStatus(id, status string) error {
	_, err := d.Bun.NewUpdate().
		Model((*models.Report)(nil)).
		Set("status = ?", status).
		Where("id = ?", id).
		Exec(context.Background())
	return err
}
