package db_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "github.com/uptrace/bun/driver/sqliteshim"

	"gigboard/internal/models"
	"gigboard/internal/reports/db"
)

func setupTestDB(t *testing.T) (*db.DB, *bun.DB) {
	sqldb, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to connect to in-memory database: %v", err)
	}

	bunDB := bun.NewDB(sqldb, sqlitedialect.New())

	for _, model := range []interface{}{
		(*models.Venue)(nil),
		(*models.Event)(nil),
		(*models.Report)(nil),
	} {
		_, err = bunDB.NewCreateTable().Model(model).Exec(context.Background())
		if err != nil {
			t.Fatalf("Failed to create table: %v", err)
		}
	}

	return &db.DB{Bun: bunDB}, bunDB
}

func TestListReportsJoinsEventSummary(t *testing.T) {
	reportDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	event := models.Event{
		ID:         uuid.New().String(),
		ArtistName: "The Gaslight Anthem",
		VenueName:  "The Stone Pony",
		EventDate:  time.Date(2024, time.July, 4, 20, 0, 0, 0, time.Local),
		Status:     models.StatusPublished,
		CreatedAt:  time.Now(),
	}
	_, err := bunDB.NewInsert().Model(&event).Exec(context.Background())
	require.NoError(t, err)

	base := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.Local)
	older := models.Report{
		ID:        uuid.New().String(),
		EventID:   event.ID,
		IssueType: models.IssueInaccurate,
		Status:    models.ReportPending,
		CreatedAt: base,
	}
	newer := models.Report{
		ID:        uuid.New().String(),
		EventID:   event.ID,
		IssueType: models.IssueCancelled,
		Status:    models.ReportPending,
		CreatedAt: base.Add(time.Hour),
	}
	require.NoError(t, reportDB.CreateReport(older))
	require.NoError(t, reportDB.CreateReport(newer))

	list, err := reportDB.ListReports()
	require.NoError(t, err)
	require.Len(t, list, 2)

	// Newest first, event summary joined.
	assert.Equal(t, models.IssueCancelled, list[0].IssueType)
	require.NotNil(t, list[0].Event)
	assert.Equal(t, "The Gaslight Anthem", list[0].Event.ArtistName)
	assert.Equal(t, "The Stone Pony", list[0].Event.VenueName)
}

func TestUpdateReportStatus(t *testing.T) {
	reportDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	report := models.Report{
		ID:        uuid.New().String(),
		EventID:   uuid.New().String(),
		IssueType: models.IssueOther,
		Status:    models.ReportPending,
		CreatedAt: time.Now(),
	}
	require.NoError(t, reportDB.CreateReport(report))

	require.NoError(t, reportDB.UpdateReportStatus(report.ID, models.ReportResolved))

	loaded, err := reportDB.GetReportByID(report.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReportResolved, loaded.Status)
}
