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
	"gigboard/internal/submissions/db"
)

func setupTestDB(t *testing.T) (*db.DB, *bun.DB) {
	sqldb, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to connect to in-memory database: %v", err)
	}

	bunDB := bun.NewDB(sqldb, sqlitedialect.New())

	_, err = bunDB.NewCreateTable().Model((*models.Submission)(nil)).Exec(context.Background())
	if err != nil {
		t.Fatalf("Failed to create submission table: %v", err)
	}

	return &db.DB{Bun: bunDB}, bunDB
}

func TestCreateAndGetSubmission(t *testing.T) {
	submissionDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	when := time.Date(2024, time.July, 4, 20, 0, 0, 0, time.Local)
	submission := models.Submission{
		ID:         uuid.New().String(),
		ArtistName: "The Gaslight Anthem",
		VenueName:  "The Stone Pony",
		EventDate:  &when,
		Status:     models.SubmissionPending,
		CreatedAt:  time.Now(),
	}

	require.NoError(t, submissionDB.CreateSubmission(submission))

	loaded, err := submissionDB.GetSubmissionByID(submission.ID)
	require.NoError(t, err)
	assert.Equal(t, "The Gaslight Anthem", loaded.ArtistName)
	require.NotNil(t, loaded.EventDate)
	assert.True(t, when.Equal(*loaded.EventDate))

	_, err = submissionDB.GetSubmissionByID("missing")
	assert.Error(t, err)
}

func TestListSubmissionsNewestFirst(t *testing.T) {
	submissionDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	base := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.Local)
	older := models.Submission{
		ID:         uuid.New().String(),
		ArtistName: "Older",
		VenueName:  "The Saint",
		Status:     models.SubmissionPending,
		CreatedAt:  base,
	}
	newer := models.Submission{
		ID:         uuid.New().String(),
		ArtistName: "Newer",
		VenueName:  "The Saint",
		Status:     models.SubmissionPending,
		CreatedAt:  base.Add(48 * time.Hour),
	}
	require.NoError(t, submissionDB.CreateSubmission(older))
	require.NoError(t, submissionDB.CreateSubmission(newer))

	list, err := submissionDB.ListSubmissions()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Newer", list[0].ArtistName)
	assert.Equal(t, "Older", list[1].ArtistName)
}

func TestUpdateSubmissionStatus(t *testing.T) {
	submissionDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	submission := models.Submission{
		ID:         uuid.New().String(),
		ArtistName: "A",
		VenueName:  "B",
		Status:     models.SubmissionPending,
		CreatedAt:  time.Now(),
	}
	require.NoError(t, submissionDB.CreateSubmission(submission))

	require.NoError(t, submissionDB.UpdateSubmissionStatus(submission.ID, models.SubmissionApproved))

	loaded, err := submissionDB.GetSubmissionByID(submission.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SubmissionApproved, loaded.Status)
}
