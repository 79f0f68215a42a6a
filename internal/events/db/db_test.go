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

	"gigboard/internal/events/db"
	"gigboard/internal/models"
)

func setupTestDB(t *testing.T) (*db.DB, *bun.DB) {
	sqldb, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to connect to in-memory database: %v", err)
	}

	bunDB := bun.NewDB(sqldb, sqlitedialect.New())

	_, err = bunDB.NewCreateTable().Model((*models.Venue)(nil)).Exec(context.Background())
	if err != nil {
		t.Fatalf("Failed to create venue table: %v", err)
	}
	_, err = bunDB.NewCreateTable().Model((*models.Event)(nil)).Exec(context.Background())
	if err != nil {
		t.Fatalf("Failed to create event table: %v", err)
	}

	return &db.DB{Bun: bunDB}, bunDB
}

func insertEvent(t *testing.T, bunDB *bun.DB, event models.Event) models.Event {
	t.Helper()
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	_, err := bunDB.NewInsert().Model(&event).Exec(context.Background())
	require.NoError(t, err)
	return event
}

func TestGetEventByID(t *testing.T) {
	eventDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	created := insertEvent(t, bunDB, models.Event{
		ArtistName: "The Gaslight Anthem",
		VenueName:  "The Stone Pony",
		EventDate:  time.Date(2024, time.July, 4, 20, 0, 0, 0, time.Local),
		Status:     models.StatusPublished,
		Source:     models.SourceAdmin,
	})

	event, err := eventDB.GetEventByID(created.ID)
	assert.NoError(t, err)
	require.NotNil(t, event)
	assert.Equal(t, "The Gaslight Anthem", event.ArtistName)
	assert.Equal(t, models.StatusPublished, event.Status)

	event, err = eventDB.GetEventByID("non-existent")
	assert.Error(t, err)
	assert.Nil(t, event)
}

func TestListPublishedFiltersStatusAndDate(t *testing.T) {
	eventDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	from := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.Local)

	insertEvent(t, bunDB, models.Event{
		ArtistName: "Old Show",
		EventDate:  from.AddDate(0, 0, -3),
		Status:     models.StatusPublished,
	})
	insertEvent(t, bunDB, models.Event{
		ArtistName: "Draft Show",
		EventDate:  from.AddDate(0, 0, 5),
		Status:     models.StatusDraft,
	})
	late := insertEvent(t, bunDB, models.Event{
		ArtistName: "Late Show",
		EventDate:  from.AddDate(0, 0, 10),
		Status:     models.StatusPublished,
	})
	early := insertEvent(t, bunDB, models.Event{
		ArtistName: "Early Show",
		EventDate:  from.AddDate(0, 0, 2),
		Status:     models.StatusPublished,
	})

	events, err := eventDB.ListPublished(from)
	assert.NoError(t, err)
	require.Len(t, events, 2)

	// Ascending by date.
	assert.Equal(t, early.ID, events[0].ID)
	assert.Equal(t, late.ID, events[1].ID)
}

func TestListPublishedJoinsVenue(t *testing.T) {
	eventDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	venue := models.Venue{
		ID:    uuid.New().String(),
		Name:  "The Stone Pony",
		Color: "#E84855",
	}
	_, err := bunDB.NewInsert().Model(&venue).Exec(context.Background())
	require.NoError(t, err)

	insertEvent(t, bunDB, models.Event{
		ArtistName: "The Gaslight Anthem",
		VenueID:    venue.ID,
		EventDate:  time.Now().AddDate(0, 0, 1),
		Status:     models.StatusPublished,
	})

	events, err := eventDB.ListPublished(time.Now())
	assert.NoError(t, err)
	require.Len(t, events, 1)
	require.NotNil(t, events[0].Venue)
	assert.Equal(t, "The Stone Pony", events[0].Venue.Name)
	assert.Equal(t, "The Stone Pony", events[0].ResolvedVenueName())
}

func TestListAllIncludesEveryStatus(t *testing.T) {
	eventDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	insertEvent(t, bunDB, models.Event{ArtistName: "A", EventDate: time.Now(), Status: models.StatusDraft})
	insertEvent(t, bunDB, models.Event{ArtistName: "B", EventDate: time.Now(), Status: models.StatusCancelled})
	insertEvent(t, bunDB, models.Event{ArtistName: "C", EventDate: time.Now(), Status: models.StatusPublished})

	events, err := eventDB.ListAll()
	assert.NoError(t, err)
	assert.Len(t, events, 3)
}

func TestUpdateEvent(t *testing.T) {
	eventDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	created := insertEvent(t, bunDB, models.Event{
		ArtistName: "Before",
		EventDate:  time.Now(),
		Status:     models.StatusDraft,
	})

	created.ArtistName = "After"
	created.Status = models.StatusPublished
	now := time.Now()
	created.VerifiedAt = &now

	err := eventDB.UpdateEvent(created)
	assert.NoError(t, err)

	reloaded, err := eventDB.GetEventByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "After", reloaded.ArtistName)
	assert.Equal(t, models.StatusPublished, reloaded.Status)
	assert.NotNil(t, reloaded.VerifiedAt)
}

func TestDeleteEventIsIdempotent(t *testing.T) {
	eventDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	created := insertEvent(t, bunDB, models.Event{
		ArtistName: "Doomed",
		EventDate:  time.Now(),
		Status:     models.StatusPublished,
	})

	assert.NoError(t, eventDB.DeleteEvent(created.ID))

	_, err := eventDB.GetEventByID(created.ID)
	assert.Error(t, err)

	// Deleting again, or deleting an id that never existed, still
	// succeeds.
	assert.NoError(t, eventDB.DeleteEvent(created.ID))
	assert.NoError(t, eventDB.DeleteEvent("never-existed"))
}
