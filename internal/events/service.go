package events

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gigboard/internal/models"
	"gigboard/internal/schedule"
)

// ErrNotFound reports an update against an id that does not exist.
var ErrNotFound = errors.New("event not found")

type EventDBLayer interface {
	ListPublished(from time.Time) ([]models.Event, error)
	ListAll() ([]models.Event, error)
	GetEventByID(id string) (*models.Event, error)
	CreateEvent(event models.Event) error
	UpdateEvent(event models.Event) error
	DeleteEvent(id string) error
}

// Publisher streams moderation lifecycle messages. Publishing is best
// effort: failures are logged by the caller and never fail a request.
type Publisher interface {
	EventCreated(event models.Event) error
	EventUpdated(event models.Event) error
	EventDeleted(id string) error
}

// ListCache caches the public upcoming-events listing.
type ListCache interface {
	GetUpcoming() ([]models.Event, bool)
	SetUpcoming(events []models.Event)
	Invalidate()
}

// EventPatch carries a partial admin edit. Nil fields are left alone.
type EventPatch struct {
	ArtistName *string    `json:"artist_name"`
	ArtistBio  *string    `json:"artist_bio"`
	VenueID    *string    `json:"venue_id"`
	VenueName  *string    `json:"venue_name"`
	EventDate  *time.Time `json:"event_date"`
	Genre      *string    `json:"genre"`
	Vibe       *string    `json:"vibe"`
	Cover      *string    `json:"cover"`
	TicketLink *string    `json:"ticket_link"`
	Recurring  *bool      `json:"recurring"`
	Status     *string    `json:"status"`
	Source     *string    `json:"source"`
}

type EventService struct {
	DB        EventDBLayer
	Publisher Publisher
	Cache     ListCache
}

func NewEventService(db EventDBLayer, publisher Publisher, cache ListCache) *EventService {
	return &EventService{DB: db, Publisher: publisher, Cache: cache}
}

// ListUpcoming returns published events from local midnight onward,
// serving from the cache when it is warm.
func (s *EventService) ListUpcoming() ([]models.Event, error) {
	if s.Cache != nil {
		if events, ok := s.Cache.GetUpcoming(); ok {
			return events, nil
		}
	}

	events, err := s.DB.ListPublished(schedule.StartOfDay(time.Now()))
	if err != nil {
		return nil, err
	}
	if s.Cache != nil {
		s.Cache.SetUpcoming(events)
	}
	return events, nil
}

// ListAll returns every event for the moderation panel, drafts and
// cancellations included.
func (s *EventService) ListAll() ([]models.Event, error) {
	return s.DB.ListAll()
}

func (s *EventService) GetEvent(id string) (*models.Event, error) {
	event, err := s.DB.GetEventByID(id)
	if err != nil {
		return nil, fmt.Errorf("event %s: %w", id, ErrNotFound)
	}
	return event, nil
}

// CreateEvent inserts a new event, filling admin defaults: published
// status, "Admin" source and a fresh verification stamp.
func (s *EventService) CreateEvent(event models.Event) (*models.Event, error) {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.Status == "" {
		event.Status = models.StatusPublished
	}
	if event.Source == "" {
		event.Source = models.SourceAdmin
	}
	now := time.Now()
	event.VerifiedAt = &now
	if event.CreatedAt.IsZero() {
		event.CreatedAt = now
	}

	if err := s.DB.CreateEvent(event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	s.invalidate()
	s.publish(func(p Publisher) error { return p.EventCreated(event) })
	return &event, nil
}

// UpdateEvent applies a partial edit and re-stamps the verification
// time.
func (s *EventService) UpdateEvent(id string, patch EventPatch) (*models.Event, error) {
	event, err := s.DB.GetEventByID(id)
	if err != nil {
		return nil, fmt.Errorf("event %s: %w", id, ErrNotFound)
	}

	applyPatch(event, patch)
	now := time.Now()
	event.VerifiedAt = &now

	if err := s.DB.UpdateEvent(*event); err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	s.invalidate()
	s.publish(func(p Publisher) error { return p.EventUpdated(*event) })
	return event, nil
}

// DeleteEvent removes an event. Idempotent: deleting a missing id
// succeeds.
func (s *EventService) DeleteEvent(id string) error {
	if err := s.DB.DeleteEvent(id); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	s.invalidate()
	s.publish(func(p Publisher) error { return p.EventDeleted(id) })
	return nil
}

func (s *EventService) invalidate() {
	if s.Cache != nil {
		s.Cache.Invalidate()
	}
}

func (s *EventService) publish(fn func(Publisher) error) {
	if s.Publisher == nil {
		return
	}
	if err := fn(s.Publisher); err != nil {
		fmt.Printf("failed to publish event message: %v\n", err)
	}
}

func applyPatch(event *models.Event, patch EventPatch) {
	if patch.ArtistName != nil {
		event.ArtistName = *patch.ArtistName
	}
	if patch.ArtistBio != nil {
		event.ArtistBio = *patch.ArtistBio
	}
	if patch.VenueID != nil {
		event.VenueID = *patch.VenueID
	}
	if patch.VenueName != nil {
		event.VenueName = *patch.VenueName
	}
	if patch.EventDate != nil {
		event.EventDate = *patch.EventDate
	}
	if patch.Genre != nil {
		event.Genre = *patch.Genre
	}
	if patch.Vibe != nil {
		event.Vibe = *patch.Vibe
	}
	if patch.Cover != nil {
		event.Cover = *patch.Cover
	}
	if patch.TicketLink != nil {
		event.TicketLink = *patch.TicketLink
	}
	if patch.Recurring != nil {
		event.Recurring = *patch.Recurring
	}
	if patch.Status != nil {
		event.Status = *patch.Status
	}
	if patch.Source != nil {
		event.Source = *patch.Source
	}
}
