package submissions

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gigboard/internal/models"
)

// ErrNotFound reports a moderation action against an unknown submission.
var ErrNotFound = errors.New("submission not found")

type SubmissionDBLayer interface {
	CreateSubmission(submission models.Submission) error
	ListSubmissions() ([]models.Submission, error)
	GetSubmissionByID(id string) (*models.Submission, error)
	UpdateSubmissionStatus(id, status string) error
}

// EventCreator materializes an approved submission into a published
// event. Satisfied by the events service.
type EventCreator interface {
	CreateEvent(event models.Event) (*models.Event, error)
}

type Publisher interface {
	SubmissionReceived(submission models.Submission) error
	SubmissionApproved(submission models.Submission) error
}

// SubmissionInput is the public intake payload. Date and time arrive as
// two separate form fields and are combined here.
type SubmissionInput struct {
	ArtistName     string `json:"artist_name"`
	VenueName      string `json:"venue_name"`
	EventDate      string `json:"event_date"`
	EventTime      string `json:"event_time"`
	Genre          string `json:"genre"`
	Vibe           string `json:"vibe"`
	Cover          string `json:"cover"`
	ArtistBio      string `json:"artist_bio"`
	Notes          string `json:"notes"`
	SubmitterEmail string `json:"submitter_email"`
}

type SubmissionService struct {
	DB        SubmissionDBLayer
	Events    EventCreator
	Publisher Publisher
}

func NewSubmissionService(db SubmissionDBLayer, events EventCreator, publisher Publisher) *SubmissionService {
	return &SubmissionService{DB: db, Events: events, Publisher: publisher}
}

// Submit stores a pending submission. Required-field presence is the
// submitting client's problem: partial data is accepted as-is.
func (s *SubmissionService) Submit(input SubmissionInput) (*models.Submission, error) {
	submission := models.Submission{
		ID:             uuid.New().String(),
		ArtistName:     input.ArtistName,
		VenueName:      input.VenueName,
		EventDate:      CombineDateTime(input.EventDate, input.EventTime),
		Genre:          input.Genre,
		Vibe:           input.Vibe,
		Cover:          input.Cover,
		ArtistBio:      input.ArtistBio,
		Notes:          input.Notes,
		SubmitterEmail: input.SubmitterEmail,
		Status:         models.SubmissionPending,
		CreatedAt:      time.Now(),
	}

	if err := s.DB.CreateSubmission(submission); err != nil {
		return nil, fmt.Errorf("failed to create submission: %w", err)
	}
	if s.Publisher != nil {
		if err := s.Publisher.SubmissionReceived(submission); err != nil {
			fmt.Printf("failed to publish submission message: %v\n", err)
		}
	}
	return &submission, nil
}

func (s *SubmissionService) List() ([]models.Submission, error) {
	return s.DB.ListSubmissions()
}

// Approve copies the submission into a new published event with a
// "Community Submitted" source, then marks the submission approved.
// The two writes are not transactional: if the status update fails the
// event already exists and the submission stays pending, which the
// returned error reports for manual reconciliation.
func (s *SubmissionService) Approve(id string) (*models.Event, error) {
	submission, err := s.DB.GetSubmissionByID(id)
	if err != nil {
		return nil, fmt.Errorf("submission %s: %w", id, ErrNotFound)
	}

	event := models.Event{
		ArtistName: submission.ArtistName,
		VenueName:  submission.VenueName,
		Genre:      submission.Genre,
		Vibe:       submission.Vibe,
		Cover:      submission.Cover,
		ArtistBio:  submission.ArtistBio,
		Source:     models.SourceCommunity,
		Status:     models.StatusPublished,
	}
	if submission.EventDate != nil {
		event.EventDate = *submission.EventDate
	}

	created, err := s.Events.CreateEvent(event)
	if err != nil {
		return nil, fmt.Errorf("failed to publish submission %s: %w", id, err)
	}

	if err := s.DB.UpdateSubmissionStatus(id, models.SubmissionApproved); err != nil {
		return created, fmt.Errorf("event %s created but submission %s still pending: %w", created.ID, id, err)
	}
	if s.Publisher != nil {
		if err := s.Publisher.SubmissionApproved(*submission); err != nil {
			fmt.Printf("failed to publish submission message: %v\n", err)
		}
	}
	return created, nil
}

// Reject marks a submission rejected. Nothing else happens: rejected
// submissions are kept for the audit trail, never deleted.
func (s *SubmissionService) Reject(id string) error {
	if _, err := s.DB.GetSubmissionByID(id); err != nil {
		return fmt.Errorf("submission %s: %w", id, ErrNotFound)
	}
	if err := s.DB.UpdateSubmissionStatus(id, models.SubmissionRejected); err != nil {
		return fmt.Errorf("failed to reject submission %s: %w", id, err)
	}
	return nil
}

// CombineDateTime merges a "2006-01-02" date and a "15:04" time into
// one local instant. Either part missing or malformed means no
// timestamp is stored.
func CombineDateTime(date, clock string) *time.Time {
	if date == "" || clock == "" {
		return nil
	}
	t, err := time.ParseInLocation("2006-01-02T15:04", date+"T"+clock, time.Local)
	if err != nil {
		return nil
	}
	return &t
}
