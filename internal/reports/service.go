package reports

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gigboard/internal/models"
)

// ErrNotFound reports a moderation action against an unknown report.
var ErrNotFound = errors.New("report not found")

type ReportDBLayer interface {
	CreateReport(report models.Report) error
	ListReports() ([]models.Report, error)
	GetReportByID(id string) (*models.Report, error)
	UpdateReportStatus(id, status string) error
}

type Publisher interface {
	ReportFiled(report models.Report) error
}

type ReportService struct {
	DB        ReportDBLayer
	Publisher Publisher
}

func NewReportService(db ReportDBLayer, publisher Publisher) *ReportService {
	return &ReportService{DB: db, Publisher: publisher}
}

// File stores a pending report against an event. Whether the event id
// actually exists is left to the store's referential rules.
func (s *ReportService) File(eventID, issueType, description string) (*models.Report, error) {
	report := models.Report{
		ID:          uuid.New().String(),
		EventID:     eventID,
		IssueType:   issueType,
		Description: description,
		Status:      models.ReportPending,
		CreatedAt:   time.Now(),
	}

	if err := s.DB.CreateReport(report); err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}
	if s.Publisher != nil {
		if err := s.Publisher.ReportFiled(report); err != nil {
			fmt.Printf("failed to publish report message: %v\n", err)
		}
	}
	return &report, nil
}

func (s *ReportService) List() ([]models.Report, error) {
	return s.DB.ListReports()
}

// Resolve closes out a report.
func (s *ReportService) Resolve(id string) error {
	if _, err := s.DB.GetReportByID(id); err != nil {
		return fmt.Errorf("report %s: %w", id, ErrNotFound)
	}
	if err := s.DB.UpdateReportStatus(id, models.ReportResolved); err != nil {
		return fmt.Errorf("failed to resolve report %s: %w", id, err)
	}
	return nil
}
