package reports

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gigboard/internal/models"
)

type MockReportDB struct {
	reports      map[string]models.Report
	shouldFailOn string
}

func NewMockReportDB() *MockReportDB {
	return &MockReportDB{reports: make(map[string]models.Report)}
}

func (m *MockReportDB) CreateReport(report models.Report) error {
	if m.shouldFailOn == "CreateReport" {
		return errors.New("store failure")
	}
	m.reports[report.ID] = report
	return nil
}

func (m *MockReportDB) ListReports() ([]models.Report, error) {
	var out []models.Report
	for _, r := range m.reports {
		out = append(out, r)
	}
	return out, nil
}

func (m *MockReportDB) GetReportByID(id string) (*models.Report, error) {
	r, ok := m.reports[id]
	if !ok {
		return nil, errors.New("no rows")
	}
	return &r, nil
}

func (m *MockReportDB) UpdateReportStatus(id, status string) error {
	r, ok := m.reports[id]
	if !ok {
		return errors.New("no rows")
	}
	r.Status = status
	m.reports[id] = r
	return nil
}

func TestFileCreatesPendingReport(t *testing.T) {
	mockDB := NewMockReportDB()
	service := NewReportService(mockDB, nil)

	report, err := service.File("event123", models.IssueTimeChanged, "Doors moved to 9pm")

	require.NoError(t, err)
	assert.NotEmpty(t, report.ID)
	assert.Equal(t, "event123", report.EventID)
	assert.Equal(t, models.IssueTimeChanged, report.IssueType)
	assert.Equal(t, models.ReportPending, report.Status)
}

func TestFileStoreFailurePropagates(t *testing.T) {
	mockDB := NewMockReportDB()
	mockDB.shouldFailOn = "CreateReport"
	service := NewReportService(mockDB, nil)

	_, err := service.File("event123", models.IssueOther, "")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "store failure")
}

func TestResolve(t *testing.T) {
	mockDB := NewMockReportDB()
	service := NewReportService(mockDB, nil)

	report, err := service.File("event123", models.IssueDuplicate, "listed twice")
	require.NoError(t, err)

	require.NoError(t, service.Resolve(report.ID))
	assert.Equal(t, models.ReportResolved, mockDB.reports[report.ID].Status)

	assert.ErrorIs(t, service.Resolve("missing"), ErrNotFound)
}
