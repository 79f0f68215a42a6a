package report_api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"gigboard/internal/logger"
	"gigboard/internal/models"
	"gigboard/internal/utils"
)

type Filer interface {
	File(eventID, issueType, description string) (*models.Report, error)
}

// Handler takes public issue reports against listed events.
type Handler struct {
	Reports Filer
	Logger  *logger.Logger
}

func NewHandler(service Filer, log *logger.Logger) *Handler {
	return &Handler{Reports: service, Logger: log}
}

func (h *Handler) ReportIssue(w http.ResponseWriter, r *http.Request) {
	var body struct {
		EventID     string `json:"event_id"`
		IssueType   string `json:"issue_type"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	report, err := h.Reports.File(body.EventID, body.IssueType, body.Description)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("ReportIssue: %v", err))
		utils.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.Logger.LogModeration("REPORTED", report.ID, body.IssueType)
	utils.WriteSuccess(w)
}
