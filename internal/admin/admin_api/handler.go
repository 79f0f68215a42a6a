package admin_api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"gigboard/internal/events"
	"gigboard/internal/logger"
	"gigboard/internal/models"
	"gigboard/internal/reports"
	"gigboard/internal/submissions"
	"gigboard/internal/utils"
)

type EventModerator interface {
	ListAll() ([]models.Event, error)
	CreateEvent(event models.Event) (*models.Event, error)
	UpdateEvent(id string, patch events.EventPatch) (*models.Event, error)
	DeleteEvent(id string) error
}

type SubmissionModerator interface {
	List() ([]models.Submission, error)
	Approve(id string) (*models.Event, error)
	Reject(id string) error
}

type ReportModerator interface {
	List() ([]models.Report, error)
	Resolve(id string) error
}

// Handler is the moderation panel's API. Every route here sits behind
// the admin bearer-secret middleware.
type Handler struct {
	Events      EventModerator
	Submissions SubmissionModerator
	Reports     ReportModerator
	Logger      *logger.Logger
}

func NewHandler(events EventModerator, submissions SubmissionModerator, reports ReportModerator, log *logger.Logger) *Handler {
	return &Handler{
		Events:      events,
		Submissions: submissions,
		Reports:     reports,
		Logger:      log,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Get("/events", h.ListEvents)
		r.Post("/events", h.CreateEvent)
		r.Put("/events", h.UpdateEvent)
		r.Delete("/events", h.DeleteEvent)
		r.Get("/submissions", h.ListSubmissions)
		r.Put("/submissions", h.UpdateSubmission)
		r.Get("/reports", h.ListReports)
		r.Put("/reports", h.UpdateReport)
	})
}

// ListEvents returns every event, drafts and cancellations included,
// ascending by date.
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	list, err := h.Events.ListAll()
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("ListEvents: %v", err))
		utils.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.WriteJSON(w, http.StatusOK, list)
}

func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var event models.Event
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	created, err := h.Events.CreateEvent(event)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateEvent: %v", err))
		utils.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.Logger.LogEvent("CREATED", created.ID, created.ArtistName)
	utils.WriteJSON(w, http.StatusOK, created)
}

func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ID string `json:"id"`
		events.EventPatch
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if body.ID == "" {
		utils.WriteError(w, http.StatusBadRequest, "id is required")
		return
	}

	updated, err := h.Events.UpdateEvent(body.ID, body.EventPatch)
	if err != nil {
		if errors.Is(err, events.ErrNotFound) {
			utils.WriteError(w, http.StatusNotFound, err.Error())
			return
		}
		h.Logger.Error("API", fmt.Sprintf("UpdateEvent: %v", err))
		utils.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.Logger.LogEvent("UPDATED", updated.ID, updated.ArtistName)
	utils.WriteJSON(w, http.StatusOK, updated)
}

// DeleteEvent removes an event by the id query parameter. No existence
// check: deleting an unknown id reports success.
func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")

	if err := h.Events.DeleteEvent(id); err != nil {
		h.Logger.Error("API", fmt.Sprintf("DeleteEvent: %v", err))
		utils.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.Logger.LogEvent("DELETED", id, "removed by admin")
	utils.WriteSuccess(w)
}

func (h *Handler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	list, err := h.Submissions.List()
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("ListSubmissions: %v", err))
		utils.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.WriteJSON(w, http.StatusOK, list)
}

// UpdateSubmission moves a submission through moderation. Approving
// materializes a published event from the submitted fields and returns
// it; rejecting just marks the submission.
func (h *Handler) UpdateSubmission(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	switch body.Status {
	case models.SubmissionApproved:
		created, err := h.Submissions.Approve(body.ID)
		if err != nil {
			if errors.Is(err, submissions.ErrNotFound) {
				utils.WriteError(w, http.StatusNotFound, err.Error())
				return
			}
			h.Logger.Error("API", fmt.Sprintf("UpdateSubmission: %v", err))
			utils.WriteError(w, http.StatusInternalServerError, err.Error())
			return
		}
		h.Logger.LogModeration("APPROVED", body.ID, "published as event "+created.ID)
		utils.WriteJSON(w, http.StatusOK, created)
	case models.SubmissionRejected:
		if err := h.Submissions.Reject(body.ID); err != nil {
			if errors.Is(err, submissions.ErrNotFound) {
				utils.WriteError(w, http.StatusNotFound, err.Error())
				return
			}
			h.Logger.Error("API", fmt.Sprintf("UpdateSubmission: %v", err))
			utils.WriteError(w, http.StatusInternalServerError, err.Error())
			return
		}
		h.Logger.LogModeration("REJECTED", body.ID, "submission rejected")
		utils.WriteSuccess(w)
	default:
		utils.WriteError(w, http.StatusBadRequest, "status must be approved or rejected")
	}
}

func (h *Handler) ListReports(w http.ResponseWriter, r *http.Request) {
	list, err := h.Reports.List()
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("ListReports: %v", err))
		utils.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.WriteJSON(w, http.StatusOK, list)
}

func (h *Handler) UpdateReport(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := h.Reports.Resolve(body.ID); err != nil {
		if errors.Is(err, reports.ErrNotFound) {
			utils.WriteError(w, http.StatusNotFound, err.Error())
			return
		}
		h.Logger.Error("API", fmt.Sprintf("UpdateReport: %v", err))
		utils.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.Logger.LogModeration("RESOLVED", body.ID, "report resolved")
	utils.WriteSuccess(w)
}
