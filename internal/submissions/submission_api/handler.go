package submission_api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"gigboard/internal/logger"
	"gigboard/internal/models"
	"gigboard/internal/submissions"
	"gigboard/internal/utils"
)

type Submitter interface {
	Submit(input submissions.SubmissionInput) (*models.Submission, error)
}

// Handler takes community event proposals. No credential, and no
// server-side required-field enforcement: the submitting form validates
// before it posts, and partial data is stored as-is.
type Handler struct {
	Submissions Submitter
	Logger      *logger.Logger
}

func NewHandler(service Submitter, log *logger.Logger) *Handler {
	return &Handler{Submissions: service, Logger: log}
}

func (h *Handler) SubmitEvent(w http.ResponseWriter, r *http.Request) {
	var input submissions.SubmissionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	submission, err := h.Submissions.Submit(input)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("SubmitEvent: %v", err))
		utils.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.Logger.LogModeration("SUBMITTED", submission.ID, submission.ArtistName)
	utils.WriteSuccess(w)
}
