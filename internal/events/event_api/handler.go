package event_api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"gigboard/internal/logger"
	"gigboard/internal/models"
	"gigboard/internal/qr"
	"gigboard/internal/utils"
)

type EventLister interface {
	ListUpcoming() ([]models.Event, error)
	GetEvent(id string) (*models.Event, error)
}

type VenueLister interface {
	ListVenues() ([]models.Venue, error)
}

// Handler serves the unauthenticated browse surface.
type Handler struct {
	Events EventLister
	Venues VenueLister
	Logger *logger.Logger
}

func NewHandler(events EventLister, venues VenueLister, log *logger.Logger) *Handler {
	return &Handler{Events: events, Venues: venues, Logger: log}
}

// ListEvents returns published, future-or-today events ascending by
// date, venue details joined.
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.Events.ListUpcoming()
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("ListEvents: %v", err))
		utils.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.WriteJSON(w, http.StatusOK, events)
}

func (h *Handler) ListVenues(w http.ResponseWriter, r *http.Request) {
	venues, err := h.Venues.ListVenues()
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("ListVenues: %v", err))
		utils.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.WriteJSON(w, http.StatusOK, venues)
}

// TicketLinkQR renders an event's ticket link as a QR PNG.
func (h *Handler) TicketLinkQR(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventId")

	event, err := h.Events.GetEvent(eventID)
	if err != nil {
		utils.WriteError(w, http.StatusNotFound, "event not found")
		return
	}
	if event.TicketLink == "" {
		utils.WriteError(w, http.StatusNotFound, "event has no ticket link")
		return
	}

	png, err := qr.TicketLinkPNG(event.TicketLink, qr.DefaultSize)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("TicketLinkQR: %v", err))
		utils.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}
