package grid

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/hallview/hallview/internal/rest"
	"github.com/hallview/hallview/internal/utils"
	"github.com/hallview/hallview/pkg/calendar"
	"github.com/hallview/hallview/pkg/feed"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	renderer  *Renderer
	store     *calendar.Store
	refresher *feed.Refresher
	status    *feed.StatusTracker
	clock     utils.Clock
}

func NewHandler(renderer *Renderer, store *calendar.Store, refresher *feed.Refresher, status *feed.StatusTracker, clock utils.Clock) *Handler {
	return &Handler{
		renderer:  renderer,
		store:     store,
		refresher: refresher,
		status:    status,
		clock:     clock,
	}
}

// GetGrid returns the rendered window for the current day. When the last
// refresh cycle gave up, the error-panel payload is returned instead so the
// frontend never shows stale events next to an error banner.
func (h *Handler) GetGrid(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if h.status.Failed() {
		status := h.status.Current()
		w.WriteHeader(http.StatusServiceUnavailable)
		if err := json.NewEncoder(w).Encode(errorPanel(status)); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	view := h.renderer.Window(h.clock.Now(), h.store)
	if err := json.NewEncoder(w).Encode(view); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// TriggerRefresh is the manual retry action: it starts a background refresh
// cycle unless one is already running.
func (h *Handler) TriggerRefresh(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	err := h.refresher.Start(context.WithoutCancel(r.Context()))
	if err != nil {
		if errors.Is(err, feed.ErrRefreshInFlight) {
			w.WriteHeader(http.StatusConflict)
			_ = json.NewEncoder(w).Encode(rest.ErrorResponse{Error: "refresh already in progress"})
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	log.Info("Manual calendar refresh triggered")
	w.WriteHeader(http.StatusAccepted)
}

// GetStatus reports the outcome of the most recent refresh cycle.
func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.status.Current()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// errorPanel maps a failed cycle to the user-visible message pair.
func errorPanel(status feed.CycleStatus) rest.ErrorResponse {
	message := "Failed to load calendar events"
	details := status.Details

	if strings.Contains(status.Details, "502") {
		message = "Calendar server temporarily unavailable"
		details = "The server is experiencing heavy load or maintenance. Please try again later."
	}

	return rest.ErrorResponse{Error: message, Details: details}
}
