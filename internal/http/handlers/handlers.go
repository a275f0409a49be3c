package handlers

import (
	"log/slog"
	nethttp "net/http"
	"time"

	"github.com/preston-bernstein/fpl-data-explorer/internal/dashboard"
	"github.com/preston-bernstein/fpl-data-explorer/internal/domain/teams"
	"github.com/preston-bernstein/fpl-data-explorer/internal/poller"
)

// TeamSource lists the clubs known to the service.
type TeamSource interface {
	Teams() []teams.Team
}

// Handler wires HTTP routes to the player and team services.
type Handler struct {
	players  dashboard.PlayerSource
	teams    TeamSource
	pages    *dashboard.Templates
	logger   *slog.Logger
	now      func() time.Time
	statusFn func() poller.Status
}

// NewHandler constructs a Handler with defaults. pages may be nil when only the JSON API is served.
func NewHandler(playerSvc dashboard.PlayerSource, teamSvc TeamSource, pages *dashboard.Templates, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		players:  playerSvc,
		teams:    teamSvc,
		pages:    pages,
		logger:   logger,
		now:      time.Now,
		statusFn: statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic: the player table has been loaded and refreshes are healthy.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]any{
			"status":      "ready",
			"players":     status.Players,
			"teams":       status.Teams,
			"lastSuccess": status.LastSuccess.UTC().Format(time.RFC3339),
			"age":         h.now().Sub(status.LastSuccess).Round(time.Second).String(),
		}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// NotFound is the JSON fallback for unmatched routes.
func (h *Handler) NotFound(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
}

// MethodNotAllowed is the JSON fallback for routes matched with the wrong method.
func (h *Handler) MethodNotAllowed(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
}
