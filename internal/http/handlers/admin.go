package handlers

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/http"
	"time"

	"github.com/preston-bernstein/fpl-data-explorer/internal/http/requestutil"
	"github.com/preston-bernstein/fpl-data-explorer/internal/logging"
)

// Refresher reloads the player and team tables on demand.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// SummaryPurger drops cached per-player summaries.
type SummaryPurger interface {
	PurgeSummaries()
}

// AdminHandler exposes admin-only endpoints.
type AdminHandler struct {
	refresher Refresher
	purger    SummaryPurger
	token     string
	logger    *slog.Logger
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(refresher Refresher, purger SummaryPurger, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		refresher: refresher,
		purger:    purger,
		token:     token,
		logger:    logger,
	}
}

// Refresh forces a reload of the dataset from the data collaborator and purges cached summaries.
// Guarded by ADMIN_TOKEN; returns 401 if missing/invalid.
func (h *AdminHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.refresher == nil {
		writeError(w, r, http.StatusServiceUnavailable, "refresh not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	start := time.Now()
	if err := h.refresher.Refresh(r.Context()); err != nil {
		logging.Warn(logger, "admin refresh failed", slog.Any("err", err))
		writeError(w, r, http.StatusBadGateway, "failed to refresh data", logger)
		return
	}
	if h.purger != nil {
		h.purger.PurgeSummaries()
	}

	elapsed := time.Since(start)
	writeJSON(w, http.StatusOK, map[string]any{
		"status":     "ok",
		"durationMs": elapsed.Milliseconds(),
	}, logger)
	logging.Info(logger, "admin refresh complete", slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()))
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	got := requestutil.BearerToken(r)
	return subtle.ConstantTimeCompare([]byte(got), []byte(h.token)) == 1
}
