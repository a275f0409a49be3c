package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/fpl-data-explorer/internal/http/middleware"
	"github.com/preston-bernstein/fpl-data-explorer/internal/logging"
	"github.com/preston-bernstein/fpl-data-explorer/internal/providers"
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get("X-Request-ID")
	}
	body := map[string]string{"error": message}
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

// writeProviderError maps data collaborator failures onto HTTP statuses.
func writeProviderError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	switch {
	case errors.Is(err, providers.ErrPlayerNotFound):
		writeError(w, r, http.StatusNotFound, "player not found", logger)
	case errors.Is(err, providers.ErrProviderUnavailable):
		writeError(w, r, http.StatusServiceUnavailable, "data source unavailable", logger)
	default:
		if _, ok := providers.AsRateLimitError(err); ok {
			writeError(w, r, http.StatusServiceUnavailable, "data source rate limited", logger)
			return
		}
		logging.Warn(logger, "data source request failed", "err", err)
		writeError(w, r, http.StatusBadGateway, "failed to load player data", logger)
	}
}

func requireMethod(w http.ResponseWriter, r *http.Request, method string, logger *slog.Logger) bool {
	if r.Method == method {
		return true
	}
	if method == http.MethodGet && r.Method == http.MethodHead {
		return true
	}
	w.Header().Set("Allow", method)
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", logger)
	return false
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
