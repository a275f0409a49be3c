package handlers

import (
	"bytes"
	"errors"
	"log/slog"
	nethttp "net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/fpl-data-explorer/internal/charts"
	"github.com/preston-bernstein/fpl-data-explorer/internal/logging"
)

const svgContentType = "image/svg+xml"

// PlayerChart renders one of the per-player history charts as SVG.
func (h *Handler) PlayerChart(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	id, ok := h.playerID(w, r)
	if !ok {
		return
	}
	kind := chartKind(r)
	if !contains(charts.PlayerKinds, kind) {
		writeError(w, r, nethttp.StatusNotFound, "unknown chart", h.logger)
		return
	}
	entries, err := h.players.History(r.Context(), id)
	if err != nil {
		writeProviderError(w, r, err, loggerFromContext(r, h.logger))
		return
	}
	var buf bytes.Buffer
	h.writeChart(w, r, kind, &buf, charts.RenderPlayer(&buf, kind, entries))
}

// LeagueChart renders one of the league-wide analysis charts as SVG.
func (h *Handler) LeagueChart(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	kind := chartKind(r)
	if !contains(charts.LeagueKinds, kind) {
		writeError(w, r, nethttp.StatusNotFound, "unknown chart", h.logger)
		return
	}
	var buf bytes.Buffer
	h.writeChart(w, r, kind, &buf, charts.RenderLeague(&buf, kind, h.players.Players()))
}

func (h *Handler) writeChart(w nethttp.ResponseWriter, r *nethttp.Request, kind string, buf *bytes.Buffer, err error) {
	switch {
	case err == nil:
		w.Header().Set("Content-Type", svgContentType)
		w.Header().Set("Cache-Control", "no-cache")
		w.WriteHeader(nethttp.StatusOK)
		_, _ = w.Write(buf.Bytes())
	case errors.Is(err, charts.ErrNotEnoughData):
		w.WriteHeader(nethttp.StatusNoContent)
	case errors.Is(err, charts.ErrUnknownKind):
		writeError(w, r, nethttp.StatusNotFound, "unknown chart", h.logger)
	default:
		logging.Error(loggerFromContext(r, h.logger), "chart render failed", err, slog.String("chart", kind))
		writeError(w, r, nethttp.StatusInternalServerError, "failed to render chart", h.logger)
	}
}

func chartKind(r *nethttp.Request) string {
	return strings.TrimSuffix(chi.URLParam(r, "kind"), ".svg")
}

func contains(items []string, v string) bool {
	for _, item := range items {
		if item == v {
			return true
		}
	}
	return false
}
