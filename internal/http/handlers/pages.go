package handlers

import (
	"bytes"
	nethttp "net/http"
	"strconv"
	"strings"

	"github.com/preston-bernstein/fpl-data-explorer/internal/dashboard"
	"github.com/preston-bernstein/fpl-data-explorer/internal/logging"
)

// Explorer renders the Player Explorer tab. Selection state comes from the
// q, player and view query parameters.
func (h *Handler) Explorer(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if h.pages == nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "dashboard not configured", h.logger)
		return
	}
	q := r.URL.Query()
	req := dashboard.ExplorerRequest{
		Query: strings.TrimSpace(q.Get("q")),
		View:  q.Get("view"),
	}
	if id, err := strconv.Atoi(q.Get("player")); err == nil && id > 0 {
		req.PlayerID = id
	}
	page := dashboard.BuildExplorer(r.Context(), h.players, req)

	var buf bytes.Buffer
	if err := h.pages.RenderExplorer(&buf, page); err != nil {
		logging.Error(loggerFromContext(r, h.logger), "render explorer failed", err)
		writeError(w, r, nethttp.StatusInternalServerError, "failed to render page", h.logger)
		return
	}
	writeHTML(w, buf.Bytes())
}

// Analysis renders the League Analysis tab for the section query parameter.
func (h *Handler) Analysis(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if h.pages == nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "dashboard not configured", h.logger)
		return
	}
	page := dashboard.BuildAnalysis(h.players.Players(), r.URL.Query().Get("section"))

	var buf bytes.Buffer
	if err := h.pages.RenderAnalysis(&buf, page); err != nil {
		logging.Error(loggerFromContext(r, h.logger), "render analysis failed", err)
		writeError(w, r, nethttp.StatusInternalServerError, "failed to render page", h.logger)
		return
	}
	writeHTML(w, buf.Bytes())
}

func writeHTML(w nethttp.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(nethttp.StatusOK)
	_, _ = w.Write(body)
}
