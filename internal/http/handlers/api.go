package handlers

import (
	"log/slog"
	nethttp "net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/fpl-data-explorer/internal/analysis"
	"github.com/preston-bernstein/fpl-data-explorer/internal/dashboard"
	"github.com/preston-bernstein/fpl-data-explorer/internal/domain/fixtures"
	"github.com/preston-bernstein/fpl-data-explorer/internal/domain/history"
	"github.com/preston-bernstein/fpl-data-explorer/internal/domain/players"
	"github.com/preston-bernstein/fpl-data-explorer/internal/domain/teams"
	"github.com/preston-bernstein/fpl-data-explorer/internal/fdr"
	"github.com/preston-bernstein/fpl-data-explorer/internal/http/requestutil"
	"github.com/preston-bernstein/fpl-data-explorer/internal/logging"
)

type playersResponse struct {
	Query   string           `json:"query,omitempty"`
	Count   int              `json:"count"`
	Players []players.Player `json:"players"`
}

type fixtureRow struct {
	fixtures.Fixture
	Color string `json:"color"`
	Style string `json:"style"`
}

type fixturesResponse struct {
	PlayerID int          `json:"player_id"`
	Fixtures []fixtureRow `json:"fixtures"`
}

type historyRow struct {
	history.Entry
	Cumulative float64 `json:"cumulative"`
}

type historyResponse struct {
	PlayerID int          `json:"player_id"`
	History  []historyRow `json:"history"`
}

type teamsResponse struct {
	Count int          `json:"count"`
	Teams []teams.Team `json:"teams"`
}

type legendResponse struct {
	Ratings []fdr.Entry `json:"ratings"`
}

// ListPlayers returns the player table, filtered by the optional q parameter.
func (h *Handler) ListPlayers(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	items := h.players.Search(query)
	if items == nil {
		items = []players.Player{}
	}
	logging.Info(loggerFromContext(r, h.logger), "served players",
		slog.String("query", query),
		slog.Int(logging.FieldCount, len(items)),
	)
	writeJSON(w, nethttp.StatusOK, playersResponse{Query: query, Count: len(items), Players: items}, h.logger)
}

// GetPlayer returns one player row.
func (h *Handler) GetPlayer(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	id, ok := h.playerID(w, r)
	if !ok {
		return
	}
	player, found := h.players.PlayerByID(id)
	if !found {
		writeError(w, r, nethttp.StatusNotFound, "player not found", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, player, h.logger)
}

// PlayerFixtures returns upcoming fixtures with the fill colour and inline style of each FDR cell.
func (h *Handler) PlayerFixtures(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	id, ok := h.playerID(w, r)
	if !ok {
		return
	}
	items, err := h.players.Fixtures(r.Context(), id)
	if err != nil {
		writeProviderError(w, r, err, loggerFromContext(r, h.logger))
		return
	}
	rows := make([]fixtureRow, 0, len(items))
	for _, row := range dashboard.FixtureRows(items) {
		rows = append(rows, fixtureRow{
			Fixture: row.Fixture,
			Color:   row.Color,
			Style:   fdr.CellStyle(row.Difficulty),
		})
	}
	writeJSON(w, nethttp.StatusOK, fixturesResponse{PlayerID: id, Fixtures: rows}, h.logger)
}

// PlayerHistory returns past gameweeks with running point totals.
func (h *Handler) PlayerHistory(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	id, ok := h.playerID(w, r)
	if !ok {
		return
	}
	entries, err := h.players.History(r.Context(), id)
	if err != nil {
		writeProviderError(w, r, err, loggerFromContext(r, h.logger))
		return
	}
	totals := analysis.CumulativePoints(entries)
	rows := make([]historyRow, len(entries))
	for i, e := range entries {
		rows[i] = historyRow{Entry: e, Cumulative: totals[i]}
	}
	writeJSON(w, nethttp.StatusOK, historyResponse{PlayerID: id, History: rows}, h.logger)
}

// ListTeams returns the clubs.
func (h *Handler) ListTeams(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	var items []teams.Team
	if h.teams != nil {
		items = h.teams.Teams()
	}
	if items == nil {
		items = []teams.Team{}
	}
	writeJSON(w, nethttp.StatusOK, teamsResponse{Count: len(items), Teams: items}, h.logger)
}

// FDRLegend returns the rating to colour mapping.
func (h *Handler) FDRLegend(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	writeJSON(w, nethttp.StatusOK, legendResponse{Ratings: fdr.Table()}, h.logger)
}

// Correlation returns the Pts/xG/xA/xGC correlation matrix over all players.
func (h *Handler) Correlation(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	writeJSON(w, nethttp.StatusOK, analysis.Correlation(h.players.Players(), analysis.CorrelationColumns), h.logger)
}

// PositionStats returns the points five-number summary per position.
func (h *Handler) PositionStats(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]any{
		"positions": analysis.BoxStatsByPosition(h.players.Players()),
	}, h.logger)
}

func (h *Handler) playerID(w nethttp.ResponseWriter, r *nethttp.Request) (int, bool) {
	id, ok := requestutil.PositiveInt(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid player id", h.logger)
		return 0, false
	}
	return id, true
}
