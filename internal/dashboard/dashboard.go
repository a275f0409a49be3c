// Package dashboard builds and renders the server-side HTML pages.
package dashboard

import (
	"context"
	"html/template"
	"io"
	"net/url"
	"sort"
	"strconv"

	"github.com/preston-bernstein/fpl-data-explorer/internal/analysis"
	"github.com/preston-bernstein/fpl-data-explorer/internal/charts"
	"github.com/preston-bernstein/fpl-data-explorer/internal/domain/fixtures"
	"github.com/preston-bernstein/fpl-data-explorer/internal/domain/history"
	"github.com/preston-bernstein/fpl-data-explorer/internal/domain/players"
	"github.com/preston-bernstein/fpl-data-explorer/internal/fdr"
	"github.com/preston-bernstein/fpl-data-explorer/internal/timeutil"
)

// Title is shown as the page heading and document title.
const Title = "Fantasy Premier League Data Explorer"

// Detail views and analysis sections selectable through query parameters.
const (
	ViewFixtures = "fixtures"
	ViewHistory  = "history"

	SectionDistribution = "distribution"
	SectionExpected     = "expected"
	SectionCost         = "cost"
)

const topValueCount = 15

// PlayerSource is what the pages read player data from.
type PlayerSource interface {
	Players() []players.Player
	Search(query string) []players.Player
	PlayerByID(id int) (players.Player, bool)
	Fixtures(ctx context.Context, id int) ([]fixtures.Fixture, error)
	History(ctx context.Context, id int) ([]history.Entry, error)
}

// ExplorerRequest is the selection state carried by the Player Explorer URL.
type ExplorerRequest struct {
	Query    string
	PlayerID int
	View     string
}

// ExplorerPage is the template data for the Player Explorer tab.
type ExplorerPage struct {
	Title    string
	Tab      string
	Query    string
	Players  []PlayerRow
	Legend   []fdr.Entry
	Selected *SelectedPlayer
}

// PlayerRow is one row of the player table.
type PlayerRow struct {
	players.Player
	NextStyle template.CSS
	Selected  bool
	Link      string
}

// SelectedPlayer holds the detail pane for the chosen player.
type SelectedPlayer struct {
	Player       players.Player
	View         string
	FixturesLink string
	HistoryLink  string
	Fixtures     []FixtureRow
	FixturesErr  string
	History      []HistoryRow
	HistoryErr   string
	ChartKinds   []string
}

// FixtureRow is a fixture with its difficulty cell fill.
type FixtureRow struct {
	fixtures.Fixture
	Color string
	Style template.CSS
	When  string
}

// HistoryRow is a history entry with the running points total.
type HistoryRow struct {
	history.Entry
	Cumulative float64
}

// BuildExplorer assembles the Player Explorer page. Loader errors are shown
// in the page rather than returned.
func BuildExplorer(ctx context.Context, src PlayerSource, req ExplorerRequest) ExplorerPage {
	page := ExplorerPage{
		Title:  Title,
		Tab:    "explorer",
		Query:  req.Query,
		Legend: fdr.Table(),
	}

	for _, p := range src.Search(req.Query) {
		page.Players = append(page.Players, PlayerRow{
			Player:    p,
			NextStyle: template.CSS(fdr.CellStyle(p.NextDifficulty)),
			Selected:  p.ID == req.PlayerID,
			Link:      ExplorerURL(req.Query, p.ID, req.View),
		})
	}

	if req.PlayerID == 0 {
		return page
	}
	player, ok := src.PlayerByID(req.PlayerID)
	if !ok {
		return page
	}

	view := req.View
	if view != ViewHistory {
		view = ViewFixtures
	}
	sel := &SelectedPlayer{
		Player:       player,
		View:         view,
		FixturesLink: ExplorerURL(req.Query, player.ID, ViewFixtures),
		HistoryLink:  ExplorerURL(req.Query, player.ID, ViewHistory),
		ChartKinds:   charts.PlayerKinds,
	}
	if view == ViewHistory {
		entries, err := src.History(ctx, player.ID)
		if err != nil {
			sel.HistoryErr = err.Error()
		} else {
			sel.History = historyRows(entries)
		}
	} else {
		items, err := src.Fixtures(ctx, player.ID)
		if err != nil {
			sel.FixturesErr = err.Error()
		} else {
			sel.Fixtures = FixtureRows(items)
		}
	}
	page.Selected = sel
	return page
}

// FixtureRows pairs fixtures with the fill colours for their FDR column.
func FixtureRows(items []fixtures.Fixture) []FixtureRow {
	colors := fdr.BackgroundColors(fdr.Ratings(fixtures.Difficulties(items)))
	out := make([]FixtureRow, len(items))
	for i, f := range items {
		out[i] = FixtureRow{
			Fixture: f,
			Color:   colors[i],
			Style:   template.CSS(fdr.StyleFor(f.Difficulty).CSS()),
			When:    timeutil.DisplayKickoff(f.Kickoff),
		}
	}
	return out
}

func historyRows(entries []history.Entry) []HistoryRow {
	totals := analysis.CumulativePoints(entries)
	out := make([]HistoryRow, len(entries))
	for i, e := range entries {
		out[i] = HistoryRow{Entry: e, Cumulative: totals[i]}
	}
	return out
}

// ExplorerURL encodes the explorer selection state as a link.
func ExplorerURL(query string, playerID int, view string) string {
	v := url.Values{}
	if query != "" {
		v.Set("q", query)
	}
	if playerID > 0 {
		v.Set("player", strconv.Itoa(playerID))
	}
	if view != "" && view != ViewFixtures {
		v.Set("view", view)
	}
	if len(v) == 0 {
		return "/"
	}
	return "/?" + v.Encode()
}

// AnalysisPage is the template data for the League Analysis tab.
type AnalysisPage struct {
	Title           string
	Tab             string
	Section         string
	PlayerCount     int
	Boxes           []analysis.Box
	Correlation     analysis.Matrix
	CorrelationRows []CorrelationRow
	TopValue        []ValueRow
}

// CorrelationRow is one rendered row of the correlation matrix.
type CorrelationRow struct {
	Column analysis.Column
	Cells  []CorrelationCell
}

// CorrelationCell is a shaded coefficient.
type CorrelationCell struct {
	Value float64
	Style template.CSS
}

// ValueRow is a player with points per million.
type ValueRow struct {
	players.Player
	Value float64
}

// BuildAnalysis assembles the League Analysis page for one section.
func BuildAnalysis(items []players.Player, section string) AnalysisPage {
	switch section {
	case SectionExpected, SectionCost:
	default:
		section = SectionDistribution
	}
	page := AnalysisPage{
		Title:       Title,
		Tab:         "analysis",
		Section:     section,
		PlayerCount: len(items),
	}
	switch section {
	case SectionExpected:
		page.Correlation = analysis.Correlation(items, analysis.CorrelationColumns)
		for i, col := range page.Correlation.Columns {
			row := CorrelationRow{Column: col}
			for _, v := range page.Correlation.Values[i] {
				row.Cells = append(row.Cells, CorrelationCell{Value: v, Style: heatStyle(v)})
			}
			page.CorrelationRows = append(page.CorrelationRows, row)
		}
	case SectionCost:
		page.TopValue = topValue(items, topValueCount)
	default:
		page.Boxes = analysis.BoxStatsByPosition(items)
	}
	return page
}

func topValue(items []players.Player, n int) []ValueRow {
	rows := make([]ValueRow, 0, len(items))
	for _, p := range items {
		rows = append(rows, ValueRow{Player: p, Value: analysis.ValuePerMillion(p)})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Value > rows[j].Value })
	if len(rows) > n {
		rows = rows[:n]
	}
	return rows
}

// RenderExplorer writes the Player Explorer page.
func (t *Templates) RenderExplorer(w io.Writer, page ExplorerPage) error {
	return t.execute(w, pageExplorer, page)
}

// RenderAnalysis writes the League Analysis page.
func (t *Templates) RenderAnalysis(w io.Writer, page AnalysisPage) error {
	return t.execute(w, pageAnalysis, page)
}
