package dashboard

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/preston-bernstein/fpl-data-explorer/internal/domain/fixtures"
	"github.com/preston-bernstein/fpl-data-explorer/internal/domain/history"
	"github.com/preston-bernstein/fpl-data-explorer/internal/domain/players"
	"github.com/preston-bernstein/fpl-data-explorer/internal/fdr"
)

type stubSource struct {
	players     []players.Player
	fixtures    []fixtures.Fixture
	history     []history.Entry
	fixturesErr error
	historyErr  error
}

func (s *stubSource) Players() []players.Player { return s.players }

func (s *stubSource) Search(query string) []players.Player {
	if query == "" {
		return s.players
	}
	var out []players.Player
	for _, p := range s.players {
		if strings.Contains(strings.ToLower(p.Name), strings.ToLower(query)) {
			out = append(out, p)
		}
	}
	return out
}

func (s *stubSource) PlayerByID(id int) (players.Player, bool) {
	for _, p := range s.players {
		if p.ID == id {
			return p, true
		}
	}
	return players.Player{}, false
}

func (s *stubSource) Fixtures(ctx context.Context, id int) ([]fixtures.Fixture, error) {
	return s.fixtures, s.fixturesErr
}

func (s *stubSource) History(ctx context.Context, id int) ([]history.Entry, error) {
	return s.history, s.historyErr
}

func newSource() *stubSource {
	return &stubSource{
		players: []players.Player{
			{ID: 1, Name: "Raya", Team: "Arsenal", Position: "GKP", TotalPoints: 40, Cost: 5.5, NextDifficulty: 1},
			{ID: 2, Name: "Saka", Team: "Arsenal", Position: "MID", TotalPoints: 90, Cost: 10, NextDifficulty: 5},
			{ID: 3, Name: "Watkins", Team: "Aston Villa", Position: "FWD", TotalPoints: 70, Cost: 9, ExpectedGoals: 5},
		},
		fixtures: []fixtures.Fixture{
			{Gameweek: 6, Opponent: "Chelsea", Difficulty: 4},
			{Gameweek: 7, Opponent: "Ipswich", IsHome: true, Difficulty: 2},
			{Gameweek: 8, Opponent: "TBC", Difficulty: 0},
		},
		history: []history.Entry{{Round: 1, Points: 2}, {Round: 2, Points: 9}},
	}
}

func render(t *testing.T, fn func(*Templates, *bytes.Buffer) error) string {
	t.Helper()
	tmpl, err := LoadTemplates()
	if err != nil {
		t.Fatalf("failed to load templates: %v", err)
	}
	var buf bytes.Buffer
	if err := fn(tmpl, &buf); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return buf.String()
}

func TestBuildExplorerWithoutSelection(t *testing.T) {
	page := BuildExplorer(context.Background(), newSource(), ExplorerRequest{})
	if page.Selected != nil {
		t.Fatalf("expected no selection")
	}
	if len(page.Players) != 3 || len(page.Legend) != 5 {
		t.Fatalf("unexpected page %+v", page)
	}
	if page.Players[0].NextStyle != "background-color: darkgreen; color: white;" {
		t.Fatalf("unexpected next FDR style %q", page.Players[0].NextStyle)
	}
	if page.Players[2].NextStyle != "" {
		t.Fatalf("expected no style for missing next FDR, got %q", page.Players[2].NextStyle)
	}

	html := render(t, func(tm *Templates, b *bytes.Buffer) error { return tm.RenderExplorer(b, page) })
	for _, want := range []string{
		"Fantasy Premier League Data Explorer",
		"Player Explorer",
		"League Analysis",
		`style="background-color: darkred; color: white;"`,
		"Select a player",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in page", want)
		}
	}
}

func TestBuildExplorerFixturesView(t *testing.T) {
	page := BuildExplorer(context.Background(), newSource(), ExplorerRequest{Query: "sa", PlayerID: 2})
	if len(page.Players) != 1 || !page.Players[0].Selected {
		t.Fatalf("expected filtered and selected row, got %+v", page.Players)
	}
	sel := page.Selected
	if sel == nil || sel.View != ViewFixtures || len(sel.Fixtures) != 3 {
		t.Fatalf("unexpected selection %+v", sel)
	}
	colors := []string{sel.Fixtures[0].Color, sel.Fixtures[1].Color, sel.Fixtures[2].Color}
	if colors[0] != "orange" || colors[1] != "green" || colors[2] != "" {
		t.Fatalf("unexpected fixture colours %v", colors)
	}

	html := render(t, func(tm *Templates, b *bytes.Buffer) error { return tm.RenderExplorer(b, page) })
	for _, want := range []string{
		"Player Details: Saka",
		"Upcoming Fixtures",
		"Player History",
		"<th>Opponent</th><th>FDR</th>",
		`style="background-color: orange; color: white;"`,
		"Chelsea (A)",
		"Ipswich (H)",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in page", want)
		}
	}
}

func TestBuildExplorerHistoryView(t *testing.T) {
	page := BuildExplorer(context.Background(), newSource(), ExplorerRequest{PlayerID: 2, View: ViewHistory})
	sel := page.Selected
	if sel == nil || sel.View != ViewHistory || len(sel.History) != 2 {
		t.Fatalf("unexpected selection %+v", sel)
	}
	if sel.History[1].Cumulative != 11 {
		t.Fatalf("expected running total 11, got %v", sel.History[1].Cumulative)
	}
	html := render(t, func(tm *Templates, b *bytes.Buffer) error { return tm.RenderExplorer(b, page) })
	if !strings.Contains(html, "/charts/players/2/cumulative.svg") {
		t.Fatalf("expected history charts in page")
	}
}

func TestBuildExplorerEmptyAndErrorStates(t *testing.T) {
	src := newSource()
	src.fixtures = nil
	src.history = nil

	cases := []struct {
		name string
		view string
		want string
	}{
		{"no fixtures", ViewFixtures, "No upcoming fixtures found for this player."},
		{"no history", ViewHistory, "No historical data found for this player."},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			page := BuildExplorer(context.Background(), src, ExplorerRequest{PlayerID: 1, View: c.view})
			html := render(t, func(tm *Templates, b *bytes.Buffer) error { return tm.RenderExplorer(b, page) })
			if !strings.Contains(html, c.want) {
				t.Fatalf("expected %q in page", c.want)
			}
		})
	}

	src.fixturesErr = errors.New("upstream down")
	src.historyErr = errors.New("timeout")
	page := BuildExplorer(context.Background(), src, ExplorerRequest{PlayerID: 1})
	html := render(t, func(tm *Templates, b *bytes.Buffer) error { return tm.RenderExplorer(b, page) })
	if !strings.Contains(html, "Error loading fixtures: upstream down") {
		t.Fatalf("expected fixtures error message")
	}
	page = BuildExplorer(context.Background(), src, ExplorerRequest{PlayerID: 1, View: ViewHistory})
	html = render(t, func(tm *Templates, b *bytes.Buffer) error { return tm.RenderExplorer(b, page) })
	if !strings.Contains(html, "Error loading history: timeout") {
		t.Fatalf("expected history error message")
	}
}

func TestBuildExplorerUnknownPlayerIgnored(t *testing.T) {
	page := BuildExplorer(context.Background(), newSource(), ExplorerRequest{PlayerID: 99})
	if page.Selected != nil {
		t.Fatalf("expected unknown player to leave selection empty")
	}
}

func TestExplorerURL(t *testing.T) {
	cases := []struct {
		q    string
		id   int
		view string
		want string
	}{
		{"", 0, "", "/"},
		{"", 3, "", "/?player=3"},
		{"sa ka", 3, ViewHistory, "/?player=3&q=sa+ka&view=history"},
		{"", 3, ViewFixtures, "/?player=3"},
	}
	for _, c := range cases {
		if got := ExplorerURL(c.q, c.id, c.view); got != c.want {
			t.Fatalf("ExplorerURL(%q,%d,%q) = %q, want %q", c.q, c.id, c.view, got, c.want)
		}
	}
}

func TestBuildAnalysisSections(t *testing.T) {
	items := newSource().players

	dist := BuildAnalysis(items, "")
	if dist.Section != SectionDistribution || len(dist.Boxes) != 3 {
		t.Fatalf("unexpected distribution page %+v", dist)
	}
	html := render(t, func(tm *Templates, b *bytes.Buffer) error { return tm.RenderAnalysis(b, dist) })
	for _, want := range []string{"Points Distribution", "Expected Stats Analysis", "Performance vs Cost", "/charts/league/distribution.svg"} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in analysis page", want)
		}
	}

	expected := BuildAnalysis(items, SectionExpected)
	if len(expected.CorrelationRows) != 4 || len(expected.CorrelationRows[0].Cells) != 4 {
		t.Fatalf("unexpected correlation rows %+v", expected.CorrelationRows)
	}
	html = render(t, func(tm *Templates, b *bytes.Buffer) error { return tm.RenderAnalysis(b, expected) })
	if !strings.Contains(html, "/charts/league/xg.svg") || !strings.Contains(html, "<th>xGC</th>") {
		t.Fatalf("expected correlation table and scatter charts")
	}

	cost := BuildAnalysis(items, SectionCost)
	if len(cost.TopValue) != 3 || cost.TopValue[0].Name != "Saka" {
		t.Fatalf("unexpected value ranking %+v", cost.TopValue)
	}
	if cost.TopValue[0].Value < cost.TopValue[1].Value || cost.TopValue[1].Value < cost.TopValue[2].Value {
		t.Fatalf("expected value ranking descending, got %+v", cost.TopValue)
	}
}

func TestBuildAnalysisWithoutPlayers(t *testing.T) {
	page := BuildAnalysis(nil, SectionCost)
	html := render(t, func(tm *Templates, b *bytes.Buffer) error { return tm.RenderAnalysis(b, page) })
	if !strings.Contains(html, "No player data loaded yet.") {
		t.Fatalf("expected empty state")
	}
}

func TestHeatStyle(t *testing.T) {
	if got := heatStyle(1); got != "background-color: rgb(255, 0, 0); color: white;" {
		t.Fatalf("unexpected style for 1: %q", got)
	}
	if got := heatStyle(-1); got != "background-color: rgb(0, 0, 255); color: white;" {
		t.Fatalf("unexpected style for -1: %q", got)
	}
	if got := heatStyle(0); got != "background-color: rgb(255, 255, 255); color: black;" {
		t.Fatalf("unexpected style for 0: %q", got)
	}
}

func TestFixtureRowsLabelKickoffs(t *testing.T) {
	rows := FixtureRows([]fixtures.Fixture{
		{Gameweek: 8, Kickoff: "2024-10-19T14:00:00Z", Difficulty: 3},
		{Gameweek: 9, Difficulty: 6},
	})
	if rows[0].When != "Sat 19 Oct 14:00" || rows[0].Color != "grey" {
		t.Fatalf("unexpected first row %+v", rows[0])
	}
	if rows[1].When != "TBC" || rows[1].Color != "" || rows[1].Style != "" {
		t.Fatalf("unscheduled out-of-range fixture should be unstyled TBC, got %+v", rows[1])
	}
}

func TestFixtureRowsStyleMatchesRatingTable(t *testing.T) {
	items := []fixtures.Fixture{{Difficulty: 1}, {Difficulty: 2}, {Difficulty: 3}, {Difficulty: 4}, {Difficulty: 5}, {Difficulty: 0}}
	rows := FixtureRows(items)
	for i, row := range rows {
		style, _ := fdr.Lookup(items[i].Difficulty)
		if string(row.Style) != style.CSS() {
			t.Fatalf("row %d style %q, want %q", i, row.Style, style.CSS())
		}
		if row.Color != style.Background {
			t.Fatalf("row %d colour %q, want %q", i, row.Color, style.Background)
		}
	}
}
