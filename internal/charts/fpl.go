package charts

import (
	"fmt"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/preston-bernstein/fpl-data-explorer/internal/analysis"
	"github.com/preston-bernstein/fpl-data-explorer/internal/domain/history"
	"github.com/preston-bernstein/fpl-data-explorer/internal/domain/players"
)

// Player chart kinds.
const (
	KindPoints     = "points"
	KindCumulative = "cumulative"
	KindMinutes    = "minutes"
	KindExpected   = "expected"
)

// League chart kinds.
const (
	KindDistribution = "distribution"
	KindXG           = "xg"
	KindXA           = "xa"
	KindCost         = "cost"
)

// PlayerKinds and LeagueKinds list the supported chart names in display order.
var (
	PlayerKinds = []string{KindPoints, KindCumulative, KindExpected, KindMinutes}
	LeagueKinds = []string{KindDistribution, KindXG, KindXA, KindCost}
)

const distributionBins = 10

var positionColors = map[string]drawing.Color{
	players.PositionGoalkeeper: drawing.ColorFromHex("e6a700"),
	players.PositionDefender:   drawing.ColorFromHex("2e8b57"),
	players.PositionMidfielder: drawing.ColorFromHex("1f77b4"),
	players.PositionForward:    drawing.ColorFromHex("d62728"),
}

// RenderPlayer draws one of the per-player history charts.
func RenderPlayer(w io.Writer, kind string, entries []history.Entry) error {
	rounds := history.Rounds(entries)
	switch kind {
	case KindPoints:
		return Line(w, "Points History", "Gameweek", "Pts", rounds,
			Series{Name: "Pts", Values: history.Points(entries)})
	case KindCumulative:
		return Line(w, "Cumulative Points", "Gameweek", "Total Points", rounds,
			Series{Name: "Total Points", Values: analysis.CumulativePoints(entries)})
	case KindMinutes:
		return Line(w, "Minutes Played", "Gameweek", "MP", rounds,
			Series{Name: "MP", Values: history.Minutes(entries)})
	case KindExpected:
		xg := make([]float64, len(entries))
		xa := make([]float64, len(entries))
		gs := make([]float64, len(entries))
		as := make([]float64, len(entries))
		for i, e := range entries {
			xg[i] = e.ExpectedGoals
			xa[i] = e.ExpectedAssists
			gs[i] = float64(e.GoalsScored)
			as[i] = float64(e.Assists)
		}
		return Line(w, "Expected vs Actual G/A", "Gameweek", "Count", rounds,
			Series{Name: "xG", Values: xg},
			Series{Name: "xA", Values: xa},
			Series{Name: "GS", Values: gs},
			Series{Name: "A", Values: as},
		)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// RenderLeague draws one of the league analysis charts.
func RenderLeague(w io.Writer, kind string, items []players.Player) error {
	switch kind {
	case KindDistribution:
		return pointsDistribution(w, items)
	case KindXG:
		return Scatter(w, "Points vs Expected Goals", "xG", "Pts", Group{
			Name: "Players",
			X:    analysis.Values(items, analysis.ColumnExpectedGoals),
			Y:    analysis.Values(items, analysis.ColumnPoints),
		})
	case KindXA:
		return Scatter(w, "Points vs Expected Assists", "xA", "Pts", Group{
			Name: "Players",
			X:    analysis.Values(items, analysis.ColumnExpectedAssists),
			Y:    analysis.Values(items, analysis.ColumnPoints),
		})
	case KindCost:
		return Scatter(w, "Points vs Cost by Position", "£", "Pts", byPosition(items)...)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

func pointsDistribution(w io.Writer, items []players.Player) error {
	bins := analysis.Histogram(analysis.Values(items, analysis.ColumnPoints), distributionBins)
	values := make([]chart.Value, 0, len(bins))
	for _, b := range bins {
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%.0f-%.0f", b.Lower, b.Upper),
			Value: float64(b.Count),
		})
	}
	return Bars(w, "Distribution of Total Points", values)
}

func byPosition(items []players.Player) []Group {
	groups := make([]Group, 0, len(players.Positions))
	for _, pos := range players.Positions {
		g := Group{Name: pos, Color: positionColors[pos]}
		for _, p := range items {
			if p.Position == pos {
				g.X = append(g.X, p.Cost)
				g.Y = append(g.Y, float64(p.TotalPoints))
			}
		}
		groups = append(groups, g)
	}
	return groups
}
