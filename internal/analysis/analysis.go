// Package analysis computes the league-wide and per-player aggregates shown
// on the dashboard.
package analysis

import (
	"math"
	"sort"

	"github.com/preston-bernstein/fpl-data-explorer/internal/domain/history"
	"github.com/preston-bernstein/fpl-data-explorer/internal/domain/players"
)

// CumulativePoints returns the running total of points across history rows.
func CumulativePoints(entries []history.Entry) []float64 {
	out := make([]float64, len(entries))
	total := 0.0
	for i, e := range entries {
		total += float64(e.Points)
		out[i] = total
	}
	return out
}

// ValuePerMillion is total points divided by cost in £m, or 0 for a free player.
func ValuePerMillion(p players.Player) float64 {
	if p.Cost <= 0 {
		return 0
	}
	return float64(p.TotalPoints) / p.Cost
}

// Column names a numeric player attribute by its table header.
type Column string

const (
	ColumnPoints                Column = "Pts"
	ColumnExpectedGoals         Column = "xG"
	ColumnExpectedAssists       Column = "xA"
	ColumnExpectedGoalsConceded Column = "xGC"
	ColumnCost                  Column = "£"
)

// CorrelationColumns are the attributes compared in the expected stats analysis.
var CorrelationColumns = []Column{ColumnPoints, ColumnExpectedGoals, ColumnExpectedAssists, ColumnExpectedGoalsConceded}

// Value extracts the column from a player; unknown columns read as 0.
func (c Column) Value(p players.Player) float64 {
	switch c {
	case ColumnPoints:
		return float64(p.TotalPoints)
	case ColumnExpectedGoals:
		return p.ExpectedGoals
	case ColumnExpectedAssists:
		return p.ExpectedAssists
	case ColumnExpectedGoalsConceded:
		return p.ExpectedGoalsConceded
	case ColumnCost:
		return p.Cost
	default:
		return 0
	}
}

// Values extracts one column across players, in order.
func Values(items []players.Player, c Column) []float64 {
	out := make([]float64, len(items))
	for i, p := range items {
		out[i] = c.Value(p)
	}
	return out
}

// Matrix is a square correlation matrix labelled by column.
type Matrix struct {
	Columns []Column    `json:"columns"`
	Values  [][]float64 `json:"values"`
}

// At returns the coefficient between columns i and j.
func (m Matrix) At(i, j int) float64 {
	return m.Values[i][j]
}

// Correlation computes pairwise Pearson coefficients. A column with zero
// variance correlates 1 with itself and 0 with everything else, so the
// matrix never holds NaN.
func Correlation(items []players.Player, cols []Column) Matrix {
	series := make([][]float64, len(cols))
	for i, c := range cols {
		series[i] = Values(items, c)
	}
	values := make([][]float64, len(cols))
	for i := range cols {
		values[i] = make([]float64, len(cols))
		for j := range cols {
			if i == j {
				values[i][j] = 1
				continue
			}
			values[i][j] = pearson(series[i], series[j])
		}
	}
	return Matrix{Columns: append([]Column(nil), cols...), Values: values}
}

func pearson(x, y []float64) float64 {
	n := len(x)
	if n < 2 || n != len(y) {
		return 0
	}
	mx, my := mean(x), mean(y)
	var sxy, sxx, syy float64
	for i := 0; i < n; i++ {
		dx, dy := x[i]-mx, y[i]-my
		sxy += dx * dy
		sxx += dx * dx
		syy += dy * dy
	}
	if sxx == 0 || syy == 0 {
		return 0
	}
	r := sxy / math.Sqrt(sxx*syy)
	// clamp float drift
	return math.Max(-1, math.Min(1, r))
}

func mean(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range v {
		sum += x
	}
	return sum / float64(len(v))
}

// Bin is one histogram bucket covering [Lower, Upper); the last bin is closed.
type Bin struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Count int     `json:"count"`
}

// Histogram buckets values into equal-width bins spanning min..max.
func Histogram(values []float64, bins int) []Bin {
	if len(values) == 0 || bins <= 0 {
		return []Bin{}
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if hi == lo {
		return []Bin{{Lower: lo, Upper: hi, Count: len(values)}}
	}
	width := (hi - lo) / float64(bins)
	out := make([]Bin, bins)
	for i := range out {
		out[i].Lower = lo + float64(i)*width
		out[i].Upper = lo + float64(i+1)*width
	}
	out[bins-1].Upper = hi
	for _, v := range values {
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		out[idx].Count++
	}
	return out
}

// Box is a five-number summary.
type Box struct {
	Label  string  `json:"label"`
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
}

// Summarize computes the five-number summary using linear interpolation
// between closest ranks.
func Summarize(label string, values []float64) Box {
	box := Box{Label: label, Count: len(values)}
	if len(values) == 0 {
		return box
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	box.Min = sorted[0]
	box.Max = sorted[len(sorted)-1]
	box.Q1 = quantile(sorted, 0.25)
	box.Median = quantile(sorted, 0.5)
	box.Q3 = quantile(sorted, 0.75)
	return box
}

func quantile(sorted []float64, q float64) float64 {
	pos := q * float64(len(sorted)-1)
	lower := int(math.Floor(pos))
	upper := int(math.Ceil(pos))
	if lower == upper {
		return sorted[lower]
	}
	frac := pos - float64(lower)
	return sorted[lower] + frac*(sorted[upper]-sorted[lower])
}

// BoxStatsByPosition summarises total points per position, in squad order.
// Positions without players are omitted.
func BoxStatsByPosition(items []players.Player) []Box {
	grouped := make(map[string][]float64)
	for _, p := range items {
		grouped[p.Position] = append(grouped[p.Position], float64(p.TotalPoints))
	}
	out := make([]Box, 0, len(players.Positions))
	for _, pos := range players.Positions {
		if vals, ok := grouped[pos]; ok {
			out = append(out, Summarize(pos, vals))
		}
	}
	return out
}
