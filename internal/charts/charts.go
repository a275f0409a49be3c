// Package charts renders dashboard charts as SVG with go-chart.
package charts

import (
	"errors"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	defaultWidth  = 720
	defaultHeight = 360
)

var (
	// ErrNotEnoughData is returned when a chart would have fewer than two points.
	ErrNotEnoughData = errors.New("charts: not enough data")
	// ErrUnknownKind is returned for chart names the renderer does not know.
	ErrUnknownKind = errors.New("charts: unknown chart kind")
)

// Series is one named line over a shared x axis.
type Series struct {
	Name   string
	Values []float64
	Color  drawing.Color
}

// Group is one coloured set of scatter points.
type Group struct {
	Name  string
	X     []float64
	Y     []float64
	Color drawing.Color
}

// Line renders one or more series against x as a line chart.
func Line(w io.Writer, title, xName, yName string, x []float64, series ...Series) error {
	if len(x) < 2 || len(series) == 0 {
		return ErrNotEnoughData
	}
	out := make([]chart.Series, 0, len(series))
	all := make([]float64, 0, len(x)*len(series))
	for i, s := range series {
		if len(s.Values) != len(x) {
			return ErrNotEnoughData
		}
		color := s.Color
		if color.IsZero() {
			color = chart.GetDefaultColor(i)
		}
		out = append(out, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: x,
			YValues: s.Values,
			Style: chart.Style{
				StrokeWidth: 2,
				StrokeColor: color,
				DotWidth:    3,
				DotColor:    color,
			},
		})
		all = append(all, s.Values...)
	}

	ch := newChart(title, xName, yName, x, all)
	ch.Series = out
	if len(series) > 1 {
		ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	}
	return ch.Render(chart.SVG, w)
}

// Scatter renders point groups without connecting lines.
func Scatter(w io.Writer, title, xName, yName string, groups ...Group) error {
	var xs, ys []float64
	out := make([]chart.Series, 0, len(groups))
	for i, g := range groups {
		if len(g.X) != len(g.Y) {
			return ErrNotEnoughData
		}
		if len(g.X) == 0 {
			continue
		}
		color := g.Color
		if color.IsZero() {
			color = chart.GetDefaultColor(i)
		}
		out = append(out, chart.ContinuousSeries{
			Name:    g.Name,
			XValues: g.X,
			YValues: g.Y,
			Style:   pointStyle(color),
		})
		xs = append(xs, g.X...)
		ys = append(ys, g.Y...)
	}
	if len(xs) < 2 {
		return ErrNotEnoughData
	}

	ch := newChart(title, xName, yName, xs, ys)
	ch.Series = out
	if len(out) > 1 {
		ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	}
	return ch.Render(chart.SVG, w)
}

// Bars renders labelled bar values.
func Bars(w io.Writer, title string, values []chart.Value) error {
	if len(values) < 2 {
		return ErrNotEnoughData
	}
	bc := chart.BarChart{
		Title:    title,
		Width:    defaultWidth,
		Height:   defaultHeight,
		BarWidth: barWidth(len(values)),
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
		},
		Bars: values,
	}
	if flat(valuesOf(values)) {
		bc.YAxis.Range = padRange(valuesOf(values))
	}
	return bc.Render(chart.SVG, w)
}

func newChart(title, xName, yName string, xs, ys []float64) chart.Chart {
	ch := chart.Chart{
		Title:      title,
		Width:      defaultWidth,
		Height:     defaultHeight,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      chart.XAxis{Name: xName},
		YAxis:      chart.YAxis{Name: yName},
	}
	if flat(xs) {
		ch.XAxis.Range = padRange(xs)
	}
	if flat(ys) {
		ch.YAxis.Range = padRange(ys)
	}
	return ch
}

// pointStyle renders points only, no connecting line.
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    4,
		DotColor:    col,
	}
}

// go-chart rejects a zero-width range, so flat data gets a unit margin.
func flat(values []float64) bool {
	if len(values) == 0 {
		return false
	}
	for _, v := range values[1:] {
		if v != values[0] {
			return false
		}
	}
	return true
}

func padRange(values []float64) *chart.ContinuousRange {
	v := values[0]
	return &chart.ContinuousRange{Min: v - 1, Max: v + 1}
}

func valuesOf(values []chart.Value) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v.Value
	}
	return out
}

func barWidth(n int) int {
	w := (defaultWidth - 80) / n
	switch {
	case w > 60:
		return 60
	case w < 8:
		return 8
	default:
		return w - 4
	}
}
