package fdr

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Rating is a Fixture Difficulty Rating: 1 (easiest) through 5 (hardest).
type Rating int

const (
	MinRating Rating = 1
	MaxRating Rating = 5
)

// Valid reports whether r is one of the five defined ratings.
func (r Rating) Valid() bool {
	return r >= MinRating && r <= MaxRating
}

// Style is the background/text colour pair applied to a rated cell.
// The zero value means no styling.
type Style struct {
	Background string `json:"background"`
	Text       string `json:"text"`
}

// IsZero reports whether the style applies no colours.
func (s Style) IsZero() bool {
	return s.Background == "" && s.Text == ""
}

// CSS renders the style as an inline declaration, or "" for the zero style.
func (s Style) CSS() string {
	if s.IsZero() {
		return ""
	}
	return "background-color: " + s.Background + "; color: " + s.Text + ";"
}

// Entry pairs a rating with its style.
type Entry struct {
	Rating Rating `json:"rating"`
	Style  Style  `json:"style"`
}

// palette is indexed by rating; index 0 is unused.
var palette = [...]Style{
	{},
	{Background: "darkgreen", Text: "white"},
	{Background: "green", Text: "white"},
	{Background: "grey", Text: "white"},
	{Background: "orange", Text: "white"},
	{Background: "darkred", Text: "white"},
}

// Table returns the rating -> style mapping in rating order.
func Table() []Entry {
	out := make([]Entry, 0, int(MaxRating))
	for r := MinRating; r <= MaxRating; r++ {
		out = append(out, Entry{Rating: r, Style: palette[r]})
	}
	return out
}

// Lookup returns the style for a typed rating and whether it is recognised.
func Lookup(r Rating) (Style, bool) {
	if !r.Valid() {
		return Style{}, false
	}
	return palette[r], true
}

// StyleFor maps a rating value to a style. Only Rating, Go integer types and
// integral floats in 1..5 are recognised. Anything else, strings included,
// gets the zero style; run textual column data through Coerce first.
func StyleFor(v any) Style {
	r, ok := numeric(v)
	if !ok {
		return Style{}
	}
	return palette[r]
}

// CellStyle returns the inline CSS for a single table cell.
func CellStyle(v any) string {
	return StyleFor(v).CSS()
}

// BackgroundColors returns one background colour per input value, in order.
// Unrecognised values, strings included, yield "".
func BackgroundColors(values []any) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = StyleFor(v).Background
	}
	return out
}

// Ratings converts typed ratings for use with BackgroundColors.
func Ratings(rs []Rating) []any {
	out := make([]any, len(rs))
	for i, r := range rs {
		out[i] = r
	}
	return out
}

// Coerce validates a loosely typed column value into a Rating at the data
// boundary. On top of what StyleFor accepts it parses numeric strings and
// json.Number, so "3" and " 3.0 " become 3.
func Coerce(v any) (Rating, bool) {
	switch val := v.(type) {
	case json.Number:
		return fromString(string(val))
	case string:
		return fromString(val)
	}
	return numeric(v)
}

// numeric recognises ratings held in Go numeric types.
func numeric(v any) (Rating, bool) {
	var n int64
	switch val := v.(type) {
	case nil:
		return 0, false
	case Rating:
		n = int64(val)
	case int:
		n = int64(val)
	case int8:
		n = int64(val)
	case int16:
		n = int64(val)
	case int32:
		n = int64(val)
	case int64:
		n = val
	case uint:
		n = clampUint(uint64(val))
	case uint8:
		n = int64(val)
	case uint16:
		n = int64(val)
	case uint32:
		n = int64(val)
	case uint64:
		n = clampUint(val)
	case float32:
		return fromFloat(float64(val))
	case float64:
		return fromFloat(val)
	case *int:
		if val == nil {
			return 0, false
		}
		n = int64(*val)
	default:
		return 0, false
	}
	return fromInt(n)
}

func fromInt(n int64) (Rating, bool) {
	r := Rating(n)
	if int64(r) != n || !r.Valid() {
		return 0, false
	}
	return r, true
}

func fromFloat(f float64) (Rating, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < float64(MinRating) || f > float64(MaxRating) {
		return 0, false
	}
	return Rating(f), true
}

func fromString(s string) (Rating, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return fromInt(n)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return fromFloat(f)
	}
	return 0, false
}

func clampUint(u uint64) int64 {
	if u > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(u)
}
