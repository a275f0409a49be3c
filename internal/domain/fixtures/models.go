package fixtures

import "github.com/preston-bernstein/fpl-data-explorer/internal/fdr"

// Fixture is an upcoming match from one player's point of view.
type Fixture struct {
	ID         int        `json:"id"`
	Gameweek   int        `json:"gameweek"`
	Kickoff    string     `json:"kickoff"`
	Opponent   string     `json:"opponent"`
	IsHome     bool       `json:"isHome"`
	Difficulty fdr.Rating `json:"difficulty"`
}

// Difficulties returns the ratings column in fixture order.
func Difficulties(items []Fixture) []fdr.Rating {
	out := make([]fdr.Rating, len(items))
	for i, f := range items {
		out[i] = f.Difficulty
	}
	return out
}

// Venue renders the home/away marker shown next to the opponent.
func (f Fixture) Venue() string {
	if f.IsHome {
		return "H"
	}
	return "A"
}
