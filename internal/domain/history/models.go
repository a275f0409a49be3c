package history

// Entry is one completed gameweek appearance for a player.
// JSON keys follow the column names the dashboard displays.
type Entry struct {
	Round           int     `json:"round"`
	Kickoff         string  `json:"kickoff"`
	Opponent        string  `json:"opponent"`
	WasHome         bool    `json:"wasHome"`
	Points          int     `json:"Pts"`
	Minutes         int     `json:"MP"`
	GoalsScored     int     `json:"GS"`
	Assists         int     `json:"A"`
	ExpectedGoals   float64 `json:"xG"`
	ExpectedAssists float64 `json:"xA"`
	Cost            float64 `json:"£"`
}

// Points returns the points column in round order.
func Points(entries []Entry) []float64 {
	out := make([]float64, len(entries))
	for i, e := range entries {
		out[i] = float64(e.Points)
	}
	return out
}

// Minutes returns the minutes-played column in round order.
func Minutes(entries []Entry) []float64 {
	out := make([]float64, len(entries))
	for i, e := range entries {
		out[i] = float64(e.Minutes)
	}
	return out
}

// Rounds returns the gameweek numbers used as the x axis for history charts.
func Rounds(entries []Entry) []float64 {
	out := make([]float64, len(entries))
	for i, e := range entries {
		out[i] = float64(e.Round)
	}
	return out
}
