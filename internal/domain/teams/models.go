package teams

// Team represents a Premier League club as referenced by players and fixtures.
// Kept in its own package so players, fixtures and history can share it.
type Team struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	Strength  int    `json:"strength"`
}
