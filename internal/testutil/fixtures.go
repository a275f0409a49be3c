package testutil

import (
	"github.com/preston-bernstein/fpl-data-explorer/internal/domain/fixtures"
	"github.com/preston-bernstein/fpl-data-explorer/internal/domain/history"
	"github.com/preston-bernstein/fpl-data-explorer/internal/domain/players"
	"github.com/preston-bernstein/fpl-data-explorer/internal/domain/teams"
	"github.com/preston-bernstein/fpl-data-explorer/internal/fdr"
)

// SamplePlayer returns a minimal player row with the provided id, name and position.
func SamplePlayer(id int, name, position string) players.Player {
	return players.Player{
		ID:              id,
		Name:            name,
		Team:            "Arsenal",
		TeamID:          1,
		Position:        position,
		TotalPoints:     40 + id,
		Cost:            5.0 + float64(id)/2,
		ExpectedGoals:   float64(id) / 2,
		ExpectedAssists: float64(id) / 4,
		Minutes:         450,
		NextDifficulty:  fdr.Rating(id%5 + 1),
	}
}

// SamplePlayers returns four players, one per position, ordered by id.
func SamplePlayers() []players.Player {
	return []players.Player{
		SamplePlayer(1, "Raya", players.PositionGoalkeeper),
		SamplePlayer(2, "Saliba", players.PositionDefender),
		SamplePlayer(3, "Saka", players.PositionMidfielder),
		SamplePlayer(4, "Havertz", players.PositionForward),
	}
}

// SampleTeam returns a club with the provided id and name.
func SampleTeam(id int, name string) teams.Team {
	short := name
	if len(short) > 3 {
		short = short[:3]
	}
	return teams.Team{ID: id, Name: name, ShortName: short, Strength: 3}
}

// SampleSummary builds a summary whose fixtures carry the given difficulties and
// whose history has one entry per points value.
func SampleSummary(playerID int, difficulties []fdr.Rating, points []int) players.Summary {
	summary := players.Summary{PlayerID: playerID}
	for i, d := range difficulties {
		summary.Fixtures = append(summary.Fixtures, fixtures.Fixture{
			ID:         100 + i,
			Gameweek:   10 + i,
			Kickoff:    "2024-10-19T14:00:00Z",
			Opponent:   "Opponent",
			IsHome:     i%2 == 0,
			Difficulty: d,
		})
	}
	for i, p := range points {
		summary.History = append(summary.History, history.Entry{
			Round:    i + 1,
			Opponent: "Opponent",
			Points:   p,
			Minutes:  90,
			Cost:     5.5,
		})
	}
	return summary
}
