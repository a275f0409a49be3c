package fixture

import (
	"context"
	"fmt"
	"time"

	"github.com/preston-bernstein/fpl-data-explorer/internal/domain/fixtures"
	"github.com/preston-bernstein/fpl-data-explorer/internal/domain/history"
	"github.com/preston-bernstein/fpl-data-explorer/internal/domain/players"
	"github.com/preston-bernstein/fpl-data-explorer/internal/domain/teams"
	"github.com/preston-bernstein/fpl-data-explorer/internal/fdr"
	"github.com/preston-bernstein/fpl-data-explorer/internal/providers"
	"github.com/preston-bernstein/fpl-data-explorer/internal/timeutil"
)

const (
	// CurrentGameweek is the first gameweek without a result in the dataset.
	CurrentGameweek = 6
	upcomingCount   = 5
)

var clubs = []teams.Team{
	{ID: 1, Name: "Arsenal", ShortName: "ARS", Strength: 5},
	{ID: 2, Name: "Aston Villa", ShortName: "AVL", Strength: 4},
	{ID: 3, Name: "Brentford", ShortName: "BRE", Strength: 3},
	{ID: 4, Name: "Chelsea", ShortName: "CHE", Strength: 4},
	{ID: 5, Name: "Ipswich", ShortName: "IPS", Strength: 2},
	{ID: 6, Name: "Liverpool", ShortName: "LIV", Strength: 5},
	{ID: 7, Name: "Southampton", ShortName: "SOU", Strength: 1},
}

var roster = []players.Player{
	{ID: 1, Name: "Raya", TeamID: 1, Position: players.PositionGoalkeeper, TotalPoints: 42, Cost: 5.5, ExpectedGoals: 0, ExpectedAssists: 0.1, ExpectedGoalsConceded: 4.8, Minutes: 450, SelectedBy: 18.4, Form: 5.2},
	{ID: 2, Name: "Saliba", TeamID: 1, Position: players.PositionDefender, TotalPoints: 38, Cost: 6.0, ExpectedGoals: 0.6, ExpectedAssists: 0.2, ExpectedGoalsConceded: 4.6, GoalsScored: 1, Minutes: 450, SelectedBy: 30.1, Form: 4.6},
	{ID: 3, Name: "Saka", TeamID: 1, Position: players.PositionMidfielder, TotalPoints: 51, Cost: 10.0, ExpectedGoals: 2.9, ExpectedAssists: 2.4, ExpectedGoalsConceded: 4.2, GoalsScored: 3, Assists: 4, Minutes: 431, SelectedBy: 41.2, Form: 7.1},
	{ID: 4, Name: "Watkins", TeamID: 2, Position: players.PositionForward, TotalPoints: 40, Cost: 9.0, ExpectedGoals: 3.8, ExpectedAssists: 0.9, ExpectedGoalsConceded: 6.1, GoalsScored: 4, Assists: 1, Minutes: 440, SelectedBy: 22.7, Form: 6.0},
	{ID: 5, Name: "Martinez", TeamID: 2, Position: players.PositionGoalkeeper, TotalPoints: 27, Cost: 5.0, ExpectedGoalsConceded: 6.5, Minutes: 450, SelectedBy: 9.3, Form: 3.4},
	{ID: 6, Name: "Mbeumo", TeamID: 3, Position: players.PositionMidfielder, TotalPoints: 45, Cost: 7.5, ExpectedGoals: 3.1, ExpectedAssists: 1.2, ExpectedGoalsConceded: 8.0, GoalsScored: 5, Assists: 1, Minutes: 446, SelectedBy: 35.6, Form: 6.8},
	{ID: 7, Name: "Palmer", TeamID: 4, Position: players.PositionMidfielder, TotalPoints: 55, Cost: 11.0, ExpectedGoals: 3.5, ExpectedAssists: 2.7, ExpectedGoalsConceded: 5.9, GoalsScored: 5, Assists: 3, Minutes: 448, SelectedBy: 52.3, Form: 8.4},
	{ID: 8, Name: "Colwill", TeamID: 4, Position: players.PositionDefender, TotalPoints: 22, Cost: 4.5, ExpectedGoals: 0.1, ExpectedAssists: 0.3, ExpectedGoalsConceded: 6.0, Minutes: 405, SelectedBy: 6.2, Form: 2.8},
	{ID: 9, Name: "Delap", TeamID: 5, Position: players.PositionForward, TotalPoints: 24, Cost: 5.5, ExpectedGoals: 1.9, ExpectedAssists: 0.4, ExpectedGoalsConceded: 10.2, GoalsScored: 2, Minutes: 380, SelectedBy: 8.9, Form: 3.9},
	{ID: 10, Name: "Salah", TeamID: 6, Position: players.PositionMidfielder, TotalPoints: 62, Cost: 12.5, ExpectedGoals: 4.2, ExpectedAssists: 2.9, ExpectedGoalsConceded: 3.9, GoalsScored: 6, Assists: 4, Minutes: 450, SelectedBy: 61.0, Form: 9.2},
	{ID: 11, Name: "Alexander-Arnold", TeamID: 6, Position: players.PositionDefender, TotalPoints: 36, Cost: 7.0, ExpectedGoals: 0.4, ExpectedAssists: 1.8, ExpectedGoalsConceded: 3.9, Assists: 3, Minutes: 410, SelectedBy: 24.5, Form: 4.4},
	{ID: 12, Name: "Archer", TeamID: 7, Position: players.PositionForward, TotalPoints: 12, Cost: 4.5, ExpectedGoals: 0.8, ExpectedAssists: 0.2, ExpectedGoalsConceded: 11.5, GoalsScored: 1, Minutes: 210, SelectedBy: 1.4, Form: 1.5},
}

// Provider serves a small deterministic league for local runs and tests.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

// FetchTeams returns the bundled clubs.
func (p *Provider) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	_ = ctx
	out := make([]teams.Team, len(clubs))
	copy(out, clubs)
	return out, nil
}

// FetchPlayers returns the bundled player table with team names and the
// next fixture's difficulty filled in.
func (p *Provider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	_ = ctx
	out := make([]players.Player, len(roster))
	for i, pl := range roster {
		pl.Team = clubName(pl.TeamID)
		if next := upcomingFor(pl.TeamID, p.now()); len(next) > 0 {
			pl.NextDifficulty = next[0].Difficulty
		}
		out[i] = pl
	}
	return out, nil
}

// FetchPlayerSummary returns generated fixtures and history for a bundled player.
func (p *Provider) FetchPlayerSummary(ctx context.Context, playerID int) (players.Summary, error) {
	_ = ctx
	pl, ok := findPlayer(playerID)
	if !ok {
		return players.Summary{}, fmt.Errorf("fixture: player %d: %w", playerID, providers.ErrPlayerNotFound)
	}
	return players.Summary{
		PlayerID: playerID,
		Fixtures: upcomingFor(pl.TeamID, p.now()),
		History:  historyFor(pl, p.now()),
	}, nil
}

func findPlayer(id int) (players.Player, bool) {
	for _, pl := range roster {
		if pl.ID == id {
			return pl, true
		}
	}
	return players.Player{}, false
}

func clubName(id int) string {
	for _, c := range clubs {
		if c.ID == id {
			return c.Name
		}
	}
	return ""
}

// opponentFor rotates through the other clubs so each gameweek pairs a team
// with a different opponent.
func opponentFor(teamID, gameweek int) teams.Team {
	others := make([]teams.Team, 0, len(clubs)-1)
	for _, c := range clubs {
		if c.ID != teamID {
			others = append(others, c)
		}
	}
	return others[(gameweek+teamID)%len(others)]
}

func isHome(teamID, gameweek int) bool {
	return (teamID+gameweek)%2 == 0
}

func kickoff(now time.Time, gameweek int) string {
	start := now.UTC().Truncate(24 * time.Hour)
	offset := time.Duration(gameweek-CurrentGameweek) * 7 * 24 * time.Hour
	return timeutil.FormatKickoff(start.Add(offset + 15*time.Hour))
}

func upcomingFor(teamID int, now time.Time) []fixtures.Fixture {
	out := make([]fixtures.Fixture, 0, upcomingCount)
	for gw := CurrentGameweek; gw < CurrentGameweek+upcomingCount; gw++ {
		opp := opponentFor(teamID, gw)
		out = append(out, fixtures.Fixture{
			ID:         teamID*100 + gw,
			Gameweek:   gw,
			Kickoff:    kickoff(now, gw),
			Opponent:   opp.Name,
			IsHome:     isHome(teamID, gw),
			Difficulty: fdr.Rating(opp.Strength),
		})
	}
	return out
}

func historyFor(pl players.Player, now time.Time) []history.Entry {
	out := make([]history.Entry, 0, CurrentGameweek-1)
	for gw := 1; gw < CurrentGameweek; gw++ {
		opp := opponentFor(pl.TeamID, gw)
		points := (pl.ID*7+gw*3)%12 + 1
		minutes := 90
		if points <= 2 {
			minutes = 45 + gw*5
		}
		out = append(out, history.Entry{
			Round:           gw,
			Kickoff:         kickoff(now, gw),
			Opponent:        opp.Name,
			WasHome:         isHome(pl.TeamID, gw),
			Points:          points,
			Minutes:         minutes,
			GoalsScored:     points / 6,
			Assists:         (points / 3) % 2,
			ExpectedGoals:   float64(points%6) / 10,
			ExpectedAssists: float64(points%4) / 10,
			Cost:            pl.Cost,
		})
	}
	return out
}
