package fpl

import (
	"sort"
	"strconv"
	"strings"

	"github.com/preston-bernstein/fpl-data-explorer/internal/domain/fixtures"
	"github.com/preston-bernstein/fpl-data-explorer/internal/domain/history"
	"github.com/preston-bernstein/fpl-data-explorer/internal/domain/players"
	"github.com/preston-bernstein/fpl-data-explorer/internal/domain/teams"
	"github.com/preston-bernstein/fpl-data-explorer/internal/fdr"
)

// Costs are published in tenths of a million.
const costScale = 10.0

var fallbackPositions = map[int]string{
	1: players.PositionGoalkeeper,
	2: players.PositionDefender,
	3: players.PositionMidfielder,
	4: players.PositionForward,
}

func mapPlayers(boot bootstrapResponse, nextFDR map[int]fdr.Rating) []players.Player {
	teamNames := make(map[int]string, len(boot.Teams))
	for _, t := range boot.Teams {
		teamNames[t.ID] = t.Name
	}
	positions := make(map[int]string, len(boot.ElementTypes))
	for _, et := range boot.ElementTypes {
		positions[et.ID] = et.SingularNameShort
	}

	out := make([]players.Player, 0, len(boot.Elements))
	for _, e := range boot.Elements {
		out = append(out, mapPlayer(e, teamNames, positions, nextFDR))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func mapPlayer(e elementResponse, teamNames map[int]string, positions map[int]string, nextFDR map[int]fdr.Rating) players.Player {
	return players.Player{
		ID:                    e.ID,
		Name:                  e.WebName,
		Team:                  teamNames[e.Team],
		TeamID:                e.Team,
		Position:              mapPosition(e.ElementType, positions),
		TotalPoints:           e.TotalPoints,
		Cost:                  float64(e.NowCost) / costScale,
		ExpectedGoals:         parseDecimal(e.ExpectedGoals),
		ExpectedAssists:       parseDecimal(e.ExpectedAssists),
		ExpectedGoalsConceded: parseDecimal(e.ExpectedGoalsConceded),
		GoalsScored:           e.GoalsScored,
		Assists:               e.Assists,
		Minutes:               e.Minutes,
		SelectedBy:            parseDecimal(e.SelectedByPercent),
		Form:                  parseDecimal(e.Form),
		NextDifficulty:        nextFDR[e.Team],
	}
}

func mapPosition(elementType int, positions map[int]string) string {
	if code := strings.TrimSpace(positions[elementType]); code != "" {
		return code
	}
	return fallbackPositions[elementType]
}

func mapTeam(t teamResponse) teams.Team {
	return teams.Team{
		ID:        t.ID,
		Name:      t.Name,
		ShortName: t.ShortName,
		Strength:  t.Strength,
	}
}

// nextDifficultyByTeam picks, for every club, the difficulty of its earliest
// unfinished fixture.
func nextDifficultyByTeam(items []fixtureResponse) map[int]fdr.Rating {
	pending := make([]fixtureResponse, 0, len(items))
	for _, f := range items {
		if !f.Finished {
			pending = append(pending, f)
		}
	}
	sort.SliceStable(pending, func(i, j int) bool {
		return eventOrder(pending[i].Event) < eventOrder(pending[j].Event)
	})

	out := make(map[int]fdr.Rating)
	for _, f := range pending {
		if _, ok := out[f.TeamH]; !ok {
			out[f.TeamH] = difficulty(f.TeamHDifficulty)
		}
		if _, ok := out[f.TeamA]; !ok {
			out[f.TeamA] = difficulty(f.TeamADifficulty)
		}
	}
	return out
}

// difficulty validates a published FDR; anything outside 1..5 becomes 0,
// which renders unstyled.
func difficulty(raw int) fdr.Rating {
	r, ok := fdr.Coerce(raw)
	if !ok {
		return 0
	}
	return r
}

// Unscheduled fixtures (no gameweek yet) sort last.
func eventOrder(event *int) int {
	if event == nil {
		return int(^uint(0) >> 1)
	}
	return *event
}

func mapSummary(playerID int, payload elementSummaryResponse, teamNames map[int]string) players.Summary {
	summary := players.Summary{
		PlayerID: playerID,
		Fixtures: make([]fixtures.Fixture, 0, len(payload.Fixtures)),
		History:  make([]history.Entry, 0, len(payload.History)),
	}
	for _, f := range payload.Fixtures {
		summary.Fixtures = append(summary.Fixtures, mapFixture(f, teamNames))
	}
	for _, h := range payload.History {
		summary.History = append(summary.History, mapHistory(h, teamNames))
	}
	return summary
}

func mapFixture(f summaryFixtureResponse, teamNames map[int]string) fixtures.Fixture {
	opponent := f.TeamH
	if f.IsHome {
		opponent = f.TeamA
	}
	gw := 0
	if f.Event != nil {
		gw = *f.Event
	}
	return fixtures.Fixture{
		ID:         f.ID,
		Gameweek:   gw,
		Kickoff:    f.KickoffTime,
		Opponent:   teamName(teamNames, opponent),
		IsHome:     f.IsHome,
		Difficulty: difficulty(f.Difficulty),
	}
}

func mapHistory(h summaryHistoryResponse, teamNames map[int]string) history.Entry {
	return history.Entry{
		Round:           h.Round,
		Kickoff:         h.KickoffTime,
		Opponent:        teamName(teamNames, h.OpponentTeam),
		WasHome:         h.WasHome,
		Points:          h.TotalPoints,
		Minutes:         h.Minutes,
		GoalsScored:     h.GoalsScored,
		Assists:         h.Assists,
		ExpectedGoals:   parseDecimal(h.ExpectedGoals),
		ExpectedAssists: parseDecimal(h.ExpectedAssists),
		Cost:            float64(h.Value) / costScale,
	}
}

func teamName(names map[int]string, id int) string {
	if name, ok := names[id]; ok && name != "" {
		return name
	}
	return "Team " + strconv.Itoa(id)
}

// parseDecimal reads the string-encoded decimals FPL uses for expected stats.
func parseDecimal(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return v
}
