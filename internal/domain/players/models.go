package players

import (
	"github.com/preston-bernstein/fpl-data-explorer/internal/domain/fixtures"
	"github.com/preston-bernstein/fpl-data-explorer/internal/domain/history"
	"github.com/preston-bernstein/fpl-data-explorer/internal/fdr"
)

// Position codes used by the FPL game.
const (
	PositionGoalkeeper = "GKP"
	PositionDefender   = "DEF"
	PositionMidfielder = "MID"
	PositionForward    = "FWD"
)

// Positions lists position codes in squad order.
var Positions = []string{PositionGoalkeeper, PositionDefender, PositionMidfielder, PositionForward}

// Player is one row of the transformed player table.
type Player struct {
	ID                    int        `json:"player_id"`
	Name                  string     `json:"player_name"`
	Team                  string     `json:"team"`
	TeamID                int        `json:"team_id"`
	Position              string     `json:"pos"`
	TotalPoints           int        `json:"Pts"`
	Cost                  float64    `json:"£"`
	ExpectedGoals         float64    `json:"xG"`
	ExpectedAssists       float64    `json:"xA"`
	ExpectedGoalsConceded float64    `json:"xGC"`
	GoalsScored           int        `json:"GS"`
	Assists               int        `json:"A"`
	Minutes               int        `json:"MP"`
	SelectedBy            float64    `json:"selected_by"`
	Form                  float64    `json:"form"`
	NextDifficulty        fdr.Rating `json:"next_fdr,omitempty"`
}

// Summary holds the per-player detail tables: upcoming fixtures and past gameweeks.
type Summary struct {
	PlayerID int                `json:"player_id"`
	Fixtures []fixtures.Fixture `json:"fixtures"`
	History  []history.Entry    `json:"history"`
}
