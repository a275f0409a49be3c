package providers

import (
	"context"

	"github.com/preston-bernstein/fpl-data-explorer/internal/domain/players"
	"github.com/preston-bernstein/fpl-data-explorer/internal/domain/teams"
)

// PlayerProvider fetches the transformed player table.
type PlayerProvider interface {
	FetchPlayers(ctx context.Context) ([]players.Player, error)
}

// TeamProvider fetches normalized teams.
type TeamProvider interface {
	FetchTeams(ctx context.Context) ([]teams.Team, error)
}

// SummaryProvider fetches a single player's fixtures and history.
// Implementations return ErrPlayerNotFound for unknown ids.
type SummaryProvider interface {
	FetchPlayerSummary(ctx context.Context, playerID int) (players.Summary, error)
}

// DataProvider combines all provider capabilities; it is the boundary to the
// upstream data collaborator.
type DataProvider interface {
	PlayerProvider
	TeamProvider
	SummaryProvider
}
