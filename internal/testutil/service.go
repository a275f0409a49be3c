package testutil

import (
	appplayers "github.com/preston-bernstein/fpl-data-explorer/internal/app/players"
	appteams "github.com/preston-bernstein/fpl-data-explorer/internal/app/teams"
	"github.com/preston-bernstein/fpl-data-explorer/internal/cache"
	"github.com/preston-bernstein/fpl-data-explorer/internal/domain/players"
	"github.com/preston-bernstein/fpl-data-explorer/internal/domain/teams"
	"github.com/preston-bernstein/fpl-data-explorer/internal/providers"
	"github.com/preston-bernstein/fpl-data-explorer/internal/store"
)

// NewPlayerService builds a player service backed by an in-memory store preloaded with players
// and a fresh memory summary cache.
func NewPlayerService(items []players.Player, summaries providers.SummaryProvider) *appplayers.Service {
	ms := store.NewMemoryStore()
	if len(items) > 0 {
		ms.SetPlayers(items)
	}
	return appplayers.NewService(ms, summaries, cache.NewMemoryCache(0, nil))
}

// NewTeamService builds a team service preloaded with teams.
func NewTeamService(items []teams.Team) *appteams.Service {
	ms := store.NewMemoryStore()
	if len(items) > 0 {
		ms.SetTeams(items)
	}
	return appteams.NewService(ms)
}
