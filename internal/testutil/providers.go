package testutil

import (
	"context"

	"github.com/preston-bernstein/fpl-data-explorer/internal/domain/players"
	"github.com/preston-bernstein/fpl-data-explorer/internal/domain/teams"
	"github.com/preston-bernstein/fpl-data-explorer/internal/providers"
)

// GoodProvider returns the provided tables with no error.
type GoodProvider struct {
	Players   []players.Player
	Teams     []teams.Team
	Summaries map[int]players.Summary
}

func (p GoodProvider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	return p.Players, nil
}

func (p GoodProvider) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	return p.Teams, nil
}

func (p GoodProvider) FetchPlayerSummary(ctx context.Context, playerID int) (players.Summary, error) {
	if s, ok := p.Summaries[playerID]; ok {
		return s, nil
	}
	return players.Summary{}, providers.ErrPlayerNotFound
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	return nil, p.Err
}

func (p ErrProvider) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	return nil, p.Err
}

func (p ErrProvider) FetchPlayerSummary(ctx context.Context, playerID int) (players.Summary, error) {
	return players.Summary{}, p.Err
}

// UnavailableProvider returns ErrProviderUnavailable.
type UnavailableProvider struct{}

func (UnavailableProvider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	return nil, providers.ErrProviderUnavailable
}

func (UnavailableProvider) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	return nil, providers.ErrProviderUnavailable
}

func (UnavailableProvider) FetchPlayerSummary(ctx context.Context, playerID int) (players.Summary, error) {
	return players.Summary{}, providers.ErrProviderUnavailable
}
