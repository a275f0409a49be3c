package players

import (
	"context"
	"fmt"
	"strings"

	"github.com/preston-bernstein/fpl-data-explorer/internal/cache"
	"github.com/preston-bernstein/fpl-data-explorer/internal/domain/fixtures"
	"github.com/preston-bernstein/fpl-data-explorer/internal/domain/history"
	"github.com/preston-bernstein/fpl-data-explorer/internal/domain/players"
	"github.com/preston-bernstein/fpl-data-explorer/internal/providers"
)

// Store defines the contract for persisting and retrieving players.
type Store interface {
	ListPlayers() []players.Player
	GetPlayer(id int) (players.Player, bool)
	SetPlayers([]players.Player)
}

// Service coordinates player lookups over the in-memory table and per-player
// summaries fetched on demand from the data collaborator.
type Service struct {
	store     Store
	summaries providers.SummaryProvider
	cache     cache.SummaryCache
}

// NewService constructs a Service. summaries and summaryCache may be nil; without
// a summary provider Summary reports ErrProviderUnavailable.
func NewService(store Store, summaries providers.SummaryProvider, summaryCache cache.SummaryCache) *Service {
	return &Service{store: store, summaries: summaries, cache: summaryCache}
}

// Players returns the current player table ordered by id.
func (s *Service) Players() []players.Player {
	return s.store.ListPlayers()
}

// Search filters players whose name contains query, ignoring case.
// An empty query returns every player.
func (s *Service) Search(query string) []players.Player {
	all := s.store.ListPlayers()
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return all
	}
	out := make([]players.Player, 0, len(all))
	for _, p := range all {
		if strings.Contains(strings.ToLower(p.Name), query) {
			out = append(out, p)
		}
	}
	return out
}

// PlayerByID returns a single player if present.
func (s *Service) PlayerByID(id int) (players.Player, bool) {
	return s.store.GetPlayer(id)
}

// ReplacePlayers swaps the in-memory players with a new snapshot.
func (s *Service) ReplacePlayers(items []players.Player) {
	s.store.SetPlayers(items)
}

// Summary returns fixtures and history for a known player, serving from the
// cache when possible and filling it after a provider fetch.
func (s *Service) Summary(ctx context.Context, id int) (players.Summary, error) {
	if _, ok := s.store.GetPlayer(id); !ok {
		return players.Summary{}, fmt.Errorf("player %d: %w", id, providers.ErrPlayerNotFound)
	}
	if s.cache != nil {
		if summary, ok := s.cache.Get(ctx, id); ok {
			return summary, nil
		}
	}
	if s.summaries == nil {
		return players.Summary{}, providers.ErrProviderUnavailable
	}
	summary, err := s.summaries.FetchPlayerSummary(ctx, id)
	if err != nil {
		return players.Summary{}, err
	}
	if s.cache != nil {
		s.cache.Set(ctx, id, summary)
	}
	return summary, nil
}

// Fixtures returns the upcoming fixtures of a player.
func (s *Service) Fixtures(ctx context.Context, id int) ([]fixtures.Fixture, error) {
	summary, err := s.Summary(ctx, id)
	if err != nil {
		return nil, err
	}
	return summary.Fixtures, nil
}

// History returns the completed gameweeks of a player.
func (s *Service) History(ctx context.Context, id int) ([]history.Entry, error) {
	summary, err := s.Summary(ctx, id)
	if err != nil {
		return nil, err
	}
	return summary.History, nil
}

// PurgeSummaries drops cached summaries when the cache supports it.
func (s *Service) PurgeSummaries() {
	if p, ok := s.cache.(interface{ Purge() }); ok {
		p.Purge()
	}
}
