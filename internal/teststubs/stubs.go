package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/fpl-data-explorer/internal/domain/players"
	"github.com/preston-bernstein/fpl-data-explorer/internal/domain/teams"
)

// StubProvider is a test double for providers.DataProvider.
type StubProvider struct {
	Players   []players.Player
	Teams     []teams.Team
	Summaries map[int]players.Summary
	Err       error
	// SummaryErr overrides Err for FetchPlayerSummary when set.
	SummaryErr error
	Calls      atomic.Int32
	Notify     chan struct{}

	notifyOnce sync.Once
}

// FetchPlayers returns configured players and error while tracking calls.
func (s *StubProvider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	_ = ctx
	s.track()
	return s.Players, s.Err
}

// FetchTeams returns configured teams and error while tracking calls.
func (s *StubProvider) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	_ = ctx
	s.track()
	return s.Teams, s.Err
}

// FetchPlayerSummary returns the configured summary for playerID.
func (s *StubProvider) FetchPlayerSummary(ctx context.Context, playerID int) (players.Summary, error) {
	_ = ctx
	s.track()
	if s.SummaryErr != nil {
		return players.Summary{}, s.SummaryErr
	}
	if s.Err != nil {
		return players.Summary{}, s.Err
	}
	summary, ok := s.Summaries[playerID]
	if !ok {
		return players.Summary{PlayerID: playerID}, nil
	}
	return summary, nil
}

func (s *StubProvider) track() {
	s.Calls.Add(1)
	if s.Notify != nil {
		s.notifyOnce.Do(func() { close(s.Notify) })
	}
}

// StubSummaryCache is an in-memory test double for cache.SummaryCache.
type StubSummaryCache struct {
	mu      sync.Mutex
	Entries map[int]players.Summary
	Gets    int
	Sets    int
}

// Get returns the cached summary if present.
func (c *StubSummaryCache) Get(ctx context.Context, playerID int) (players.Summary, bool) {
	_ = ctx
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Gets++
	s, ok := c.Entries[playerID]
	return s, ok
}

// Set stores the summary.
func (c *StubSummaryCache) Set(ctx context.Context, playerID int, summary players.Summary) {
	_ = ctx
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Sets++
	if c.Entries == nil {
		c.Entries = make(map[int]players.Summary)
	}
	c.Entries[playerID] = summary
}

// StubSink records player and team snapshots written by the poller.
type StubSink struct {
	mu         sync.Mutex
	players    []players.Player
	teams      []teams.Team
	PlayerSets int
	TeamSets   int
}

// SetPlayers records the latest player snapshot.
func (s *StubSink) SetPlayers(items []players.Player) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players = items
	s.PlayerSets++
}

// SetTeams records the latest team snapshot.
func (s *StubSink) SetTeams(items []teams.Team) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teams = items
	s.TeamSets++
}

// Players returns the last recorded player snapshot.
func (s *StubSink) Players() []players.Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.players
}

// Teams returns the last recorded team snapshot.
func (s *StubSink) Teams() []teams.Team {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.teams
}
