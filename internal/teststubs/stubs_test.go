package teststubs

import (
	"context"
	"errors"
	"testing"

	"github.com/preston-bernstein/fpl-data-explorer/internal/domain/players"
)

func TestStubProviderTracksCalls(t *testing.T) {
	err := errors.New("boom")
	p := &StubProvider{Players: []players.Player{{ID: 1}}, Err: err}
	if _, got := p.FetchPlayers(context.Background()); !errors.Is(got, err) {
		t.Fatalf("expected error passthrough, got %v", got)
	}
	if _, got := p.FetchTeams(context.Background()); !errors.Is(got, err) {
		t.Fatalf("expected error passthrough, got %v", got)
	}
	if p.Calls.Load() != 2 {
		t.Fatalf("expected call count 2, got %d", p.Calls.Load())
	}
}

func TestStubProviderSummaries(t *testing.T) {
	p := &StubProvider{Summaries: map[int]players.Summary{3: {PlayerID: 3}}, Notify: make(chan struct{})}
	got, err := p.FetchPlayerSummary(context.Background(), 3)
	if err != nil || got.PlayerID != 3 {
		t.Fatalf("unexpected summary %+v err %v", got, err)
	}
	select {
	case <-p.Notify:
	default:
		t.Fatalf("expected notify channel closed")
	}
	// a second call must not panic on the closed channel
	if got, _ := p.FetchPlayerSummary(context.Background(), 9); got.PlayerID != 9 {
		t.Fatalf("expected default summary for unknown id, got %+v", got)
	}

	p.SummaryErr = errors.New("summary down")
	if _, err := p.FetchPlayerSummary(context.Background(), 3); !errors.Is(err, p.SummaryErr) {
		t.Fatalf("expected summary error, got %v", err)
	}
}

func TestStubSummaryCache(t *testing.T) {
	c := &StubSummaryCache{}
	if _, ok := c.Get(context.Background(), 1); ok {
		t.Fatalf("expected miss on empty cache")
	}
	c.Set(context.Background(), 1, players.Summary{PlayerID: 1})
	if s, ok := c.Get(context.Background(), 1); !ok || s.PlayerID != 1 {
		t.Fatalf("expected hit, got %+v ok=%v", s, ok)
	}
	if c.Gets != 2 || c.Sets != 1 {
		t.Fatalf("unexpected counters gets=%d sets=%d", c.Gets, c.Sets)
	}
}

func TestStubSink(t *testing.T) {
	s := &StubSink{}
	s.SetPlayers([]players.Player{{ID: 1}})
	s.SetTeams(nil)
	if len(s.Players()) != 1 || s.Teams() != nil || s.PlayerSets != 1 || s.TeamSets != 1 {
		t.Fatalf("unexpected sink state %+v", s)
	}
}
