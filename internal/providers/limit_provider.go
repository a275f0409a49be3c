package providers

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/fpl-data-explorer/internal/domain/players"
	"github.com/preston-bernstein/fpl-data-explorer/internal/domain/teams"
)

// rateLimitedProvider wraps a DataProvider and enforces a minimum interval between upstream calls.
type rateLimitedProvider struct {
	next      DataProvider
	interval  time.Duration
	ticker    *time.Ticker
	logger    *slog.Logger
	closeOnce sync.Once
}

// NewRateLimitedProvider returns a DataProvider that limits calls to the given interval.
// Calls block until the interval elapses to avoid exceeding upstream quotas.
func NewRateLimitedProvider(next DataProvider, interval time.Duration, logger *slog.Logger) DataProvider {
	if interval <= 0 {
		interval = time.Second
	}
	return &rateLimitedProvider{
		next:     next,
		interval: interval,
		ticker:   time.NewTicker(interval),
		logger:   logger,
	}
}

func (p *rateLimitedProvider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	if err := p.wait(ctx, "players"); err != nil {
		return nil, err
	}
	return p.next.FetchPlayers(ctx)
}

func (p *rateLimitedProvider) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	if err := p.wait(ctx, "teams"); err != nil {
		return nil, err
	}
	return p.next.FetchTeams(ctx)
}

func (p *rateLimitedProvider) FetchPlayerSummary(ctx context.Context, playerID int) (players.Summary, error) {
	if err := p.wait(ctx, "summary"); err != nil {
		return players.Summary{}, err
	}
	return p.next.FetchPlayerSummary(ctx, playerID)
}

func (p *rateLimitedProvider) wait(ctx context.Context, op string) error {
	if p == nil || p.next == nil {
		if p != nil {
			logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", "provider unavailable")
		}
		return ErrProviderUnavailable
	}
	select {
	case <-ctx.Done():
		logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", "rate-limited fetch canceled", "op", op)
		return ctx.Err()
	case <-p.ticker.C:
	}
	logWithProvider(ctx, p.logger, slog.LevelDebug, "rate-limited", "rate-limited provider fetch", "op", op)
	return nil
}

// Close stops the underlying ticker.
func (p *rateLimitedProvider) Close() {
	p.closeOnce.Do(func() {
		p.ticker.Stop()
		if c, ok := p.next.(interface{ Close() }); ok {
			c.Close()
		}
	})
}
