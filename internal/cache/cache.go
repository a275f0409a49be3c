package cache

import (
	"context"
	"strconv"

	"github.com/preston-bernstein/fpl-data-explorer/internal/domain/players"
)

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"

	keyPrefix = "fpl:summary:"
)

// SummaryCache stores per-player summaries. Lookups never fail: backend
// errors are reported as a miss.
type SummaryCache interface {
	Get(ctx context.Context, playerID int) (players.Summary, bool)
	Set(ctx context.Context, playerID int, summary players.Summary)
}

// SummaryKey is the storage key for a player's summary.
func SummaryKey(playerID int) string {
	return keyPrefix + strconv.Itoa(playerID)
}
