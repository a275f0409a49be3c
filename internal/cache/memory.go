package cache

import (
	"context"
	"sync"
	"time"

	"github.com/preston-bernstein/fpl-data-explorer/internal/domain/players"
	"github.com/preston-bernstein/fpl-data-explorer/internal/metrics"
)

type memoryEntry struct {
	summary   players.Summary
	expiresAt time.Time
}

// MemoryCache is a process-local SummaryCache with a fixed TTL.
type MemoryCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[int]memoryEntry
	now     func() time.Time
	metrics *metrics.Recorder
}

// NewMemoryCache builds a memory cache. A non-positive ttl keeps entries until Purge.
func NewMemoryCache(ttl time.Duration, recorder *metrics.Recorder) *MemoryCache {
	return &MemoryCache{
		ttl:     ttl,
		entries: make(map[int]memoryEntry),
		now:     time.Now,
		metrics: recorder,
	}
}

// Get returns an unexpired summary.
func (c *MemoryCache) Get(ctx context.Context, playerID int) (players.Summary, bool) {
	_ = ctx
	c.mu.RLock()
	entry, ok := c.entries[playerID]
	c.mu.RUnlock()

	if ok && !entry.expiresAt.IsZero() && !c.now().Before(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, playerID)
		c.mu.Unlock()
		ok = false
	}
	c.metrics.RecordCacheLookup(BackendMemory, ok)
	if !ok {
		return players.Summary{}, false
	}
	return entry.summary, true
}

// Set stores a summary for the configured TTL.
func (c *MemoryCache) Set(ctx context.Context, playerID int, summary players.Summary) {
	_ = ctx
	entry := memoryEntry{summary: summary}
	if c.ttl > 0 {
		entry.expiresAt = c.now().Add(c.ttl)
	}
	c.mu.Lock()
	c.entries[playerID] = entry
	c.mu.Unlock()
}

// Purge drops every entry; used after a forced dataset refresh.
func (c *MemoryCache) Purge() {
	c.mu.Lock()
	c.entries = make(map[int]memoryEntry)
	c.mu.Unlock()
}

// Len reports the number of stored entries, expired or not.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
