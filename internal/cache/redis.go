package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/preston-bernstein/fpl-data-explorer/internal/domain/players"
	"github.com/preston-bernstein/fpl-data-explorer/internal/logging"
	"github.com/preston-bernstein/fpl-data-explorer/internal/metrics"
)

// redisClient is the subset of *redis.Client the cache uses.
type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Close() error
}

// RedisCache stores summaries as JSON in Redis under fpl:summary:{id}.
type RedisCache struct {
	client  redisClient
	ttl     time.Duration
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// NewRedisCache connects to the Redis instance at url (redis://host:port/db).
func NewRedisCache(url string, ttl time.Duration, logger *slog.Logger, recorder *metrics.Recorder) (*RedisCache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return newRedisCache(redis.NewClient(opts), ttl, logger, recorder), nil
}

func newRedisCache(client redisClient, ttl time.Duration, logger *slog.Logger, recorder *metrics.Recorder) *RedisCache {
	return &RedisCache{
		client:  client,
		ttl:     ttl,
		logger:  logger,
		metrics: recorder,
	}
}

// Get returns the cached summary. Missing keys, Redis errors and corrupt
// payloads all count as a miss.
func (c *RedisCache) Get(ctx context.Context, playerID int) (players.Summary, bool) {
	key := SummaryKey(playerID)
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.warn(ctx, "summary cache read failed", key, err)
		}
		c.metrics.RecordCacheLookup(BackendRedis, false)
		return players.Summary{}, false
	}

	var summary players.Summary
	if err := json.Unmarshal(data, &summary); err != nil {
		c.warn(ctx, "summary cache payload invalid", key, err)
		c.metrics.RecordCacheLookup(BackendRedis, false)
		return players.Summary{}, false
	}
	c.metrics.RecordCacheLookup(BackendRedis, true)
	return summary, true
}

// Set writes the summary with the configured TTL; failures are logged only.
func (c *RedisCache) Set(ctx context.Context, playerID int, summary players.Summary) {
	key := SummaryKey(playerID)
	data, err := json.Marshal(summary)
	if err != nil {
		c.warn(ctx, "summary cache encode failed", key, err)
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.warn(ctx, "summary cache write failed", key, err)
	}
}

// Close releases the Redis connection pool.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

func (c *RedisCache) warn(ctx context.Context, msg, key string, err error) {
	logger := logging.FromContext(ctx, c.logger)
	logging.Warn(logger, msg,
		logging.FieldCache, BackendRedis,
		"key", key,
		"error", err,
	)
}
