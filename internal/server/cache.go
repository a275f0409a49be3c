package server

import (
	"log/slog"

	"github.com/preston-bernstein/fpl-data-explorer/internal/cache"
	"github.com/preston-bernstein/fpl-data-explorer/internal/config"
	"github.com/preston-bernstein/fpl-data-explorer/internal/logging"
	"github.com/preston-bernstein/fpl-data-explorer/internal/metrics"
)

var newRedisCache = func(url string, cfg config.CacheConfig, logger *slog.Logger, recorder *metrics.Recorder) (cache.SummaryCache, func() error, error) {
	rc, err := cache.NewRedisCache(url, cfg.SummaryTTL, logger, recorder)
	if err != nil {
		return nil, nil, err
	}
	return rc, rc.Close, nil
}

// buildSummaryCache picks Redis when REDIS_URL is set, falling back to process memory
// when it is empty or cannot be parsed.
func buildSummaryCache(cfg config.CacheConfig, logger *slog.Logger, recorder *metrics.Recorder) (cache.SummaryCache, func() error) {
	if cfg.RedisURL != "" {
		c, closer, err := newRedisCache(cfg.RedisURL, cfg, logger, recorder)
		if err == nil {
			logging.Info(logger, "summary cache ready", slog.String(logging.FieldCache, cache.BackendRedis))
			return c, closer
		}
		logging.Warn(logger, "redis cache unavailable, using memory", slog.String(logging.FieldCache, cache.BackendRedis), "err", err)
	}
	logging.Info(logger, "summary cache ready", slog.String(logging.FieldCache, cache.BackendMemory))
	return cache.NewMemoryCache(cfg.SummaryTTL, recorder), nil
}
