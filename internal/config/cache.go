package config

import "time"

// CacheConfig controls where per-player summaries are cached.
// An empty RedisURL keeps the cache in process memory.
type CacheConfig struct {
	RedisURL   string
	SummaryTTL time.Duration
}

func loadCache() CacheConfig {
	return CacheConfig{
		RedisURL:   envOrDefault(envRedisURL, ""),
		SummaryTTL: durationEnvOrDefault(envSummaryTTL, defaultSummaryTTL),
	}
}
