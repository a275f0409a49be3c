package config

import "time"

const (
	envPort            = "PORT"
	envRefreshInterval = "REFRESH_INTERVAL"
	envProvider        = "PROVIDER"
	envFplBaseURL      = "FPL_BASE_URL"
	envFplTimeout      = "FPL_TIMEOUT"
	envFplMinInterval  = "FPL_MIN_INTERVAL"
	envRedisURL        = "REDIS_URL"
	envSummaryTTL      = "SUMMARY_TTL"
	envCORSOrigins     = "CORS_ORIGINS"
	envAdminToken      = "ADMIN_TOKEN"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"
	envDotEnvFile      = "DOTENV_FILE"

	defaultPort = "8501"
	// The bootstrap dataset changes a few times a day; refreshing more often only burns upstream quota.
	defaultRefreshInterval = 15 * Duration(time.Minute)
	defaultProvider        = "fixture"
	defaultFplBaseURL      = "https://fantasy.premierleague.com/api"
	defaultFplTimeout      = 10 * Duration(time.Second)
	defaultFplMinInterval  = 500 * Duration(time.Millisecond)
	defaultSummaryTTL      = 30 * Duration(time.Minute)
	defaultCORSOrigins     = "*"
	defaultMetricsPort     = "9090"
	defaultServiceName     = "fpl-data-explorer"
	defaultDotEnvFile      = ".env"
)
