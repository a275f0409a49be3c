package config

// Config holds runtime configuration for the server.
type Config struct {
	Port            string
	RefreshInterval Duration
	Provider        string
	CORSOrigins     []string
	AdminToken      string
	Fpl             FplConfig
	Cache           CacheConfig
	Metrics         MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file (DOTENV_FILE, default ".env") is read first when present.
func Load() (Config, error) {
	if err := loadDotEnv(envOrDefault(envDotEnvFile, defaultDotEnvFile)); err != nil {
		return Config{}, err
	}
	return Config{
		Port:            envOrDefault(envPort, defaultPort),
		RefreshInterval: durationEnvOrDefault(envRefreshInterval, defaultRefreshInterval),
		Provider:        envOrDefault(envProvider, defaultProvider),
		CORSOrigins:     listEnvOrDefault(envCORSOrigins, defaultCORSOrigins),
		AdminToken:      envOrDefault(envAdminToken, ""),
		Fpl:             loadFpl(),
		Cache:           loadCache(),
		Metrics:         loadMetrics(),
	}, nil
}
