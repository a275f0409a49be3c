package config

import "time"

// FplConfig controls how we talk to the Fantasy Premier League API.
type FplConfig struct {
	BaseURL     string
	Timeout     time.Duration
	MinInterval time.Duration // minimum spacing between upstream calls
}

func loadFpl() FplConfig {
	return FplConfig{
		BaseURL:     envOrDefault(envFplBaseURL, defaultFplBaseURL),
		Timeout:     durationEnvOrDefault(envFplTimeout, defaultFplTimeout),
		MinInterval: durationEnvOrDefault(envFplMinInterval, defaultFplMinInterval),
	}
}
