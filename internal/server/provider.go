package server

import (
	"log/slog"

	"github.com/preston-bernstein/fpl-data-explorer/internal/config"
	"github.com/preston-bernstein/fpl-data-explorer/internal/providers"
	"github.com/preston-bernstein/fpl-data-explorer/internal/providers/fixture"
	"github.com/preston-bernstein/fpl-data-explorer/internal/providers/fpl"
)

const (
	providerFixture = "fixture"
	providerFPL     = "fpl"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.DataProvider {
	switch normalizeProviderName(cfg.Provider, nil) {
	case providerFixture, "provider":
		return fixture.New()
	case providerFPL:
		return fpl.NewClient(fpl.Config{
			BaseURL: cfg.Fpl.BaseURL,
			Timeout: cfg.Fpl.Timeout,
		})
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}
