package server

import (
	"log/slog"

	"github.com/preston-bernstein/fpl-data-explorer/internal/config"
	"github.com/preston-bernstein/fpl-data-explorer/internal/metrics"
	"github.com/preston-bernstein/fpl-data-explorer/internal/providers"
	"github.com/preston-bernstein/fpl-data-explorer/internal/providers/fpl"
)

// providerFactory assembles the provider with shared wrappers (rate limit + retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.DataProvider {
	base := selectProvider(cfg, f.logger)
	name := normalizeProviderName(cfg.Provider, base)
	// Only the live API has a quota worth spacing calls for.
	if _, live := base.(*fpl.Client); live {
		base = providers.NewRateLimitedProvider(base, cfg.Fpl.MinInterval, f.logger)
		name = providerFPL
	}
	return providers.NewRetryingProvider(base, f.logger, f.metrics, name, 0, 0)
}
