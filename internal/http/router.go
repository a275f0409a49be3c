package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/preston-bernstein/fpl-data-explorer/internal/http/handlers"
	"github.com/preston-bernstein/fpl-data-explorer/internal/http/middleware"
	"github.com/preston-bernstein/fpl-data-explorer/internal/metrics"
)

// RouterConfig carries the cross-cutting dependencies of the router.
type RouterConfig struct {
	CORSOrigins []string
	Logger      *slog.Logger
	Metrics     *metrics.Recorder
}

// NewRouter registers the dashboard, API, chart and admin routes. The admin
// route is only mounted when admin is non-nil.
func NewRouter(handler *handlers.Handler, admin *handlers.AdminHandler, cfg RouterConfig) nethttp.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging(cfg.Logger, cfg.Metrics))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.GetHead)

	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	r.Get("/health", handler.Health)
	r.Get("/ready", handler.Ready)

	r.Get("/", handler.Explorer)
	r.Get("/analysis", handler.Analysis)

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(corsOptions(cfg.CORSOrigins)))
		r.Get("/players", handler.ListPlayers)
		r.Get("/players/{id}", handler.GetPlayer)
		r.Get("/players/{id}/fixtures", handler.PlayerFixtures)
		r.Get("/players/{id}/history", handler.PlayerHistory)
		r.Get("/teams", handler.ListTeams)
		r.Get("/fdr", handler.FDRLegend)
		r.Get("/analysis/correlation", handler.Correlation)
		r.Get("/analysis/positions", handler.PositionStats)
	})

	r.Route("/charts", func(r chi.Router) {
		r.Get("/players/{id}/{kind}.svg", handler.PlayerChart)
		r.Get("/league/{kind}.svg", handler.LeagueChart)
	})

	if admin != nil {
		r.Post("/admin/refresh", admin.Refresh)
	}
	return r
}

func corsOptions(origins []string) cors.Options {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{nethttp.MethodGet, nethttp.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}
}
