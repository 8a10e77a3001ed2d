package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/nwatkins/streamtracker/internal/api/handlers"
	"github.com/nwatkins/streamtracker/internal/api/middleware"
	"github.com/nwatkins/streamtracker/internal/config"
	"github.com/nwatkins/streamtracker/internal/pkg/logger"
	"github.com/nwatkins/streamtracker/internal/pkg/metrics"
)

// Handlers bundles everything the router mounts
type Handlers struct {
	Health    *handlers.HealthHandler
	Auth      *handlers.AuthHandler
	Platform  *handlers.PlatformHandler
	Watchlist *handlers.WatchlistHandler
	Discovery *handlers.DiscoveryHandler
	Insights  *handlers.InsightsHandler
}

// New builds the HTTP router with all middleware and routes
func New(cfg *config.Config, log *logger.Logger, h *Handlers) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recovery(log))
	r.Use(middleware.DefaultCORS(cfg.Server.FrontendURL))
	r.Use(metrics.Middleware())
	r.Use(middleware.RateLimit(50, 100)) // 50 req/sec, burst of 100

	// Public routes
	r.Group(func(r chi.Router) {
		r.Get("/swagger/*", httpSwagger.WrapHandler)

		r.Get("/health", h.Health.Healthz)
		r.Get("/healthz", h.Health.Healthz)
		r.Get("/readyz", h.Health.Readyz)
		r.Handle("/metrics", metrics.Handler())

		r.Post("/api/v1/auth/register", h.Auth.Register)
		r.Post("/api/v1/auth/login", h.Auth.Login)
		r.Post("/api/v1/auth/refresh", h.Auth.Refresh)
	})

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(cfg.Auth.JWTSecret))

		r.Get("/api/v1/auth/me", h.Auth.Me)

		r.Route("/api/v1/platforms", func(r chi.Router) {
			r.Get("/", h.Platform.List)
			r.Post("/", h.Platform.Create)
			r.Patch("/{id}", h.Platform.Update)
			r.Delete("/{id}", h.Platform.Delete)
		})

		r.Route("/api/v1/watchlist", func(r chi.Router) {
			r.Get("/", h.Watchlist.List)
			r.Post("/", h.Watchlist.Create)
			r.Patch("/{id}", h.Watchlist.Update)
			r.Delete("/{id}", h.Watchlist.Delete)
		})

		r.Get("/api/v1/discovery", h.Discovery.Get)
		r.Get("/api/v1/insights", h.Insights.Get)
	})

	return r
}
