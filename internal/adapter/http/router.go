package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/splitpot/splitpot/internal/adapter/http/handler"
	"github.com/splitpot/splitpot/internal/adapter/http/middleware"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	ParticipantHandler *handler.ParticipantHandler
	ExpenseHandler     *handler.ExpenseHandler
	BalanceHandler     *handler.BalanceHandler
	DatasetHandler     *handler.DatasetHandler
	HealthHandler      *handler.HealthHandler
	Logger             zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Metrics)
	r.Use(middleware.Recovery)

	// Operational endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/participants", func(r chi.Router) {
			r.Post("/", cfg.ParticipantHandler.Create)
			r.Get("/", cfg.ParticipantHandler.List)
			r.Get("/{id}", cfg.ParticipantHandler.Get)
			r.Put("/{id}", cfg.ParticipantHandler.Update)
			r.Delete("/{id}", cfg.ParticipantHandler.Delete)
		})

		r.Route("/expenses", func(r chi.Router) {
			r.Post("/", cfg.ExpenseHandler.Create)
			r.Get("/", cfg.ExpenseHandler.List)
			r.Get("/{id}", cfg.ExpenseHandler.Get)
			r.Put("/{id}", cfg.ExpenseHandler.Update)
			r.Delete("/{id}", cfg.ExpenseHandler.Delete)
		})

		r.Get("/balances", cfg.BalanceHandler.Balances)
		r.Get("/balances/check", cfg.BalanceHandler.Check)
		r.Get("/settlements", cfg.BalanceHandler.Settlements)

		r.Route("/dataset", func(r chi.Router) {
			r.Get("/export", cfg.DatasetHandler.Export)
			r.Post("/import", cfg.DatasetHandler.Import)
		})
	})

	return r
}
