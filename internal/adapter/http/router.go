package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/iho/gojournal/internal/adapter/http/handler"
	"github.com/iho/gojournal/internal/adapter/http/middleware"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	JournalHandler *handler.JournalHandler
	AccountHandler *handler.AccountHandler
	ReportHandler  *handler.ReportHandler
	ProductHandler *handler.ProductHandler
	HealthHandler  *handler.HealthHandler
	Logging        *middleware.LoggingMiddleware
	Recovery       *middleware.RecoveryMiddleware
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	if cfg.Logging != nil {
		r.Use(cfg.Logging.Wrap)
	}
	r.Use(middleware.Metrics)
	if cfg.Recovery != nil {
		r.Use(cfg.Recovery.Wrap)
	}

	// Health and telemetry endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Journal entries
		r.Route("/journals", func(r chi.Router) {
			r.Post("/", cfg.JournalHandler.Register)
			r.Get("/", cfg.JournalHandler.List)
			r.Get("/{id}", cfg.JournalHandler.Get)
			r.Put("/{id}", cfg.JournalHandler.Correct)
			r.Post("/{id}/approve", cfg.JournalHandler.Approve)
			r.Get("/{id}/history", cfg.JournalHandler.History)
		})

		// Account directory
		r.Route("/accounts", func(r chi.Router) {
			r.Get("/", cfg.AccountHandler.List)
			r.Get("/{code}", cfg.AccountHandler.Get)
		})

		// Reports
		r.Route("/reports", func(r chi.Router) {
			r.Get("/profit-and-loss", cfg.ReportHandler.ProfitAndLoss)
			r.Get("/journal-lines", cfg.ReportHandler.Lines)
		})

		// Product catalog
		r.Route("/products", func(r chi.Router) {
			r.Post("/", cfg.ProductHandler.Add)
			r.Get("/", cfg.ProductHandler.List)
			r.Get("/stocking", cfg.ProductHandler.Stocking)
			r.Post("/stocking/suspend", cfg.ProductHandler.SuspendStocking)
			r.Post("/stocking/resume", cfg.ProductHandler.ResumeStocking)
			r.Put("/{id}", cfg.ProductHandler.Update)
		})
	})

	return r
}
