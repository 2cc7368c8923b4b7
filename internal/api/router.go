package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/clearfolio/fund-catalog-backend/internal/api/handlers"
	custommiddleware "github.com/clearfolio/fund-catalog-backend/internal/api/middleware"
	"github.com/clearfolio/fund-catalog-backend/internal/config"
	"github.com/clearfolio/fund-catalog-backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	fundService *service.FundService,
	providerService *service.ProviderService,
	syncService *service.SyncService,
	cfg *config.Config,
	logger zerolog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger(logger))
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		fundHandler := handlers.NewFundHandler(fundService)
		r.Get("/funds", fundHandler.Funds)
		r.Get("/top-funds", fundHandler.TopFunds)
		r.Get("/amcs", fundHandler.AMCs)
		r.Get("/advanced-metrics-stats", fundHandler.AdvancedMetricsStats)

		r.Route("/data-providers", func(r chi.Router) {
			providerHandler := handlers.NewProviderHandler(providerService)
			r.Get("/", providerHandler.List)
			r.Post("/", providerHandler.Create)

			r.Route("/{providerId}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateProviderIDMiddleware)
				r.Get("/", providerHandler.Get)
				r.Put("/", providerHandler.Update)
				r.Delete("/", providerHandler.Delete)
			})
		})

		syncHandler := handlers.NewSyncHandler(syncService)
		r.Get("/refresh-data", syncHandler.RefreshData)
	})

	return r
}
