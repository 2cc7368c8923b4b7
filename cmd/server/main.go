package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/clearfolio/fund-catalog-backend/internal/api"
	"github.com/clearfolio/fund-catalog-backend/internal/config"
	"github.com/clearfolio/fund-catalog-backend/internal/database"
	"github.com/clearfolio/fund-catalog-backend/internal/logging"
	"github.com/clearfolio/fund-catalog-backend/internal/provider"
	"github.com/clearfolio/fund-catalog-backend/internal/repository"
	"github.com/clearfolio/fund-catalog-backend/internal/secret"
	"github.com/clearfolio/fund-catalog-backend/internal/service"
)

func main() {
	// Load configuration
	// The configured logger does not exist yet; fall back to the package
	// default, which writes to stderr.
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger := logging.New(cfg.Log)

	// Open database connection and apply migrations
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		logger.Fatal().Err(err).Msg("failed to migrate database")
	}

	logger.Info().Str("path", cfg.Database.Path).Msg("connected to database")

	// Credential encryption. Without a configured key, provider API keys
	// written during this run cannot be decrypted after a restart.
	fernetKey := cfg.Secrets.FernetKey
	if fernetKey == "" {
		fernetKey, err = secret.GenerateKey()
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to generate fernet key")
		}
		logger.Warn().Msg("FERNET_KEY not set, using an ephemeral key")
	}
	codec, err := secret.NewCodec(fernetKey)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid FERNET_KEY")
	}

	// Create repositories
	fundRepo := repository.NewFundRepository(db)
	returnRepo := repository.NewReturnRepository(db)
	providerRepo := repository.NewProviderRepository(db)

	// Create services
	systemService := service.NewSystemService(db)
	fundService := service.NewFundService(fundRepo, returnRepo)
	providerService := service.NewProviderService(providerRepo, codec)
	syncService := service.NewSyncService(
		db,
		fundRepo,
		returnRepo,
		providerService,
		provider.NewClient(),
		logger,
	)

	// Scheduled refresh, same code path as GET /api/refresh-data
	if cfg.Refresh.Schedule != "" {
		scheduler := cron.New()
		_, err := scheduler.AddFunc(cfg.Refresh.Schedule, func() {
			if _, err := syncService.RefreshFromProvider(context.Background()); err != nil {
				logger.Error().Err(err).Msg("scheduled refresh failed")
			}
		})
		if err != nil {
			logger.Fatal().Err(err).Str("schedule", cfg.Refresh.Schedule).Msg("invalid REFRESH_SCHEDULE")
		}
		scheduler.Start()
		defer scheduler.Stop()
		logger.Info().Str("schedule", cfg.Refresh.Schedule).Msg("scheduled refresh enabled")
	}

	// Create router
	router := api.NewRouter(systemService, fundService, providerService, syncService, cfg, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info().Str("addr", cfg.Server.Addr).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	logger.Info().Msg("server exited")
}
