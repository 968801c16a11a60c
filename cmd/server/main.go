package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/iho/gojournal/internal/adapter/http"
	"github.com/iho/gojournal/internal/adapter/http/handler"
	"github.com/iho/gojournal/internal/adapter/http/middleware"
	"github.com/iho/gojournal/internal/adapter/repository/memory"
	postgresRepo "github.com/iho/gojournal/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/gojournal/internal/adapter/repository/redis"
	"github.com/iho/gojournal/internal/directory"
	"github.com/iho/gojournal/internal/infrastructure/config"
	"github.com/iho/gojournal/internal/infrastructure/logger"
	"github.com/iho/gojournal/internal/infrastructure/metrics"
	"github.com/iho/gojournal/internal/infrastructure/postgres"
	"github.com/iho/gojournal/internal/infrastructure/redis"
	"github.com/iho/gojournal/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	appLogger := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	log.Logger = appLogger

	m := metrics.New()
	ctx := context.Background()

	var (
		snapshots usecase.SnapshotRepository
		events    usecase.EventLog
		products  usecase.ProductRepository

		pool        *pgxpool.Pool
		redisClient *goredis.Client
	)

	idGen := postgresRepo.NewULIDGenerator()

	switch cfg.StoreBackend {
	case config.BackendPostgres:
		pool, err = postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
		if err != nil {
			appLogger.Fatal().Err(err).Msg("failed to connect to postgres")
		}
		defer pool.Close()
		appLogger.Info().Msg("connected to postgres")

		if err := postgres.RunMigrations(appLogger, cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			appLogger.Fatal().Err(err).Msg("failed to run migrations")
		}

		retrier := postgresRepo.NewRetrier(appLogger)
		snapshots = postgresRepo.NewSnapshotRepository(pool, retrier, m)
		events = postgresRepo.NewEventLog(pool, idGen)
		products = postgresRepo.NewProductRepository(pool)

	case config.BackendMemory:
		snapshots = memory.NewSnapshotRepository()
		events = memory.NewEventLog(idGen)
		products = memory.NewProductRepository()
		appLogger.Info().Msg("using in-memory store")

	default:
		appLogger.Fatal().Str("backend", cfg.StoreBackend).Msg("unknown store backend")
	}

	// Optional Redis snapshot cache
	if cfg.CacheEnabled() {
		redisClient, err = redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			appLogger.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisClient.Close()
		appLogger.Info().Msg("connected to redis")

		snapshots = redisRepo.NewSnapshotCache(snapshots, redisClient, cfg.CacheTTL, m)
	}

	// Initialize use cases
	accounts := directory.New()
	journalUC := usecase.NewJournalUseCase(snapshots, events, accounts, m)
	reportUC := usecase.NewReportUseCase(snapshots)
	productUC := usecase.NewProductUseCase(products, m)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		JournalHandler: handler.NewJournalHandler(journalUC),
		AccountHandler: handler.NewAccountHandler(accounts),
		ReportHandler:  handler.NewReportHandler(reportUC),
		ProductHandler: handler.NewProductHandler(productUC),
		HealthHandler:  handler.NewHealthHandler(pool, redisClient),
		Logging:        middleware.NewLoggingMiddleware(appLogger),
		Recovery:       middleware.NewRecoveryMiddleware(appLogger),
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		appLogger.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	appLogger.Info().Msg("server stopped")
}
