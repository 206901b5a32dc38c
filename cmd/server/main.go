package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	httpAdapter "github.com/splitpot/splitpot/internal/adapter/http"
	"github.com/splitpot/splitpot/internal/adapter/http/handler"
	postgresRepo "github.com/splitpot/splitpot/internal/adapter/repository/postgres"
	redisRepo "github.com/splitpot/splitpot/internal/adapter/repository/redis"
	"github.com/splitpot/splitpot/internal/infrastructure/config"
	"github.com/splitpot/splitpot/internal/infrastructure/logger"
	"github.com/splitpot/splitpot/internal/infrastructure/metrics"
	"github.com/splitpot/splitpot/internal/infrastructure/postgres"
	"github.com/splitpot/splitpot/internal/infrastructure/redis"
	"github.com/splitpot/splitpot/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	appLogger := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	log.Logger = appLogger

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Run migrations
	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to Redis. The snapshot cache is warm-path only; balance reads
	// fall back to postgres when it is unavailable.
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Initialize metrics
	m := metrics.New()

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	participantRepo := postgresRepo.NewParticipantRepository(pool)
	expenseRepo := postgresRepo.NewExpenseRepository(pool)
	metaRepo := postgresRepo.NewMetaRepository(pool)
	idGen := postgresRepo.NewULIDGenerator()
	retrier := postgresRepo.NewRetrier(appLogger)
	cache := redisRepo.NewCache(redisClient, m)

	// Initialize use cases
	participantUC := usecase.NewParticipantUseCase(participantRepo, idGen, cache)
	expenseUC := usecase.NewExpenseUseCase(expenseRepo, participantRepo, idGen, cache)
	balanceUC := usecase.NewBalanceUseCase(participantRepo, expenseRepo, cache)
	datasetUC := usecase.NewDatasetUseCase(txManager, participantRepo, expenseRepo, metaRepo, retrier, cache)

	// Initialize handlers
	participantHandler := handler.NewParticipantHandler(participantUC)
	expenseHandler := handler.NewExpenseHandler(expenseUC)
	balanceHandler := handler.NewBalanceHandler(balanceUC)
	datasetHandler := handler.NewDatasetHandler(datasetUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		ParticipantHandler: participantHandler,
		ExpenseHandler:     expenseHandler,
		BalanceHandler:     balanceHandler,
		DatasetHandler:     datasetHandler,
		HealthHandler:      healthHandler,
		Logger:             appLogger,
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
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
