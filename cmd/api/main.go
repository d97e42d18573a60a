package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JingsthonC/xertiq/config"
	"github.com/JingsthonC/xertiq/internal/adapter/credits"
	"github.com/JingsthonC/xertiq/internal/adapter/docstore"
	httpHandler "github.com/JingsthonC/xertiq/internal/adapter/http/handler"
	"github.com/JingsthonC/xertiq/internal/adapter/ledger"
	pgStorage "github.com/JingsthonC/xertiq/internal/adapter/storage/postgres"
	redisStorage "github.com/JingsthonC/xertiq/internal/adapter/storage/redis"
	"github.com/JingsthonC/xertiq/internal/core/ports"
	"github.com/JingsthonC/xertiq/internal/service"
	"github.com/JingsthonC/xertiq/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting XertiQ Anchor Engine")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	batchRepo := pgStorage.NewBatchRepo(pool)
	docRepo := pgStorage.NewDocumentRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	anchorLock := redisStorage.NewAnchorLock(rdb)
	rootCache := redisStorage.NewRootCache(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize collaborator clients
	ledgerClient := ledger.NewClient(cfg.Ledger, nil, log)
	docStoreClient := docstore.NewClient(cfg.DocStore, nil, log)
	creditsClient := credits.NewClient(cfg.Credits, nil, log)

	// Initialize core services
	hasher := service.NewSHA256IdentityHasher()
	leafBuilder := service.NewSHA256LeafBuilder()
	broker := service.NewInMemoryProgressBroker(log)

	anchorSvc := service.NewAnchorService(
		batchRepo,
		ledgerClient,
		anchorLock,
		rootCache,
		creditsClient,
		broker,
		cfg.Anchor,
		cfg.Ledger,
		log,
	)
	anchorSvc.Start(ctx)

	batchSvc := service.NewBatchService(
		batchRepo,
		docRepo,
		transactor,
		hasher,
		leafBuilder,
		docStoreClient,
		creditsClient,
		anchorSvc,
		broker,
		cfg.Pipeline,
		log,
	)

	verifySvc := service.NewVerificationService(
		docRepo,
		batchRepo,
		ledgerClient,
		rootCache,
		hasher,
		leafBuilder,
		cfg.Anchor,
		log,
	)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Pipeline:       batchSvc,
		Anchorer:       anchorSvc,
		Verifier:       verifySvc,
		Broker:         broker,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
