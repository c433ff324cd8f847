package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"token-mint-engine/config"
	"token-mint-engine/internal/adapter/events"
	"token-mint-engine/internal/adapter/ledger"
	"token-mint-engine/internal/adapter/notify"
	pgStorage "token-mint-engine/internal/adapter/storage/postgres"
	redisStorage "token-mint-engine/internal/adapter/storage/redis"
	"token-mint-engine/internal/core/ports"
	"token-mint-engine/internal/service"
	"token-mint-engine/pkg/logger"

	"github.com/prometheus/client_golang/prometheus/promhttp"
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
		Bool("dry_run", cfg.Engine.DryRun).
		Int64("batch_size", cfg.Engine.BatchSize).
		Msg("Starting Token Mint Engine")

	ctx := context.Background()

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
	reqRepo := pgStorage.NewMintRequestRepo(pool)
	txRepo := pgStorage.NewMintTransactionRepo(pool)
	tokenRepo := pgStorage.NewTokenRepo(pool)
	transactor := pgStorage.NewTransactor(pool)
	resultCache := redisStorage.NewResultCache(rdb)

	// The real ledger SDK adapter is linked per deployment; this build ships
	// the simulated gateway only.
	var gateway ports.LedgerGateway
	var custody ports.KeyCustody
	if cfg.Engine.DryRun {
		gateway = ledger.NewDryRunGateway(logger.Component(log, "ledger"))
		custody = ledger.DryRunCustody{}
	} else {
		log.Fatal().Msg("No live ledger gateway is linked into this build; set TME_ENGINE_DRY_RUN=true")
	}

	// Event publication
	healthCheckers := []ports.HealthChecker{
		pgStorage.NewHealthCheck(pool),
		redisStorage.NewHealthCheck(rdb),
	}
	var publisher ports.EventPublisher = events.NopPublisher{}
	var natsPub *events.NATSPublisher
	if cfg.NATS.URL != "" {
		natsPub, err = events.NewNATSPublisher(cfg.NATS, logger.Component(log, "nats"))
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to NATS")
		}
		defer natsPub.Close()
		publisher = natsPub
		healthCheckers = append(healthCheckers, natsPub)
	}

	// Assemble the engine
	notifier := notify.NewLogSink(logger.Component(log, "notify"))
	resolver := service.NewTokenConfigResolver(custody, logger.Component(log, "resolver"))
	planner := service.NewBatchPlanner(reqRepo, txRepo, transactor, cfg.Engine.BatchSize, logger.Component(log, "planner"))
	reconciler := service.NewReconciler(gateway, reqRepo, txRepo, transactor, notifier, logger.Component(log, "reconciler"))
	ftExec := service.NewFungibleExecutor(gateway, reqRepo, txRepo, notifier, publisher, cfg.Engine.DryRun, cfg.Engine.PageSize, logger.Component(log, "executor"))
	nftExec := service.NewNonFungibleExecutor(gateway, reqRepo, txRepo, notifier, publisher, cfg.Engine.DryRun, cfg.Engine.PageSize, logger.Component(log, "executor"))
	coordinator := service.NewCoordinator(
		resultCache, reqRepo, txRepo, tokenRepo, resolver,
		planner, reconciler, ftExec, nftExec, notifier,
		cfg.Engine.DryRun, cfg.Engine.ResultTTL,
		logger.Component(log, "coordinator"),
	)

	// Inbound orders arrive over NATS
	if natsPub != nil {
		consumer := events.NewOrderConsumer(natsPub.Conn(), coordinator, logger.Component(log, "consumer"))
		if err := consumer.Start(ctx); err != nil {
			log.Fatal().Err(err).Msg("Failed to start order consumer")
		}
		defer consumer.Stop()
	} else {
		log.Warn().Msg("NATS not configured; no inbound order channel")
	}

	// Metrics and health listener
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", healthHandler(healthCheckers))

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("Metrics server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Metrics server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Metrics server forced to shutdown")
	}

	log.Info().Msg("Engine exited")
}

func healthHandler(checkers []ports.HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		status := http.StatusOK
		deps := make(map[string]string, len(checkers))
		for _, c := range checkers {
			if err := c.Ping(ctx); err != nil {
				deps[c.Name()] = err.Error()
				status = http.StatusServiceUnavailable
			} else {
				deps[c.Name()] = "ok"
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(deps)
	}
}
