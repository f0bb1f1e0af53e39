package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"partner-commission-ledger/config"
	httpHandler "partner-commission-ledger/internal/adapter/http/handler"
	"partner-commission-ledger/internal/adapter/http/middleware"
	pgStorage "partner-commission-ledger/internal/adapter/storage/postgres"
	redisStorage "partner-commission-ledger/internal/adapter/storage/redis"
	"partner-commission-ledger/internal/core/ports"
	"partner-commission-ledger/internal/service"
	"partner-commission-ledger/pkg/logger"
	"partner-commission-ledger/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log, "api")

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Bool("strict_rollback", cfg.Commission.StrictRollback).
		Msg("Starting Partner Commission Ledger")

	defaultRates, err := service.NewRateTable(cfg.Commission.DefaultRates)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid commission.default_rates")
	}

	ctx := context.Background()

	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	ledgerMetrics := metrics.NewLedgerMetrics(registry)
	reconcileMetrics := metrics.NewReconcileMetrics(registry)

	// Repositories
	partnerRepo := pgStorage.NewPartnerRepo(pool)
	txRepo := pgStorage.NewTransactionRepo(pool)
	orderRepo := pgStorage.NewOrderRepo(pool)
	ruleRepo := pgStorage.NewCommissionRuleRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Redis stores
	ruleCache := redisStorage.NewRuleCache(rdb)
	acceptanceGuard := redisStorage.NewAcceptanceGuard(rdb)

	// Services
	calculator := service.NewRuleCommissionCalculator(ruleRepo, ruleCache, defaultRates, cfg.Commission.RuleCacheTTL, log)
	commissionSvc := service.NewItemsCommissionService(calculator)
	ledgerSvc := service.NewLedgerService(partnerRepo, txRepo, calculator, transactor, ledgerMetrics, cfg.Commission.StrictRollback, log)
	walletSvc := service.NewWalletService(partnerRepo, txRepo)
	reconcileSvc := service.NewReconciliationService(partnerRepo, txRepo, reconcileMetrics, log)
	orderSvc := service.NewOrderService(orderRepo, commissionSvc, ledgerSvc, transactor, acceptanceGuard, cfg.Commission.AcceptanceLockTTL, log)

	var rateLimitStore middleware.Limiter
	if cfg.Server.RateLimit {
		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
	}

	var metricsHandler http.Handler
	if cfg.Metrics.Enabled {
		metricsHandler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
	}

	// Load OpenAPI spec for Swagger UI
	if specBytes, err := os.ReadFile("docs/api/openapi.yaml"); err == nil {
		httpHandler.SetSwaggerSpec(specBytes)
		log.Info().Msg("OpenAPI spec loaded for Swagger UI at /swagger")
	} else {
		log.Warn().Err(err).Msg("OpenAPI spec not found, Swagger UI will be unavailable")
	}

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		CommissionSvc:  commissionSvc,
		WalletSvc:      walletSvc,
		ReconcileSvc:   reconcileSvc,
		OrderSvc:       orderSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgStorage.NewHealthCheck(pool), redisStorage.NewHealthCheck(rdb)},
		MetricsHandler: metricsHandler,
		Logger:         log,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
