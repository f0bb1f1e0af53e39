package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"partner-commission-ledger/config"
	pgStorage "partner-commission-ledger/internal/adapter/storage/postgres"
	redisStorage "partner-commission-ledger/internal/adapter/storage/redis"
	"partner-commission-ledger/internal/service"
	"partner-commission-ledger/internal/worker"
	"partner-commission-ledger/pkg/logger"
	"partner-commission-ledger/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const lockKey = "pcl:reconcile-worker:lock"

func main() {
	once := flag.Bool("once", false, "run a single reconciliation pass and exit")
	metricsAddr := flag.String("metrics-addr", ":9102", "listen address for /metrics (empty disables)")
	flag.Parse()

	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log, "reconcile-worker")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	registry := prometheus.NewRegistry()
	reconcileSvc := service.NewReconciliationService(
		pgStorage.NewPartnerRepo(pool),
		pgStorage.NewTransactionRepo(pool),
		metrics.NewReconcileMetrics(registry),
		log,
	)

	lock, err := redisStorage.NewJobLock(rdb, lockKey, cfg.Reconcile.LockTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create reconcile lock")
	}

	w, err := worker.NewReconcileWorker(reconcileSvc, lock, cfg.Reconcile.Interval, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create reconcile worker")
	}

	if *once {
		if err := w.RunOnce(ctx); err != nil {
			log.Fatal().Err(err).Msg("Reconciliation failed")
		}
		return
	}

	if cfg.Metrics.Enabled && *metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		srv := &http.Server{Addr: *metricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Error().Err(err).Msg("metrics server failed")
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	log.Info().Dur("interval", cfg.Reconcile.Interval).Msg("Starting reconcile worker")
	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("Reconcile worker stopped unexpectedly")
		return
	}
	log.Info().Msg("Reconcile worker exited")
}
