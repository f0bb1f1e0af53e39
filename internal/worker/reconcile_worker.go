package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"partner-commission-ledger/internal/core/ports"

	"github.com/rs/zerolog"
)

const defaultReconcileInterval = 15 * time.Minute

// Lock is a cluster-wide mutex for one job. redis.JobLock implements it.
type Lock interface {
	Acquire(ctx context.Context) (bool, error)
	Release(ctx context.Context) error
}

// ReconcileWorker runs ReconcileAll on a fixed cadence. Only the instance
// holding the lock runs a cycle; the others skip it.
type ReconcileWorker struct {
	svc      ports.ReconciliationService
	lock     Lock
	interval time.Duration
	log      zerolog.Logger
}

// NewReconcileWorker builds a reconcile worker.
func NewReconcileWorker(svc ports.ReconciliationService, lock Lock, interval time.Duration, log zerolog.Logger) (*ReconcileWorker, error) {
	if svc == nil {
		return nil, errors.New("reconciliation service required")
	}
	if lock == nil {
		return nil, errors.New("lock required")
	}
	if interval <= 0 {
		interval = defaultReconcileInterval
	}
	return &ReconcileWorker{svc: svc, lock: lock, interval: interval, log: log}, nil
}

// Run reconciles immediately and then on every tick until ctx is cancelled.
func (w *ReconcileWorker) Run(ctx context.Context) error {
	if err := w.RunOnce(ctx); err != nil {
		w.log.Error().Err(err).Msg("reconcile cycle failed")
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := w.RunOnce(ctx); err != nil {
				w.log.Error().Err(err).Msg("reconcile cycle failed")
			}
		}
	}
}

// RunOnce performs one locked reconciliation pass over every partner.
// Per-partner failures are logged and do not fail the cycle.
func (w *ReconcileWorker) RunOnce(ctx context.Context) error {
	locked, err := w.lock.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("lock acquire: %w", err)
	}
	if !locked {
		w.log.Info().Msg("another reconcile worker holds the lock; skipping cycle")
		return nil
	}
	defer func() {
		if err := w.lock.Release(context.WithoutCancel(ctx)); err != nil {
			w.log.Error().Err(err).Msg("failed to release reconcile lock")
		}
	}()

	start := time.Now()
	reports, err := w.svc.ReconcileAll(ctx)

	inconsistent := 0
	for _, r := range reports {
		if !r.Consistent() {
			inconsistent++
		}
	}

	if err != nil && reports == nil {
		return err
	}
	if err != nil {
		w.log.Warn().Err(err).Msg("some partners could not be reconciled")
	}

	w.log.Info().
		Int("partners", len(reports)).
		Int("inconsistent", inconsistent).
		Dur("duration", time.Since(start)).
		Msg("reconcile cycle complete")
	return nil
}
