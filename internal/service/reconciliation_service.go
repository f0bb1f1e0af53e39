package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"partner-commission-ledger/internal/core/domain"
	"partner-commission-ledger/internal/core/ports"
	"partner-commission-ledger/pkg/apperror"
	"partner-commission-ledger/pkg/metrics"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ReconciliationServiceImpl implements ports.ReconciliationService. It never
// corrects a balance; drift is reported and exported as a gauge.
type ReconciliationServiceImpl struct {
	partnerRepo ports.PartnerRepository
	txRepo      ports.TransactionRepository
	metrics     *metrics.ReconcileMetrics
	log         zerolog.Logger
	now         func() time.Time
}

// NewReconciliationService creates a new ReconciliationServiceImpl.
func NewReconciliationService(
	partnerRepo ports.PartnerRepository,
	txRepo ports.TransactionRepository,
	m *metrics.ReconcileMetrics,
	log zerolog.Logger,
) *ReconciliationServiceImpl {
	return &ReconciliationServiceImpl{
		partnerRepo: partnerRepo,
		txRepo:      txRepo,
		metrics:     m,
		log:         log,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// ReconcilePartner compares the stored balance with both histories.
func (s *ReconciliationServiceImpl) ReconcilePartner(ctx context.Context, partnerID uuid.UUID) (*domain.ReconciliationReport, error) {
	partner, err := s.partnerRepo.GetByID(ctx, partnerID)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if partner == nil {
		return nil, apperror.ErrPartnerNotFound()
	}

	walletNet, err := s.partnerRepo.WalletNet(ctx, partnerID)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	ledgerNet, err := s.txRepo.NetByPartner(ctx, partnerID)
	if err != nil {
		return nil, apperror.InternalError(err)
	}

	report := domain.NewReconciliationReport(partnerID, partner.Wallet.CommissionBalance, walletNet, ledgerNet, s.now())
	s.metrics.SetDrift(partnerID.String(), report.WalletDrift.InexactFloat64(), report.LedgerDrift.InexactFloat64())

	if !report.Consistent() {
		s.log.Warn().
			Str("partner_id", partnerID.String()).
			Str("balance", report.Balance.String()).
			Str("wallet_drift", report.WalletDrift.String()).
			Str("ledger_drift", report.LedgerDrift.String()).
			Msg("commission balance drift detected")
	}
	return report, nil
}

// ReconcileAll reconciles every partner. A failure on one partner does not
// stop the run; all failures are returned together with the reports that
// did complete.
func (s *ReconciliationServiceImpl) ReconcileAll(ctx context.Context) ([]*domain.ReconciliationReport, error) {
	start := time.Now()

	ids, err := s.partnerRepo.ListIDs(ctx)
	if err != nil {
		err = apperror.InternalError(fmt.Errorf("list partners: %w", err))
		s.metrics.ObserveRun(time.Since(start), 0, err)
		return nil, err
	}

	var (
		reports      = make([]*domain.ReconciliationReport, 0, len(ids))
		failures     []error
		inconsistent int
	)
	for _, id := range ids {
		if ctx.Err() != nil {
			failures = append(failures, ctx.Err())
			break
		}
		report, err := s.ReconcilePartner(ctx, id)
		if err != nil {
			s.log.Error().Err(err).Str("partner_id", id.String()).Msg("reconcile partner failed")
			failures = append(failures, fmt.Errorf("partner %s: %w", id, err))
			continue
		}
		if !report.Consistent() {
			inconsistent++
		}
		reports = append(reports, report)
	}

	runErr := errors.Join(failures...)
	s.metrics.ObserveRun(time.Since(start), inconsistent, runErr)

	s.log.Info().
		Int("partners", len(ids)).
		Int("inconsistent", inconsistent).
		Int("failed", len(failures)).
		Dur("took", time.Since(start)).
		Msg("reconciliation run finished")

	if runErr != nil {
		return reports, runErr
	}
	return reports, nil
}
