package service

import (
	"context"

	"partner-commission-ledger/internal/core/domain"
	"partner-commission-ledger/internal/core/ports"
	"partner-commission-ledger/pkg/apperror"

	"github.com/google/uuid"
)

const (
	defaultWalletHistoryLimit = 20
	maxWalletHistoryLimit     = 100
)

// walletService implements ports.WalletService.
type walletService struct {
	partnerRepo ports.PartnerRepository
	txRepo      ports.TransactionRepository
}

// NewWalletService creates a new wallet read service.
func NewWalletService(partnerRepo ports.PartnerRepository, txRepo ports.TransactionRepository) ports.WalletService {
	return &walletService{
		partnerRepo: partnerRepo,
		txRepo:      txRepo,
	}
}

// GetWallet returns the partner with its balance and the most recent wallet
// entries, newest first.
func (s *walletService) GetWallet(ctx context.Context, partnerID uuid.UUID, limit int) (*domain.Partner, error) {
	if limit <= 0 {
		limit = defaultWalletHistoryLimit
	}
	if limit > maxWalletHistoryLimit {
		limit = maxWalletHistoryLimit
	}

	partner, err := s.partnerRepo.GetByID(ctx, partnerID)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if partner == nil {
		return nil, apperror.ErrPartnerNotFound()
	}

	entries, err := s.partnerRepo.ListWalletTransactions(ctx, partnerID, limit)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	partner.Wallet.Transactions = entries
	return partner, nil
}

// ListTransactions returns a page of ledger rows for the partner.
func (s *walletService) ListTransactions(ctx context.Context, params ports.TransactionListParams) ([]domain.Transaction, int64, error) {
	params.Normalize()
	if params.Type != nil && *params.Type != domain.TransactionTypeCommissionCharge && *params.Type != domain.TransactionTypeCommissionRollback {
		return nil, 0, apperror.Validation("type must be commission_charge or commission_rollback")
	}

	partner, err := s.partnerRepo.GetByID(ctx, params.PartnerID)
	if err != nil {
		return nil, 0, apperror.InternalError(err)
	}
	if partner == nil {
		return nil, 0, apperror.ErrPartnerNotFound()
	}

	txns, total, err := s.txRepo.ListByPartner(ctx, params)
	if err != nil {
		return nil, 0, apperror.InternalError(err)
	}
	return txns, total, nil
}
