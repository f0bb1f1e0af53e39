package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"partner-commission-ledger/internal/core/domain"
	"partner-commission-ledger/internal/core/ports"
	"partner-commission-ledger/pkg/apperror"
	"partner-commission-ledger/pkg/metrics"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const defaultRollbackDescription = "Commission rollback"

// LedgerServiceImpl implements ports.LedgerService.
//
// Every operation writes three things inside one database transaction: a
// wallet history entry, the new partner balance and a standalone ledger row.
// Any failure rolls all three back.
type LedgerServiceImpl struct {
	partnerRepo    ports.PartnerRepository
	txRepo         ports.TransactionRepository
	calculator     ports.CommissionCalculator
	transactor     ports.DBTransactor
	metrics        *metrics.LedgerMetrics
	strictRollback bool
	log            zerolog.Logger
	now            func() time.Time
}

// NewLedgerService creates a new LedgerServiceImpl. With strictRollback set,
// a rollback larger than the balance fails with LEDGER_002 instead of
// flooring the balance at zero.
func NewLedgerService(
	partnerRepo ports.PartnerRepository,
	txRepo ports.TransactionRepository,
	calculator ports.CommissionCalculator,
	transactor ports.DBTransactor,
	m *metrics.LedgerMetrics,
	strictRollback bool,
	log zerolog.Logger,
) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		partnerRepo:    partnerRepo,
		txRepo:         txRepo,
		calculator:     calculator,
		transactor:     transactor,
		metrics:        m,
		strictRollback: strictRollback,
		log:            log,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// posting is one balance movement ready to be written.
type posting struct {
	partnerID   uuid.UUID
	kind        domain.TransactionType
	amount      decimal.Decimal // magnitude, never negative
	orderID     *uuid.UUID
	orderModel  domain.OrderModel
	description string
	metadata    domain.TransactionMetadata
}

// ApplyCommissionToPartner charges the commission for one order value.
func (s *LedgerServiceImpl) ApplyCommissionToPartner(ctx context.Context, req ports.ApplyCommissionRequest) (*ports.LedgerResult, error) {
	model, err := resolveOrderModel(req.OrderModel)
	if err != nil {
		return nil, err
	}

	var result *ports.LedgerResult
	err = s.inTx(ctx, req.Tx, func(tx pgx.Tx) error {
		quote, err := s.calculator.CalculateCommissionForOrder(ctx, req.OrderValue, req.Category, req.OrderType, req.PartnerID)
		if err != nil {
			return err
		}

		result, err = s.post(ctx, tx, posting{
			partnerID:   req.PartnerID,
			kind:        domain.TransactionTypeCommissionCharge,
			amount:      quote.Amount,
			orderID:     req.OrderID,
			orderModel:  model,
			description: fmt.Sprintf("Commission for %s %s order", quote.Category, req.OrderType),
			metadata: domain.TransactionMetadata{
				OrderType: req.OrderType,
				Category:  string(quote.Category),
				Rate:      quote.Rate,
			},
		})
		if err != nil {
			return err
		}
		result.Commission = *quote
		return nil
	})
	s.observe(metrics.OpApply, result, err)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// RollbackCommissionFromPartner reverses a previously charged amount.
func (s *LedgerServiceImpl) RollbackCommissionFromPartner(ctx context.Context, req ports.RollbackCommissionRequest) (*ports.LedgerResult, error) {
	if req.Amount.IsNegative() {
		return nil, apperror.ErrInvalidAmount()
	}
	model, err := resolveOrderModel(req.OrderModel)
	if err != nil {
		return nil, err
	}
	description := req.Description
	if description == "" {
		description = defaultRollbackDescription
	}

	var result *ports.LedgerResult
	err = s.inTx(ctx, req.Tx, func(tx pgx.Tx) error {
		var err error
		result, err = s.post(ctx, tx, posting{
			partnerID:   req.PartnerID,
			kind:        domain.TransactionTypeCommissionRollback,
			amount:      req.Amount,
			orderID:     req.OrderID,
			orderModel:  model,
			description: description,
		})
		if err != nil {
			return err
		}
		result.Commission = domain.CommissionQuote{Amount: req.Amount}
		return nil
	})
	s.observe(metrics.OpRollback, result, err)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ApplyCommissionForItems charges a precomputed multi-category commission.
func (s *LedgerServiceImpl) ApplyCommissionForItems(ctx context.Context, req ports.ItemsCommissionRequest) (*ports.LedgerResult, error) {
	return s.postItems(ctx, req, domain.TransactionTypeCommissionCharge, metrics.OpApply)
}

// RollbackCommissionForItems reverses a precomputed multi-category commission.
func (s *LedgerServiceImpl) RollbackCommissionForItems(ctx context.Context, req ports.ItemsCommissionRequest) (*ports.LedgerResult, error) {
	return s.postItems(ctx, req, domain.TransactionTypeCommissionRollback, metrics.OpRollback)
}

func (s *LedgerServiceImpl) postItems(ctx context.Context, req ports.ItemsCommissionRequest, kind domain.TransactionType, op string) (*ports.LedgerResult, error) {
	if req.Commission == nil {
		return nil, apperror.Validation("commission data is required")
	}
	if req.Commission.TotalAmount.IsNegative() {
		return nil, apperror.ErrInvalidAmount()
	}
	model, err := resolveOrderModel(req.OrderModel)
	if err != nil {
		return nil, err
	}

	prefix := "Commission for multi-category order: "
	if kind == domain.TransactionTypeCommissionRollback {
		prefix = "Commission rollback for multi-category order: "
	}

	var result *ports.LedgerResult
	err = s.inTx(ctx, req.Tx, func(tx pgx.Tx) error {
		var err error
		result, err = s.post(ctx, tx, posting{
			partnerID:   req.PartnerID,
			kind:        kind,
			amount:      req.Commission.TotalAmount,
			orderID:     req.OrderID,
			orderModel:  model,
			description: prefix + BreakdownDescription(req.Commission.Breakdown),
			metadata: domain.TransactionMetadata{
				OrderType: req.OrderType,
				Category:  "multiple",
				Rate:      req.Commission.TotalRate,
				Breakdown: req.Commission.Breakdown,
			},
		})
		if err != nil {
			return err
		}
		result.Commission = domain.CommissionQuote{Rate: req.Commission.TotalRate, Amount: req.Commission.TotalAmount}
		result.Breakdown = req.Commission.Breakdown
		return nil
	})
	s.observe(op, result, err)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// BreakdownDescription renders `category: ₹amount (rate%)` entries joined by ", ".
func BreakdownDescription(breakdown []domain.CategoryBreakdown) string {
	parts := make([]string, 0, len(breakdown))
	for _, b := range breakdown {
		parts = append(parts, fmt.Sprintf("%s: ₹%s (%s%%)", b.Category, b.Amount.String(), b.Rate.String()))
	}
	return strings.Join(parts, ", ")
}

// inTx runs fn inside the caller's transaction when one is supplied, or in a
// fresh transaction that is committed on success and rolled back otherwise.
func (s *LedgerServiceImpl) inTx(ctx context.Context, outer pgx.Tx, fn func(tx pgx.Tx) error) error {
	if outer != nil {
		return fn(outer)
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := fn(dbTx); err != nil {
		return err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	return nil
}

// post locks the partner row, moves the balance and writes both histories.
func (s *LedgerServiceImpl) post(ctx context.Context, tx pgx.Tx, p posting) (*ports.LedgerResult, error) {
	partner, err := s.partnerRepo.GetByIDForUpdate(ctx, tx, p.partnerID)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, apperror.ErrLockTimeout(err)
		}
		return nil, apperror.InternalError(fmt.Errorf("lock partner: %w", err))
	}
	if partner == nil {
		return nil, apperror.ErrPartnerNotFound()
	}

	previous := partner.Wallet.CommissionBalance
	var (
		next         decimal.Decimal
		entryType    domain.WalletEntryType
		ledgerAmount decimal.Decimal
		floored      bool
	)

	switch p.kind {
	case domain.TransactionTypeCommissionCharge:
		next = previous.Add(p.amount)
		entryType = domain.WalletEntryDebit
		ledgerAmount = p.amount
	case domain.TransactionTypeCommissionRollback:
		if previous.LessThan(p.amount) {
			if s.strictRollback {
				return nil, apperror.ErrInsufficientCommissionBalance()
			}
			floored = true
			next = decimal.Zero
			s.log.Warn().
				Str("partner_id", p.partnerID.String()).
				Str("balance", previous.String()).
				Str("rollback_amount", p.amount.String()).
				Msg("rollback exceeds commission balance, flooring at zero")
		} else {
			next = previous.Sub(p.amount)
		}
		entryType = domain.WalletEntryCredit
		ledgerAmount = p.amount.Neg()
	default:
		return nil, apperror.InternalError(fmt.Errorf("unknown ledger posting %q", p.kind))
	}

	now := s.now()

	entry := &domain.WalletTransaction{
		ID:                  uuid.New(),
		PartnerID:           p.partnerID,
		Type:                entryType,
		Amount:              p.amount,
		Description:         p.description,
		Timestamp:           now,
		Reference:           p.orderID,
		ReferenceModel:      p.orderModel,
		TransactionCategory: domain.WalletCategoryCommission,
	}
	if err := s.partnerRepo.AppendWalletTransaction(ctx, tx, entry); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("append wallet entry: %w", err))
	}

	if err := s.partnerRepo.UpdateCommissionBalance(ctx, tx, p.partnerID, next); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update commission balance: %w", err))
	}

	metadata := p.metadata
	metadata.PreviousBalance = previous
	metadata.NewBalance = next
	metadata.OrderModel = p.orderModel
	metadata.RequestedAmount = p.amount

	txn := &domain.Transaction{
		ID:              uuid.New(),
		TransactionType: p.kind,
		Amount:          ledgerAmount,
		PartnerID:       p.partnerID,
		OrderID:         p.orderID,
		PaymentMethod:   domain.PaymentMethodSystem,
		Status:          domain.TransactionStatusCompleted,
		Description:     p.description,
		Metadata:        metadata,
		CreatedAt:       now,
	}
	if err := s.txRepo.Create(ctx, tx, txn); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create transaction: %w", err))
	}

	s.log.Info().
		Str("tx_id", txn.ID.String()).
		Str("partner_id", p.partnerID.String()).
		Str("type", string(p.kind)).
		Str("amount", ledgerAmount.String()).
		Str("previous_balance", previous.String()).
		Str("new_balance", next.String()).
		Msg("commission ledger updated")

	return &ports.LedgerResult{
		Success:         true,
		TransactionID:   txn.ID,
		PreviousBalance: previous,
		NewBalance:      next,
		Floored:         floored,
	}, nil
}

func (s *LedgerServiceImpl) observe(op string, result *ports.LedgerResult, err error) {
	if err != nil || result == nil {
		s.metrics.ObserveOperation(op, false, 0)
		return
	}
	s.metrics.ObserveOperation(op, true, result.Commission.Amount.InexactFloat64())
	if result.Floored {
		s.metrics.IncFloored()
	}
}

func resolveOrderModel(model domain.OrderModel) (domain.OrderModel, error) {
	if model == "" {
		return domain.OrderModelOrder, nil
	}
	if !model.IsValid() {
		return "", apperror.Validation(fmt.Sprintf("invalid order model %q", model))
	}
	return model, nil
}
