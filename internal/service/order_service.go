package service

import (
	"context"
	"fmt"
	"time"

	"partner-commission-ledger/internal/core/domain"
	"partner-commission-ledger/internal/core/ports"
	"partner-commission-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// OrderServiceImpl implements ports.OrderService.
//
// Acceptance charges the aggregated item commission and cancellation or
// rejection of an accepted order reverses it. The ledger call and the order
// status change share one transaction, so a ledger failure leaves the order
// where it was.
type OrderServiceImpl struct {
	orderRepo  ports.OrderRepository
	commission ports.CommissionService
	ledger     ports.LedgerService
	transactor ports.DBTransactor
	guard      ports.AcceptanceGuard
	guardTTL   time.Duration
	log        zerolog.Logger
	now        func() time.Time
}

// NewOrderService creates a new OrderServiceImpl. guard may be nil, in which
// case only the order row lock serialises acceptance.
func NewOrderService(
	orderRepo ports.OrderRepository,
	commission ports.CommissionService,
	ledger ports.LedgerService,
	transactor ports.DBTransactor,
	guard ports.AcceptanceGuard,
	guardTTL time.Duration,
	log zerolog.Logger,
) *OrderServiceImpl {
	return &OrderServiceImpl{
		orderRepo:  orderRepo,
		commission: commission,
		ledger:     ledger,
		transactor: transactor,
		guard:      guard,
		guardTTL:   guardTTL,
		log:        log,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// AcceptOrder prices the order's items, charges the partner and moves the
// order to accepted.
func (s *OrderServiceImpl) AcceptOrder(ctx context.Context, orderID uuid.UUID) (*domain.Order, *ports.LedgerResult, error) {
	release, err := s.acquireGuard(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}
	defer release()

	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, nil, apperror.InternalError(err)
	}
	if err := checkAcceptable(order); err != nil {
		return nil, nil, err
	}

	// Rule lookups happen before the row lock is taken.
	commission, err := s.commission.CalculateCommissionForItems(ctx, order.Items, order.OrderType, order.PartnerID)
	if err != nil {
		return nil, nil, err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	locked, err := s.orderRepo.GetByIDForUpdate(ctx, dbTx, orderID)
	if err != nil {
		return nil, nil, apperror.InternalError(err)
	}
	if err := checkAcceptable(locked); err != nil {
		return nil, nil, err
	}

	result, err := s.ledger.ApplyCommissionForItems(ctx, ports.ItemsCommissionRequest{
		Tx:         dbTx,
		PartnerID:  locked.PartnerID,
		OrderID:    &locked.ID,
		OrderModel: locked.Model,
		OrderType:  locked.OrderType,
		Commission: commission,
	})
	if err != nil {
		return nil, nil, err
	}

	locked.Items = commission.Items
	locked.Commission.Rate = commission.TotalRate
	locked.Commission.Amount = commission.TotalAmount
	if err := s.orderRepo.SaveCommission(ctx, dbTx, locked); err != nil {
		return nil, nil, apperror.InternalError(err)
	}
	if err := s.orderRepo.UpdateStatus(ctx, dbTx, locked.ID, domain.OrderStatusAccepted); err != nil {
		return nil, nil, apperror.InternalError(err)
	}
	locked.Status = domain.OrderStatusAccepted

	if err := dbTx.Commit(ctx); err != nil {
		return nil, nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("order_id", locked.ID.String()).
		Str("partner_id", locked.PartnerID.String()).
		Str("order_value", locked.TotalValue().String()).
		Str("commission", commission.TotalAmount.String()).
		Msg("order accepted")

	s.MarkCommissionAsApplied(ctx, locked)
	return locked, result, nil
}

// CancelOrder cancels a pending or accepted order, reversing any charged
// commission.
func (s *OrderServiceImpl) CancelOrder(ctx context.Context, orderID uuid.UUID, reason string) (*domain.Order, *ports.LedgerResult, error) {
	return s.closeOrder(ctx, orderID, domain.OrderStatusCancelled, reason)
}

// RejectOrder rejects a pending or accepted order, reversing any charged
// commission.
func (s *OrderServiceImpl) RejectOrder(ctx context.Context, orderID uuid.UUID, reason string) (*domain.Order, *ports.LedgerResult, error) {
	return s.closeOrder(ctx, orderID, domain.OrderStatusRejected, reason)
}

func (s *OrderServiceImpl) closeOrder(ctx context.Context, orderID uuid.UUID, status domain.OrderStatus, reason string) (*domain.Order, *ports.LedgerResult, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	order, err := s.orderRepo.GetByIDForUpdate(ctx, dbTx, orderID)
	if err != nil {
		return nil, nil, apperror.InternalError(err)
	}
	if order == nil {
		return nil, nil, apperror.ErrOrderNotFound()
	}
	if order.Status != domain.OrderStatusPending && order.Status != domain.OrderStatusAccepted {
		return nil, nil, apperror.ErrInvalidOrderState(string(order.Status))
	}

	var result *ports.LedgerResult
	if order.Status == domain.OrderStatusAccepted && order.Commission.Amount.IsPositive() {
		result, err = s.rollback(ctx, dbTx, order, status, reason)
		if err != nil {
			return nil, nil, err
		}
	}

	if err := s.orderRepo.UpdateStatus(ctx, dbTx, order.ID, status); err != nil {
		return nil, nil, apperror.InternalError(err)
	}
	order.Status = status

	if err := dbTx.Commit(ctx); err != nil {
		return nil, nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("order_id", order.ID.String()).
		Str("status", string(status)).
		Str("reason", reason).
		Bool("commission_reversed", result != nil).
		Msg("order closed")

	return order, result, nil
}

func (s *OrderServiceImpl) rollback(ctx context.Context, tx pgx.Tx, order *domain.Order, status domain.OrderStatus, reason string) (*ports.LedgerResult, error) {
	description := fmt.Sprintf("Commission rollback for %s order", status)
	if reason != "" {
		description += ": " + reason
	}
	return s.ledger.RollbackCommissionFromPartner(ctx, ports.RollbackCommissionRequest{
		Tx:          tx,
		PartnerID:   order.PartnerID,
		Amount:      order.Commission.Amount,
		OrderID:     &order.ID,
		OrderModel:  order.Model,
		Description: description,
	})
}

// MarkCommissionAsApplied flags the order's commission as applied. It runs
// after the ledger transaction has committed, so failures are only logged.
func (s *OrderServiceImpl) MarkCommissionAsApplied(ctx context.Context, order *domain.Order) {
	if order == nil {
		return
	}
	appliedAt := s.now()
	if err := s.orderRepo.MarkCommissionApplied(ctx, order.ID, appliedAt); err != nil {
		s.log.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to mark commission as applied")
		return
	}
	order.Commission.IsApplied = true
	order.Commission.AppliedAt = &appliedAt
}

// acquireGuard takes the Redis acceptance guard. When Redis is unavailable
// acceptance continues under the row lock alone.
func (s *OrderServiceImpl) acquireGuard(ctx context.Context, orderID uuid.UUID) (func(), error) {
	noop := func() {}
	if s.guard == nil {
		return noop, nil
	}

	token, ok, err := s.guard.Acquire(ctx, orderID, s.guardTTL)
	if err != nil {
		s.log.Warn().Err(err).Str("order_id", orderID.String()).Msg("acceptance guard unavailable, relying on row lock")
		return noop, nil
	}
	if !ok {
		return nil, apperror.ErrAcceptanceInProgress()
	}

	return func() {
		if err := s.guard.Release(context.WithoutCancel(ctx), orderID, token); err != nil {
			s.log.Warn().Err(err).Str("order_id", orderID.String()).Msg("failed to release acceptance guard")
		}
	}, nil
}

func checkAcceptable(order *domain.Order) error {
	if order == nil {
		return apperror.ErrOrderNotFound()
	}
	if order.Commission.IsApplied {
		return apperror.ErrCommissionAlreadyApplied()
	}
	if !order.IsPending() {
		return apperror.ErrInvalidOrderState(string(order.Status))
	}
	return nil
}
