package ports

import (
	"context"
	"time"

	"partner-commission-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// RuleCache is the Redis layer in front of commission rule lookups.
type RuleCache interface {
	// Get returns the cached rate, or found=false on a miss.
	Get(ctx context.Context, partnerID uuid.UUID, category domain.Category, orderType domain.OrderType) (rate decimal.Decimal, found bool, err error)
	Set(ctx context.Context, partnerID uuid.UUID, category domain.Category, orderType domain.OrderType, rate decimal.Decimal, ttl time.Duration) error
}

// AcceptanceGuard prevents two workers from accepting the same order at once.
type AcceptanceGuard interface {
	// Acquire returns ok=true and an owner token if the caller now holds
	// the order's guard.
	Acquire(ctx context.Context, orderID uuid.UUID, ttl time.Duration) (token string, ok bool, err error)
	// Release frees the guard only if it still carries token.
	Release(ctx context.Context, orderID uuid.UUID, token string) error
}

// --- Service Ports (Business Logic) ---

// CommissionCalculator resolves the rate for a single order value.
type CommissionCalculator interface {
	CalculateCommissionForOrder(ctx context.Context, orderValue decimal.Decimal, category domain.Category, orderType domain.OrderType, partnerID uuid.UUID) (*domain.CommissionQuote, error)
}

// CommissionService aggregates commission across order lines.
type CommissionService interface {
	CalculateCommissionForItems(ctx context.Context, items []*domain.OrderItem, orderType domain.OrderType, partnerID uuid.UUID) (*domain.ItemsCommission, error)
}

// LedgerService applies and rolls back commission against partner wallets.
type LedgerService interface {
	ApplyCommissionToPartner(ctx context.Context, req ApplyCommissionRequest) (*LedgerResult, error)
	RollbackCommissionFromPartner(ctx context.Context, req RollbackCommissionRequest) (*LedgerResult, error)
	ApplyCommissionForItems(ctx context.Context, req ItemsCommissionRequest) (*LedgerResult, error)
	RollbackCommissionForItems(ctx context.Context, req ItemsCommissionRequest) (*LedgerResult, error)
}

// ApplyCommissionRequest holds validated input for a single-category charge.
// When Tx is set the operation joins the caller's transaction and leaves
// commit and rollback to the caller.
type ApplyCommissionRequest struct {
	Tx         pgx.Tx
	PartnerID  uuid.UUID
	OrderValue decimal.Decimal
	Category   domain.Category
	OrderType  domain.OrderType
	OrderID    *uuid.UUID
	OrderModel domain.OrderModel // empty = Order
}

// RollbackCommissionRequest holds validated input for a rollback.
type RollbackCommissionRequest struct {
	Tx          pgx.Tx
	PartnerID   uuid.UUID
	Amount      decimal.Decimal
	OrderID     *uuid.UUID
	OrderModel  domain.OrderModel // empty = Order
	Description string            // empty = default rollback description
}

// ItemsCommissionRequest charges or reverses a multi-category commission.
type ItemsCommissionRequest struct {
	Tx         pgx.Tx
	PartnerID  uuid.UUID
	OrderID    *uuid.UUID
	OrderModel domain.OrderModel
	OrderType  domain.OrderType
	Commission *domain.ItemsCommission
}

// LedgerResult summarises one ledger operation.
type LedgerResult struct {
	Success         bool                       `json:"success"`
	Commission      domain.CommissionQuote     `json:"commission"`
	Breakdown       []domain.CategoryBreakdown `json:"breakdown,omitempty"`
	TransactionID   uuid.UUID                  `json:"transactionId"`
	PreviousBalance decimal.Decimal            `json:"previousBalance"`
	NewBalance      decimal.Decimal            `json:"newBalance"`
	Floored         bool                       `json:"floored,omitempty"`
}

// WalletService serves wallet read models.
type WalletService interface {
	GetWallet(ctx context.Context, partnerID uuid.UUID, limit int) (*domain.Partner, error)
	ListTransactions(ctx context.Context, params TransactionListParams) ([]domain.Transaction, int64, error)
}

// ReconciliationService checks balances against both histories.
type ReconciliationService interface {
	ReconcilePartner(ctx context.Context, partnerID uuid.UUID) (*domain.ReconciliationReport, error)
	ReconcileAll(ctx context.Context) ([]*domain.ReconciliationReport, error)
}

// OrderService is the order-acceptance workflow that drives the ledger.
type OrderService interface {
	AcceptOrder(ctx context.Context, orderID uuid.UUID) (*domain.Order, *LedgerResult, error)
	CancelOrder(ctx context.Context, orderID uuid.UUID, reason string) (*domain.Order, *LedgerResult, error)
	RejectOrder(ctx context.Context, orderID uuid.UUID, reason string) (*domain.Order, *LedgerResult, error)
	// MarkCommissionAsApplied flags the order; failures are logged, never returned.
	MarkCommissionAsApplied(ctx context.Context, order *domain.Order)
}
