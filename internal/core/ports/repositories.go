package ports

import (
	"context"
	"time"

	"partner-commission-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// PartnerRepository defines persistence operations for partners and their wallets.
// Methods accepting pgx.Tx are used inside transaction blocks for pessimistic locking.
type PartnerRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Partner, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Partner, error)
	UpdateCommissionBalance(ctx context.Context, tx pgx.Tx, id uuid.UUID, balance decimal.Decimal) error
	AppendWalletTransaction(ctx context.Context, tx pgx.Tx, entry *domain.WalletTransaction) error
	ListWalletTransactions(ctx context.Context, partnerID uuid.UUID, limit int) ([]domain.WalletTransaction, error)
	// WalletNet returns Σ debit − Σ credit over commission wallet entries.
	WalletNet(ctx context.Context, partnerID uuid.UUID) (decimal.Decimal, error)
	ListIDs(ctx context.Context) ([]uuid.UUID, error)
}

// TransactionRepository is the append-only writer/reader of the standalone ledger.
type TransactionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, transaction *domain.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	ListByPartner(ctx context.Context, params TransactionListParams) ([]domain.Transaction, int64, error)
	// NetByPartner returns the signed sum of all ledger amounts for a partner.
	NetByPartner(ctx context.Context, partnerID uuid.UUID) (decimal.Decimal, error)
}

// TransactionListParams holds filter + pagination for listing ledger rows.
type TransactionListParams struct {
	PartnerID uuid.UUID
	Type      *domain.TransactionType
	Page      int
	PageSize  int
}

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Normalize applies the paging defaults and caps the page size.
func (p *TransactionListParams) Normalize() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
}

// CommissionRuleRepository looks up configured commission rates.
type CommissionRuleRepository interface {
	// FindEffective returns the partner override if one is active, else the
	// marketplace-wide rule, else nil.
	FindEffective(ctx context.Context, partnerID uuid.UUID, category domain.Category, orderType domain.OrderType) (*domain.CommissionRule, error)
}

// OrderRepository exposes the order fields the commission workflow touches.
type OrderRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Order, error)
	SaveCommission(ctx context.Context, tx pgx.Tx, order *domain.Order) error
	UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.OrderStatus) error
	MarkCommissionApplied(ctx context.Context, id uuid.UUID, appliedAt time.Time) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
