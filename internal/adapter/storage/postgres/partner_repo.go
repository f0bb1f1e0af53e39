package postgres

import (
	"context"
	"errors"
	"fmt"

	"partner-commission-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// PartnerRepo implements ports.PartnerRepository.
type PartnerRepo struct {
	pool Pool
}

// NewPartnerRepo creates a new PartnerRepo.
func NewPartnerRepo(pool Pool) *PartnerRepo {
	return &PartnerRepo{pool: pool}
}

const partnerColumns = `id, name, commission_balance, created_at, updated_at`

// GetByID fetches a partner by its UUID (without locking).
func (r *PartnerRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Partner, error) {
	query := `SELECT ` + partnerColumns + ` FROM partners WHERE id = $1`

	p, err := scanPartner(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get partner by id: %w", err)
	}
	return p, nil
}

// GetByIDForUpdate fetches a partner with a row lock held until the
// surrounding transaction ends. This MUST be called within a transaction.
func (r *PartnerRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Partner, error) {
	query := `SELECT ` + partnerColumns + ` FROM partners WHERE id = $1 FOR UPDATE`

	p, err := scanPartner(tx.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get partner for update: %w", err)
	}
	return p, nil
}

// UpdateCommissionBalance writes the new balance within a transaction.
func (r *PartnerRepo) UpdateCommissionBalance(ctx context.Context, tx pgx.Tx, id uuid.UUID, balance decimal.Decimal) error {
	query := `UPDATE partners SET commission_balance = $1, updated_at = NOW() WHERE id = $2`

	tag, err := tx.Exec(ctx, query, balance, id)
	if err != nil {
		return fmt.Errorf("update commission balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("partner not found: %s", id)
	}
	return nil
}

// AppendWalletTransaction inserts one wallet history entry within a transaction.
func (r *PartnerRepo) AppendWalletTransaction(ctx context.Context, tx pgx.Tx, entry *domain.WalletTransaction) error {
	query := `INSERT INTO partner_wallet_transactions
		(id, partner_id, type, amount, description, reference_id, reference_model, transaction_category, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := tx.Exec(ctx, query,
		entry.ID, entry.PartnerID, entry.Type, entry.Amount, entry.Description,
		entry.Reference, entry.ReferenceModel, entry.TransactionCategory, entry.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert wallet transaction: %w", err)
	}
	return nil
}

// ListWalletTransactions returns the most recent wallet entries, newest first.
func (r *PartnerRepo) ListWalletTransactions(ctx context.Context, partnerID uuid.UUID, limit int) ([]domain.WalletTransaction, error) {
	query := `SELECT id, partner_id, type, amount, description, reference_id, reference_model, transaction_category, created_at
		FROM partner_wallet_transactions WHERE partner_id = $1
		ORDER BY created_at DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, partnerID, limit)
	if err != nil {
		return nil, fmt.Errorf("list wallet transactions: %w", err)
	}
	defer rows.Close()

	var entries []domain.WalletTransaction
	for rows.Next() {
		var w domain.WalletTransaction
		if err := rows.Scan(
			&w.ID, &w.PartnerID, &w.Type, &w.Amount, &w.Description,
			&w.Reference, &w.ReferenceModel, &w.TransactionCategory, &w.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("scan wallet transaction row: %w", err)
		}
		entries = append(entries, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate wallet transaction rows: %w", err)
	}
	return entries, nil
}

// WalletNet sums debit minus credit over the partner's commission entries.
func (r *PartnerRepo) WalletNet(ctx context.Context, partnerID uuid.UUID) (decimal.Decimal, error) {
	query := `SELECT
		COALESCE(SUM(amount) FILTER (WHERE type = 'debit'), 0) -
		COALESCE(SUM(amount) FILTER (WHERE type = 'credit'), 0)
		FROM partner_wallet_transactions
		WHERE partner_id = $1 AND transaction_category = $2`

	var net decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, partnerID, domain.WalletCategoryCommission).Scan(&net); err != nil {
		return decimal.Zero, fmt.Errorf("sum wallet transactions: %w", err)
	}
	return net, nil
}

// ListIDs returns every partner id in a stable order.
func (r *PartnerRepo) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx, `SELECT id FROM partners ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list partner ids: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan partner id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate partner ids: %w", err)
	}
	return ids, nil
}

// scanPartner returns nil, nil when the row does not exist.
func scanPartner(row pgx.Row) (*domain.Partner, error) {
	p := &domain.Partner{}
	err := row.Scan(&p.ID, &p.Name, &p.Wallet.CommissionBalance, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}
