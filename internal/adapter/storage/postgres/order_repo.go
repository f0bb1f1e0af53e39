package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"partner-commission-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// OrderRepo implements ports.OrderRepository. Line items, with their
// commission annotations, are stored as a JSONB array.
type OrderRepo struct {
	pool Pool
}

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo(pool Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

const orderColumns = `id, partner_id, model, order_type, status, items,
		commission_rate, commission_amount, commission_applied, commission_applied_at,
		created_at, updated_at`

// GetByID fetches an order by its UUID (without locking).
func (r *OrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	o, err := scanOrder(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get order by id: %w", err)
	}
	return o, nil
}

// GetByIDForUpdate fetches an order with a row lock. This MUST be called within a transaction.
func (r *OrderRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1 FOR UPDATE`

	o, err := scanOrder(tx.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get order for update: %w", err)
	}
	return o, nil
}

// SaveCommission persists the order-level commission and the annotated items.
func (r *OrderRepo) SaveCommission(ctx context.Context, tx pgx.Tx, order *domain.Order) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("marshal order items: %w", err)
	}

	query := `UPDATE orders SET items = $1, commission_rate = $2, commission_amount = $3,
		commission_applied = $4, commission_applied_at = $5, updated_at = NOW()
		WHERE id = $6`

	tag, err := tx.Exec(ctx, query,
		items, order.Commission.Rate, order.Commission.Amount,
		order.Commission.IsApplied, order.Commission.AppliedAt, order.ID,
	)
	if err != nil {
		return fmt.Errorf("save order commission: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order not found: %s", order.ID)
	}
	return nil
}

// UpdateStatus moves an order to a new status within a transaction.
func (r *OrderRepo) UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.OrderStatus) error {
	query := `UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2`

	tag, err := tx.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order not found: %s", id)
	}
	return nil
}

// MarkCommissionApplied flags the order's commission as applied outside any
// ledger transaction.
func (r *OrderRepo) MarkCommissionApplied(ctx context.Context, id uuid.UUID, appliedAt time.Time) error {
	query := `UPDATE orders SET commission_applied = TRUE, commission_applied_at = $1, updated_at = NOW() WHERE id = $2`

	tag, err := r.pool.Exec(ctx, query, appliedAt, id)
	if err != nil {
		return fmt.Errorf("mark commission applied: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order not found: %s", id)
	}
	return nil
}

// scanOrder returns nil, nil when the row does not exist.
func scanOrder(row pgx.Row) (*domain.Order, error) {
	o := &domain.Order{}
	var items []byte
	err := row.Scan(
		&o.ID, &o.PartnerID, &o.Model, &o.OrderType, &o.Status, &items,
		&o.Commission.Rate, &o.Commission.Amount, &o.Commission.IsApplied, &o.Commission.AppliedAt,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &o.Items); err != nil {
			return nil, fmt.Errorf("unmarshal order items: %w", err)
		}
	}
	return o, nil
}
