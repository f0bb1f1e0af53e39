package postgres

import (
	"context"
	"errors"
	"fmt"

	"partner-commission-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CommissionRuleRepo implements ports.CommissionRuleRepository.
type CommissionRuleRepo struct {
	pool Pool
}

// NewCommissionRuleRepo creates a new CommissionRuleRepo.
func NewCommissionRuleRepo(pool Pool) *CommissionRuleRepo {
	return &CommissionRuleRepo{pool: pool}
}

// FindEffective returns the active partner override for (category, orderType)
// if one exists, otherwise the active marketplace-wide rule, otherwise nil.
func (r *CommissionRuleRepo) FindEffective(ctx context.Context, partnerID uuid.UUID, category domain.Category, orderType domain.OrderType) (*domain.CommissionRule, error) {
	query := `SELECT id, partner_id, category, order_type, rate, is_active, created_at, updated_at
		FROM commission_rules
		WHERE category = $1 AND order_type = $2 AND is_active
		  AND (partner_id = $3 OR partner_id IS NULL)
		ORDER BY partner_id NULLS LAST
		LIMIT 1`

	rule := &domain.CommissionRule{}
	err := r.pool.QueryRow(ctx, query, category, orderType, partnerID).Scan(
		&rule.ID, &rule.PartnerID, &rule.Category, &rule.OrderType,
		&rule.Rate, &rule.IsActive, &rule.CreatedAt, &rule.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find effective commission rule: %w", err)
	}
	return rule, nil
}
