package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CommissionQuote is the rate and amount computed for a single order value.
type CommissionQuote struct {
	Rate     decimal.Decimal `json:"rate"`
	Amount   decimal.Decimal `json:"amount"`
	Category Category        `json:"category"`
}

// ItemCommission is the commission annotation attached to an order line.
type ItemCommission struct {
	Rate     decimal.Decimal `json:"rate"`
	Amount   decimal.Decimal `json:"amount"`
	Category Category        `json:"category"`
}

// CategoryBreakdown aggregates the commission of all lines in one category.
type CategoryBreakdown struct {
	Category  Category        `json:"category"`
	Rate      decimal.Decimal `json:"rate"`
	Amount    decimal.Decimal `json:"amount"`
	ItemCount int             `json:"itemCount"`
	ItemValue decimal.Decimal `json:"itemValue"`
}

// ItemsCommission is the result of aggregating commission across order lines.
type ItemsCommission struct {
	TotalRate   decimal.Decimal     `json:"totalRate"`
	TotalAmount decimal.Decimal     `json:"totalAmount"`
	Breakdown   []CategoryBreakdown `json:"breakdown"`
	Items       []*OrderItem        `json:"items"`
}

// CommissionRule is a configured rate for a category and order type. A nil
// PartnerID is the marketplace-wide rule; a set PartnerID overrides it.
type CommissionRule struct {
	ID        uuid.UUID       `json:"id"`
	PartnerID *uuid.UUID      `json:"partner_id,omitempty"`
	Category  Category        `json:"category"`
	OrderType OrderType       `json:"order_type"`
	Rate      decimal.Decimal `json:"rate"`
	IsActive  bool            `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// IsOverride reports whether the rule targets a single partner.
func (r *CommissionRule) IsOverride() bool {
	return r.PartnerID != nil
}
