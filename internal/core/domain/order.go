package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the acceptance state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusAccepted  OrderStatus = "accepted"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusRejected  OrderStatus = "rejected"
)

// OrderItem is one line of an order.
type OrderItem struct {
	Product    Product         `json:"product"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int             `json:"quantity"`
	Commission *ItemCommission `json:"commission,omitempty"`
}

// Value returns price × quantity.
func (i *OrderItem) Value() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// OrderCommission records the commission charged for an order.
type OrderCommission struct {
	Rate      decimal.Decimal `json:"rate"`
	Amount    decimal.Decimal `json:"amount"`
	IsApplied bool            `json:"is_applied"`
	AppliedAt *time.Time      `json:"applied_at,omitempty"`
}

// Order is the part of a marketplace order the commission workflow needs.
type Order struct {
	ID         uuid.UUID       `json:"id"`
	PartnerID  uuid.UUID       `json:"partner_id"`
	Model      OrderModel      `json:"model"`
	OrderType  OrderType       `json:"order_type"`
	Status     OrderStatus     `json:"status"`
	Items      []*OrderItem    `json:"items"`
	Commission OrderCommission `json:"commission"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// IsPending returns true while the order awaits a partner decision.
func (o *Order) IsPending() bool {
	return o.Status == OrderStatusPending
}

// TotalValue returns the sum of all line values.
func (o *Order) TotalValue() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Value())
	}
	return total
}
