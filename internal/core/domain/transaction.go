package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the kind of ledger movement.
type TransactionType string

const (
	TransactionTypeCommissionCharge   TransactionType = "commission_charge"
	TransactionTypeCommissionRollback TransactionType = "commission_rollback"
)

// TransactionStatus represents the lifecycle state of a ledger transaction.
type TransactionStatus string

const TransactionStatusCompleted TransactionStatus = "completed"

// PaymentMethodSystem marks ledger rows written by the platform itself.
const PaymentMethodSystem = "System"

// Transaction is an immutable ledger row mirroring one apply or rollback.
// Charges carry a positive amount and rollbacks a negative one, so the
// net of all rows for a partner reconciles against the wallet balance.
type Transaction struct {
	ID              uuid.UUID           `json:"id"`
	TransactionType TransactionType     `json:"transaction_type"`
	Amount          decimal.Decimal     `json:"amount"`
	PartnerID       uuid.UUID           `json:"partner_id"`
	OrderID         *uuid.UUID          `json:"order_id,omitempty"`
	PaymentMethod   string              `json:"payment_method"`
	Status          TransactionStatus   `json:"status"`
	Description     string              `json:"description"`
	Metadata        TransactionMetadata `json:"metadata"`
	CreatedAt       time.Time           `json:"created_at"`
}

// TransactionMetadata is the audit snapshot stored with each ledger row.
type TransactionMetadata struct {
	PreviousBalance decimal.Decimal     `json:"previousBalance"`
	NewBalance      decimal.Decimal     `json:"newBalance"`
	OrderModel      OrderModel          `json:"orderModel,omitempty"`
	OrderType       OrderType           `json:"orderType,omitempty"`
	Category        string              `json:"category,omitempty"`
	Rate            decimal.Decimal     `json:"rate"`
	RequestedAmount decimal.Decimal     `json:"requestedAmount"`
	Breakdown       []CategoryBreakdown `json:"breakdown,omitempty"`
}

// IsCharge returns true for commission charges.
func (t *Transaction) IsCharge() bool {
	return t.TransactionType == TransactionTypeCommissionCharge
}

// IsRollback returns true for commission rollbacks.
func (t *Transaction) IsRollback() bool {
	return t.TransactionType == TransactionTypeCommissionRollback
}
