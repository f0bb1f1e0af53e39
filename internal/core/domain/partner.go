package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Partner is a marketplace partner (store/agent) that accrues commission.
type Partner struct {
	ID        uuid.UUID     `json:"id"`
	Name      string        `json:"name"`
	Wallet    PartnerWallet `json:"wallet"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// PartnerWallet holds the running commission balance and its history.
type PartnerWallet struct {
	CommissionBalance decimal.Decimal     `json:"commission_balance"`
	Transactions      []WalletTransaction `json:"transactions,omitempty"`
}

// WalletEntryType is the direction of a wallet history entry.
type WalletEntryType string

const (
	WalletEntryDebit  WalletEntryType = "debit"
	WalletEntryCredit WalletEntryType = "credit"
)

// WalletTransactionCategory groups wallet history entries by purpose.
type WalletTransactionCategory string

const WalletCategoryCommission WalletTransactionCategory = "commission"

// OrderModel names the order collection a ledger entry references.
type OrderModel string

const (
	OrderModelOrder     OrderModel = "Order"
	OrderModelSellOrder OrderModel = "SellOrder"
)

// IsValid reports whether m is a known order model.
func (m OrderModel) IsValid() bool {
	return m == OrderModelOrder || m == OrderModelSellOrder
}

// WalletTransaction is one append-only entry in a partner's wallet history.
type WalletTransaction struct {
	ID                  uuid.UUID                 `json:"id"`
	PartnerID           uuid.UUID                 `json:"partner_id"`
	Type                WalletEntryType           `json:"type"`
	Amount              decimal.Decimal           `json:"amount"`
	Description         string                    `json:"description"`
	Timestamp           time.Time                 `json:"timestamp"`
	Reference           *uuid.UUID                `json:"reference,omitempty"`
	ReferenceModel      OrderModel                `json:"reference_model"`
	TransactionCategory WalletTransactionCategory `json:"transaction_category"`
}

// SignedAmount returns the entry's effect on the commission balance.
func (w *WalletTransaction) SignedAmount() decimal.Decimal {
	if w.Type == WalletEntryCredit {
		return w.Amount.Neg()
	}
	return w.Amount
}
