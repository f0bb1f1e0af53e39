package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReconciliationReport compares a partner's stored balance against the net
// of its wallet history and of the standalone ledger.
type ReconciliationReport struct {
	PartnerID   uuid.UUID       `json:"partner_id"`
	Balance     decimal.Decimal `json:"balance"`
	WalletNet   decimal.Decimal `json:"wallet_net"`
	LedgerNet   decimal.Decimal `json:"ledger_net"`
	WalletDrift decimal.Decimal `json:"wallet_drift"`
	LedgerDrift decimal.Decimal `json:"ledger_drift"`
	CheckedAt   time.Time       `json:"checked_at"`
}

// NewReconciliationReport computes drifts as balance minus each net.
func NewReconciliationReport(partnerID uuid.UUID, balance, walletNet, ledgerNet decimal.Decimal, at time.Time) *ReconciliationReport {
	return &ReconciliationReport{
		PartnerID:   partnerID,
		Balance:     balance,
		WalletNet:   walletNet,
		LedgerNet:   ledgerNet,
		WalletDrift: balance.Sub(walletNet),
		LedgerDrift: balance.Sub(ledgerNet),
		CheckedAt:   at,
	}
}

// Consistent is true when both histories net to the stored balance.
func (r *ReconciliationReport) Consistent() bool {
	return r.WalletDrift.IsZero() && r.LedgerDrift.IsZero()
}
