package dto

import (
	"time"

	"partner-commission-ledger/internal/core/domain"
	"partner-commission-ledger/internal/core/ports"

	"github.com/shopspring/decimal"
)

// QuoteItemRequest is one order line in a commission quote request.
type QuoteItemRequest struct {
	ProductID   string              `json:"product_id,omitempty" binding:"omitempty,max=64,safe_id"`
	ProductName string              `json:"product_name" binding:"max=200"`
	Brand       string              `json:"brand,omitempty" binding:"max=100"`
	Category    string              `json:"category,omitempty" binding:"omitempty,commission_category"`
	CategoryRef *CategoryRefRequest `json:"category_ref,omitempty"`
	Price       decimal.Decimal     `json:"price"`
	Quantity    int                 `json:"quantity" binding:"gte=0"`
}

// CategoryRefRequest is the catalog category of a quoted product. It is used
// for classification when no explicit category is sent.
type CategoryRefRequest struct {
	Name          string                `json:"name" binding:"max=100"`
	SuperCategory *SuperCategoryRequest `json:"super_category,omitempty"`
}

// SuperCategoryRequest is the top-level catalog grouping.
type SuperCategoryRequest struct {
	Name string `json:"name" binding:"max=100"`
	Slug string `json:"slug" binding:"max=100"`
}

func (r *CategoryRefRequest) toDomain() *domain.CategoryRef {
	if r == nil {
		return nil
	}
	ref := &domain.CategoryRef{Name: r.Name}
	if r.SuperCategory != nil {
		ref.SuperCategory = &domain.SuperCategory{Name: r.SuperCategory.Name, Slug: r.SuperCategory.Slug}
	}
	return ref
}

// QuoteRequest is the request body for POST /api/v1/commission/quote.
// Empty items and bad order types are left to the commission service so
// the caller sees the commission error codes.
type QuoteRequest struct {
	PartnerID string             `json:"partner_id" binding:"required,uuid"`
	OrderType string             `json:"order_type" binding:"required"`
	Items     []QuoteItemRequest `json:"items" binding:"dive"`
}

// ToOrderItems converts the request lines into domain order items.
func (r *QuoteRequest) ToOrderItems() []*domain.OrderItem {
	items := make([]*domain.OrderItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, &domain.OrderItem{
			Product: domain.Product{
				ID:         it.ProductID,
				Name:       it.ProductName,
				Brand:      it.Brand,
				Category:   it.Category,
				CategoryID: it.CategoryRef.toDomain(),
			},
			Price:    it.Price,
			Quantity: it.Quantity,
		})
	}
	return items
}

// CloseOrderRequest is the optional body for order cancel and reject.
type CloseOrderRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

// QuoteLineResponse is a priced order line.
type QuoteLineResponse struct {
	ProductName string          `json:"product_name"`
	Category    domain.Category `json:"category"`
	Quantity    int             `json:"quantity"`
	Value       decimal.Decimal `json:"value"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
}

// QuoteResponse is the response body for a commission quote.
type QuoteResponse struct {
	TotalRate   decimal.Decimal            `json:"total_rate"`
	TotalAmount decimal.Decimal            `json:"total_amount"`
	Breakdown   []domain.CategoryBreakdown `json:"breakdown"`
	Items       []QuoteLineResponse        `json:"items"`
}

// NewQuoteResponse maps an aggregated commission to its response.
func NewQuoteResponse(c *domain.ItemsCommission) QuoteResponse {
	lines := make([]QuoteLineResponse, 0, len(c.Items))
	for _, item := range c.Items {
		line := QuoteLineResponse{
			ProductName: item.Product.Name,
			Quantity:    item.Quantity,
			Value:       item.Value(),
		}
		if item.Commission != nil {
			line.Category = item.Commission.Category
			line.Rate = item.Commission.Rate
			line.Amount = item.Commission.Amount
		}
		lines = append(lines, line)
	}
	return QuoteResponse{
		TotalRate:   c.TotalRate,
		TotalAmount: c.TotalAmount,
		Breakdown:   c.Breakdown,
		Items:       lines,
	}
}

// WalletEntryResponse is one wallet history entry.
type WalletEntryResponse struct {
	ID             string          `json:"id"`
	Type           string          `json:"type"`
	Amount         decimal.Decimal `json:"amount"`
	Description    string          `json:"description"`
	Reference      *string         `json:"reference,omitempty"`
	ReferenceModel string          `json:"reference_model"`
	Timestamp      string          `json:"timestamp"`
}

// WalletResponse is the response for a partner wallet query.
type WalletResponse struct {
	PartnerID         string                `json:"partner_id"`
	Name              string                `json:"name"`
	CommissionBalance decimal.Decimal       `json:"commission_balance"`
	Transactions      []WalletEntryResponse `json:"transactions"`
}

// NewWalletResponse maps a partner and its recent history to a response.
func NewWalletResponse(p *domain.Partner) WalletResponse {
	entries := make([]WalletEntryResponse, 0, len(p.Wallet.Transactions))
	for _, e := range p.Wallet.Transactions {
		entry := WalletEntryResponse{
			ID:             e.ID.String(),
			Type:           string(e.Type),
			Amount:         e.Amount,
			Description:    e.Description,
			ReferenceModel: string(e.ReferenceModel),
			Timestamp:      e.Timestamp.UTC().Format(time.RFC3339),
		}
		if e.Reference != nil {
			ref := e.Reference.String()
			entry.Reference = &ref
		}
		entries = append(entries, entry)
	}
	return WalletResponse{
		PartnerID:         p.ID.String(),
		Name:              p.Name,
		CommissionBalance: p.Wallet.CommissionBalance,
		Transactions:      entries,
	}
}

// TransactionResponse is one ledger row.
type TransactionResponse struct {
	ID              string                     `json:"id"`
	TransactionType string                     `json:"transaction_type"`
	Amount          decimal.Decimal            `json:"amount"`
	OrderID         *string                    `json:"order_id,omitempty"`
	Status          string                     `json:"status"`
	Description     string                     `json:"description"`
	Metadata        domain.TransactionMetadata `json:"metadata"`
	CreatedAt       string                     `json:"created_at"`
}

// NewTransactionResponse maps a ledger row to its response.
func NewTransactionResponse(t *domain.Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:              t.ID.String(),
		TransactionType: string(t.TransactionType),
		Amount:          t.Amount,
		Status:          string(t.Status),
		Description:     t.Description,
		Metadata:        t.Metadata,
		CreatedAt:       t.CreatedAt.UTC().Format(time.RFC3339),
	}
	if t.OrderID != nil {
		id := t.OrderID.String()
		resp.OrderID = &id
	}
	return resp
}

// ReconciliationResponse reports drift between a balance and its histories.
type ReconciliationResponse struct {
	PartnerID   string          `json:"partner_id"`
	Balance     decimal.Decimal `json:"balance"`
	WalletNet   decimal.Decimal `json:"wallet_net"`
	LedgerNet   decimal.Decimal `json:"ledger_net"`
	WalletDrift decimal.Decimal `json:"wallet_drift"`
	LedgerDrift decimal.Decimal `json:"ledger_drift"`
	Consistent  bool            `json:"consistent"`
	CheckedAt   string          `json:"checked_at"`
}

// NewReconciliationResponse maps a reconciliation report to its response.
func NewReconciliationResponse(r *domain.ReconciliationReport) ReconciliationResponse {
	return ReconciliationResponse{
		PartnerID:   r.PartnerID.String(),
		Balance:     r.Balance,
		WalletNet:   r.WalletNet,
		LedgerNet:   r.LedgerNet,
		WalletDrift: r.WalletDrift,
		LedgerDrift: r.LedgerDrift,
		Consistent:  r.Consistent(),
		CheckedAt:   r.CheckedAt.UTC().Format(time.RFC3339),
	}
}

// LedgerEntryResponse summarises the ledger posting made by an order action.
type LedgerEntryResponse struct {
	TransactionID   string          `json:"transaction_id"`
	Amount          decimal.Decimal `json:"amount"`
	PreviousBalance decimal.Decimal `json:"previous_balance"`
	NewBalance      decimal.Decimal `json:"new_balance"`
	Floored         bool            `json:"floored,omitempty"`
}

// OrderActionResponse is the response for accept, cancel and reject.
type OrderActionResponse struct {
	OrderID          string               `json:"order_id"`
	PartnerID        string               `json:"partner_id"`
	Status           string               `json:"status"`
	CommissionRate   decimal.Decimal      `json:"commission_rate"`
	CommissionAmount decimal.Decimal      `json:"commission_amount"`
	IsApplied        bool                 `json:"is_applied"`
	Ledger           *LedgerEntryResponse `json:"ledger,omitempty"`
}

// NewOrderActionResponse maps an order and the optional ledger posting.
func NewOrderActionResponse(o *domain.Order, result *ports.LedgerResult) OrderActionResponse {
	resp := OrderActionResponse{
		OrderID:          o.ID.String(),
		PartnerID:        o.PartnerID.String(),
		Status:           string(o.Status),
		CommissionRate:   o.Commission.Rate,
		CommissionAmount: o.Commission.Amount,
		IsApplied:        o.Commission.IsApplied,
	}
	if result != nil {
		resp.Ledger = &LedgerEntryResponse{
			TransactionID:   result.TransactionID.String(),
			Amount:          result.Commission.Amount,
			PreviousBalance: result.PreviousBalance,
			NewBalance:      result.NewBalance,
			Floored:         result.Floored,
		}
	}
	return resp
}
