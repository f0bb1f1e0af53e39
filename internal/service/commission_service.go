package service

import (
	"context"
	"fmt"

	"partner-commission-ledger/internal/core/domain"
	"partner-commission-ledger/internal/core/ports"
	"partner-commission-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemsCommissionService implements ports.CommissionService on top of a
// single-value CommissionCalculator.
type ItemsCommissionService struct {
	calc ports.CommissionCalculator
}

// NewItemsCommissionService creates a new ItemsCommissionService.
func NewItemsCommissionService(calc ports.CommissionCalculator) *ItemsCommissionService {
	return &ItemsCommissionService{calc: calc}
}

// CalculateCommissionForItems prices every line, annotates each item in place
// and returns the per-category breakdown plus the value-weighted total rate.
//
// Item amounts and breakdown amounts are rounded independently, so the sum of
// item amounts may differ from a category amount by one unit.
func (s *ItemsCommissionService) CalculateCommissionForItems(
	ctx context.Context,
	items []*domain.OrderItem,
	orderType domain.OrderType,
	partnerID uuid.UUID,
) (*domain.ItemsCommission, error) {
	if len(items) == 0 {
		return nil, apperror.ErrEmptyItems()
	}
	if !orderType.IsValid() {
		return nil, apperror.ErrInvalidOrderType(string(orderType))
	}

	var (
		order       []domain.Category
		byCategory  = map[domain.Category]*domain.CategoryBreakdown{}
		totalValue  = decimal.Zero
		totalAmount = decimal.Zero
	)

	for i, item := range items {
		if item == nil {
			return nil, apperror.Validation(fmt.Sprintf("order item %d is missing", i))
		}
		if item.Quantity <= 0 {
			return nil, apperror.Validation(fmt.Sprintf("order item %d has non-positive quantity", i))
		}

		category := domain.CategoryFromProduct(item.Product)
		itemValue := item.Value()

		quote, err := s.quoteItem(ctx, itemValue, category, orderType, partnerID)
		if err != nil {
			return nil, err
		}

		b, ok := byCategory[category]
		if !ok {
			b = &domain.CategoryBreakdown{
				Category:  category,
				Rate:      quote.Rate,
				Amount:    decimal.Zero,
				ItemValue: decimal.Zero,
			}
			byCategory[category] = b
			order = append(order, category)
		}
		b.Amount = b.Amount.Add(quote.Amount)
		b.ItemCount += item.Quantity
		b.ItemValue = b.ItemValue.Add(itemValue)

		item.Commission = &domain.ItemCommission{
			Rate:     quote.Rate,
			Amount:   quote.Amount.Round(0),
			Category: category,
		}

		totalValue = totalValue.Add(itemValue)
		totalAmount = totalAmount.Add(quote.Amount)
	}

	breakdown := make([]domain.CategoryBreakdown, 0, len(order))
	for _, category := range order {
		b := byCategory[category]
		b.Amount = b.Amount.Round(0)
		breakdown = append(breakdown, *b)
	}

	totalRate := decimal.Zero
	if !totalValue.IsZero() {
		totalRate = totalAmount.Div(totalValue).Mul(hundred).Round(2)
	}

	return &domain.ItemsCommission{
		TotalRate:   totalRate,
		TotalAmount: totalAmount.Round(0),
		Breakdown:   breakdown,
		Items:       items,
	}, nil
}

// quoteItem prices one line. Zero-value lines carry no commission and skip
// the calculator, which only accepts positive values.
func (s *ItemsCommissionService) quoteItem(
	ctx context.Context,
	itemValue decimal.Decimal,
	category domain.Category,
	orderType domain.OrderType,
	partnerID uuid.UUID,
) (*domain.CommissionQuote, error) {
	if itemValue.IsNegative() {
		return nil, apperror.ErrInvalidOrderValue()
	}
	if itemValue.IsZero() {
		return &domain.CommissionQuote{Rate: decimal.Zero, Amount: decimal.Zero, Category: category}, nil
	}
	return s.calc.CalculateCommissionForOrder(ctx, itemValue, category, orderType, partnerID)
}
