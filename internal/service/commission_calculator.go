package service

import (
	"context"
	"fmt"
	"time"

	"partner-commission-ledger/internal/core/domain"
	"partner-commission-ledger/internal/core/ports"
	"partner-commission-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// RateTable holds fallback rates (percent) by order type and category.
type RateTable map[domain.OrderType]map[domain.Category]decimal.Decimal

// NewRateTable builds a RateTable from raw config values, rejecting unknown
// order types, unknown categories and rates outside [0, 100].
func NewRateTable(raw map[string]map[string]float64) (RateTable, error) {
	table := RateTable{}
	for rawType, byCategory := range raw {
		orderType, err := domain.ParseOrderType(rawType)
		if err != nil {
			return nil, fmt.Errorf("default rates: %w", err)
		}
		if table[orderType] == nil {
			table[orderType] = map[domain.Category]decimal.Decimal{}
		}
		for rawCategory, value := range byCategory {
			category, err := domain.ParseCategory(rawCategory)
			if err != nil {
				return nil, fmt.Errorf("default rates: %w", err)
			}
			rate := decimal.NewFromFloat(value)
			if rate.IsNegative() || rate.GreaterThan(hundred) {
				return nil, fmt.Errorf("default rate for %s/%s out of range: %s", orderType, category, rate)
			}
			table[orderType][category] = rate
		}
	}
	return table, nil
}

func (t RateTable) lookup(orderType domain.OrderType, category domain.Category) (decimal.Decimal, bool) {
	rate, ok := t[orderType][category]
	return rate, ok
}

// RuleCommissionCalculator implements ports.CommissionCalculator. Rates come
// from the commission_rules table (partner override first, then the global
// rule) with the configured RateTable as the last resort.
type RuleCommissionCalculator struct {
	rules    ports.CommissionRuleRepository
	cache    ports.RuleCache
	defaults RateTable
	cacheTTL time.Duration
	log      zerolog.Logger
}

// NewRuleCommissionCalculator creates a new RuleCommissionCalculator. cache may be nil.
func NewRuleCommissionCalculator(
	rules ports.CommissionRuleRepository,
	cache ports.RuleCache,
	defaults RateTable,
	cacheTTL time.Duration,
	log zerolog.Logger,
) *RuleCommissionCalculator {
	return &RuleCommissionCalculator{
		rules:    rules,
		cache:    cache,
		defaults: defaults,
		cacheTTL: cacheTTL,
		log:      log,
	}
}

// CalculateCommissionForOrder returns the rate and the whole-unit commission
// amount for one order value.
func (c *RuleCommissionCalculator) CalculateCommissionForOrder(
	ctx context.Context,
	orderValue decimal.Decimal,
	category domain.Category,
	orderType domain.OrderType,
	partnerID uuid.UUID,
) (*domain.CommissionQuote, error) {
	if !orderValue.IsPositive() {
		return nil, apperror.ErrInvalidOrderValue()
	}
	if !category.IsValid() {
		return nil, apperror.ErrInvalidCategory(string(category))
	}
	if !orderType.IsValid() {
		return nil, apperror.ErrInvalidOrderType(string(orderType))
	}

	rate, err := c.resolveRate(ctx, partnerID, category, orderType)
	if err != nil {
		return nil, err
	}

	return &domain.CommissionQuote{
		Rate:     rate,
		Amount:   CommissionAmount(orderValue, rate),
		Category: category,
	}, nil
}

// CommissionAmount is orderValue × rate / 100 rounded half away from zero to
// whole currency units.
func CommissionAmount(orderValue, rate decimal.Decimal) decimal.Decimal {
	return orderValue.Mul(rate).Div(hundred).Round(0)
}

func (c *RuleCommissionCalculator) resolveRate(
	ctx context.Context,
	partnerID uuid.UUID,
	category domain.Category,
	orderType domain.OrderType,
) (decimal.Decimal, error) {
	if c.cache != nil {
		rate, found, err := c.cache.Get(ctx, partnerID, category, orderType)
		if err != nil {
			c.log.Warn().Err(err).
				Str("partner_id", partnerID.String()).
				Msg("commission rule cache read failed, falling through to DB")
		}
		if found {
			return rate, nil
		}
	}

	rule, err := c.rules.FindEffective(ctx, partnerID, category, orderType)
	if err != nil {
		return decimal.Zero, apperror.InternalError(fmt.Errorf("find commission rule: %w", err))
	}

	var rate decimal.Decimal
	if rule != nil {
		rate = rule.Rate
	} else {
		fallback, ok := c.defaults.lookup(orderType, category)
		if !ok {
			return decimal.Zero, apperror.InternalError(fmt.Errorf("no commission rate configured for %s/%s", orderType, category))
		}
		rate = fallback
	}
	c.log.Debug().
		Str("partner_id", partnerID.String()).
		Str("category", string(category)).
		Str("order_type", string(orderType)).
		Str("source", rateSource(rule)).
		Str("rate", rate.String()).
		Msg("commission rate resolved")

	if c.cache != nil {
		if err := c.cache.Set(ctx, partnerID, category, orderType, rate, c.cacheTTL); err != nil {
			c.log.Warn().Err(err).
				Str("partner_id", partnerID.String()).
				Msg("failed to cache commission rate in redis")
		}
	}
	return rate, nil
}

func rateSource(rule *domain.CommissionRule) string {
	switch {
	case rule == nil:
		return "default"
	case rule.IsOverride():
		return "partner_override"
	default:
		return "global_rule"
	}
}
