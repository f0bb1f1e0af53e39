package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"partner-commission-ledger/internal/core/domain"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// RuleCache implements ports.RuleCache using Redis string keys.
type RuleCache struct {
	client *goredis.Client
	prefix string
}

// NewRuleCache creates a new Redis-backed commission rule cache.
func NewRuleCache(client *goredis.Client) *RuleCache {
	return &RuleCache{
		client: client,
		prefix: "commission_rule:",
	}
}

func (c *RuleCache) key(partnerID uuid.UUID, category domain.Category, orderType domain.OrderType) string {
	return fmt.Sprintf("%s%s:%s:%s", c.prefix, partnerID, orderType, category)
}

// Get returns the cached rate. found is false on a miss.
func (c *RuleCache) Get(ctx context.Context, partnerID uuid.UUID, category domain.Category, orderType domain.OrderType) (decimal.Decimal, bool, error) {
	val, err := c.client.Get(ctx, c.key(partnerID, category, orderType)).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return decimal.Zero, false, nil
		}
		return decimal.Zero, false, fmt.Errorf("redis rule cache get: %w", err)
	}
	rate, err := decimal.NewFromString(val)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("redis rule cache decode %q: %w", val, err)
	}
	return rate, true, nil
}

// Set stores a resolved rate with TTL.
func (c *RuleCache) Set(ctx context.Context, partnerID uuid.UUID, category domain.Category, orderType domain.OrderType, rate decimal.Decimal, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.key(partnerID, category, orderType), rate.String(), ttl).Err(); err != nil {
		return fmt.Errorf("redis rule cache set: %w", err)
	}
	return nil
}
