package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// AcceptanceGuard implements ports.AcceptanceGuard using Redis SET NX.
// Every successful Acquire writes a fresh owner token, so a holder whose TTL
// lapsed cannot free the guard of whoever took it next.
type AcceptanceGuard struct {
	client *goredis.Client
	prefix string
}

// NewAcceptanceGuard creates a new Redis-backed order acceptance guard.
func NewAcceptanceGuard(client *goredis.Client) *AcceptanceGuard {
	return &AcceptanceGuard{
		client: client,
		prefix: "order_accept:",
	}
}

// Acquire takes the guard for the order. ok is false when someone else holds
// it; token must be handed back to Release.
func (g *AcceptanceGuard) Acquire(ctx context.Context, orderID uuid.UUID, ttl time.Duration) (string, bool, error) {
	token := uuid.NewString()
	result, err := g.client.SetArgs(ctx, g.prefix+orderID.String(), token, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("redis acceptance guard acquire: %w", err)
	}
	if result != "OK" {
		return "", false, nil
	}
	return token, true, nil
}

// Release frees the guard only while it still carries token.
func (g *AcceptanceGuard) Release(ctx context.Context, orderID uuid.UUID, token string) error {
	if err := releaseIfOwner.Run(ctx, g.client, []string{g.prefix + orderID.String()}, token).Err(); err != nil {
		return fmt.Errorf("redis acceptance guard release: %w", err)
	}
	return nil
}
