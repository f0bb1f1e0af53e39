package redis_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"partner-commission-ledger/internal/adapter/storage/redis"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitStore_Allow(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	store := redis.NewRateLimitStore(client)
	ctx := context.Background()

	t.Run("allows requests within limit", func(t *testing.T) {
		for i := int64(1); i <= 3; i++ {
			result, err := store.Allow(ctx, "10.0.0.1:orders", 3, time.Minute)
			require.NoError(t, err)
			assert.True(t, result.Allowed, "request %d should be allowed", i)
			assert.Equal(t, int64(3), result.Limit)
			assert.Equal(t, 3-i, result.Remaining)
		}
	})

	t.Run("blocks requests over limit", func(t *testing.T) {
		result, err := store.Allow(ctx, "10.0.0.1:orders", 3, time.Minute)
		require.NoError(t, err)
		assert.False(t, result.Allowed)
		assert.Equal(t, int64(0), result.Remaining)
	})

	t.Run("different keys are independent", func(t *testing.T) {
		result, err := store.Allow(ctx, "10.0.0.2:orders", 5, time.Minute)
		require.NoError(t, err)
		assert.True(t, result.Allowed)
		assert.Equal(t, int64(4), result.Remaining)
	})

	t.Run("counter keys expire", func(t *testing.T) {
		_, err := store.Allow(ctx, "10.0.0.3:quote", 1, time.Minute)
		require.NoError(t, err)

		var found bool
		for _, k := range mr.Keys() {
			if strings.HasPrefix(k, "ratelimit:10.0.0.3:quote:") {
				found = true
				ttl := mr.TTL(k)
				assert.Greater(t, ttl, time.Duration(0))
				assert.LessOrEqual(t, ttl, 61*time.Second)
			}
		}
		assert.True(t, found)
	})

	t.Run("sub-second window does not panic", func(t *testing.T) {
		result, err := store.Allow(ctx, "10.0.0.4:reads", 10, 100*time.Millisecond)
		require.NoError(t, err)
		assert.True(t, result.Allowed)
	})

	t.Run("sets ResetAt in the future", func(t *testing.T) {
		result, err := store.Allow(ctx, "10.0.0.5:reads", 10, time.Minute)
		require.NoError(t, err)
		assert.Greater(t, result.ResetAt, time.Now().Unix()-1)
	})
}

func TestRateLimitStore_RedisDown(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()
	mr.Close()

	store := redis.NewRateLimitStore(client)
	_, err := store.Allow(context.Background(), "10.0.0.1:orders", 3, time.Minute)
	assert.Error(t, err)
}
