package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

const defaultJobLockTTL = 10 * time.Minute

// JobLock guards a periodic job so only one worker runs it at a time.
type JobLock struct {
	client *goredis.Client
	key    string
	ttl    time.Duration
	owner  string
}

// NewJobLock constructs a Redis-backed job lock.
func NewJobLock(client *goredis.Client, key string, ttl time.Duration) (*JobLock, error) {
	if client == nil {
		return nil, errors.New("redis client required for lock")
	}
	if key == "" {
		return nil, errors.New("lock key is required")
	}
	if ttl <= 0 {
		ttl = defaultJobLockTTL
	}
	return &JobLock{client: client, key: key, ttl: ttl}, nil
}

// Acquire tries to own the lock for the configured TTL.
func (l *JobLock) Acquire(ctx context.Context) (bool, error) {
	owner := uuid.NewString()
	ok, err := l.client.SetNX(ctx, l.key, owner, l.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("setnx: %w", err)
	}
	if ok {
		l.owner = owner
	}
	return ok, nil
}

// Release frees the lock only if the owner value still matches.
func (l *JobLock) Release(ctx context.Context) error {
	if l.owner == "" {
		return nil
	}
	if err := releaseIfOwner.Run(ctx, l.client, []string{l.key}, l.owner).Err(); err != nil {
		return fmt.Errorf("release lock: %w", err)
	}
	l.owner = ""
	return nil
}
