// Package redis keeps idempotency keys of order placement in Redis.
package redis

import (
	"context"
	"errors"
	"time"

	"eats/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

const (
	lockPrefix  = "idemp:"
	valuePrefix = "idemp:map:"
)

// IdempotencyStore implements ports.IdempotencyStore. Locks and remembered
// values expire after ttl.
type IdempotencyStore struct {
	rdb *goredis.Client
	ttl time.Duration
}

func NewIdempotencyStore(rdb *goredis.Client, ttl time.Duration) *IdempotencyStore {
	return &IdempotencyStore{rdb: rdb, ttl: ttl}
}

func (s *IdempotencyStore) TryLock(ctx context.Context, scope, key string) (bool, error) {
	return s.rdb.SetNX(ctx, lockPrefix+scope+":"+key, "1", s.ttl).Result()
}

func (s *IdempotencyStore) Remember(ctx context.Context, scope, key, value string) error {
	return s.rdb.Set(ctx, valuePrefix+scope+":"+key, value, s.ttl).Err()
}

func (s *IdempotencyStore) Recall(ctx context.Context, scope, key string) (string, bool, error) {
	val, err := s.rdb.Get(ctx, valuePrefix+scope+":"+key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

// Release drops the lock so that a failed request can be retried with the
// same key.
func (s *IdempotencyStore) Release(ctx context.Context, scope, key string) error {
	return s.rdb.Del(ctx, lockPrefix+scope+":"+key).Err()
}

var _ ports.IdempotencyStore = (*IdempotencyStore)(nil)
