// Package cache holds the Redis-backed helpers.
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"tailor/internal/core/ports"
)

const idempotencyPrefix = "tailor:idemp:"

type RedisIdempotencyStore struct {
	rdb *redis.Client
}

func NewRedisIdempotencyStore(rdb *redis.Client) *RedisIdempotencyStore {
	return &RedisIdempotencyStore{rdb: rdb}
}

func (s *RedisIdempotencyStore) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return s.rdb.SetNX(ctx, idempotencyPrefix+key, "1", ttl).Result()
}

func (s *RedisIdempotencyStore) Release(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, idempotencyPrefix+key).Err()
}

var _ ports.IdempotencyStore = (*RedisIdempotencyStore)(nil)
