// Package ratelimiter provides a Redis-backed attempt limiter.
package ratelimiter

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter counts attempts per key in Redis with a rolling window.
// The window is enforced by the key TTL, so counters expire on their own.
type RedisLimiter struct {
	client   *redis.Client
	prefix   string
	limit    int
	interval time.Duration
}

// NewRedisLimiter creates a new RedisLimiter instance.
func NewRedisLimiter(client *redis.Client, prefix string, limit int, interval time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client:   client,
		prefix:   prefix,
		limit:    limit,
		interval: interval,
	}
}

// attemptKey returns the Redis key for a client's attempt counter.
func (r *RedisLimiter) attemptKey(key string) string {
	return fmt.Sprintf("%s:%s", r.prefix, key)
}

// Allow records one attempt for key and reports whether it is within the limit.
func (r *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := r.attemptKey(key)

	count, err := r.client.Incr(ctx, k).Result()
	if err != nil {
		return false, err
	}

	// 最初の試行でウィンドウ分のTTLを設定する
	if count == 1 {
		if err := r.client.Expire(ctx, k, r.interval).Err(); err != nil {
			return false, err
		}
	}

	return count <= int64(r.limit), nil
}
