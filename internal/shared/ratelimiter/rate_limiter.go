package ratelimiter

import (
	"context"
	"sync"
	"time"
)

// AttemptLimiterは、キーごと（クライアントIPなど）の試行回数を制限します。
type AttemptLimiter struct {
	limit    int           // ウィンドウあたりの上限
	interval time.Duration // どの単位でリセットするか

	mu      sync.Mutex
	buckets map[string]*bucket
}

type bucket struct {
	count     int
	lastReset time.Time
}

// NewAttemptLimiterは新しいAttemptLimiterのインスタンスを生成します。
func NewAttemptLimiter(limit int, interval time.Duration) *AttemptLimiter {
	return &AttemptLimiter{
		limit:    limit,
		interval: interval,
		buckets:  make(map[string]*bucket),
	}
}

// Allowはキーの試行を記録し、上限以内であればtrueを返します。
// インメモリ実装のためエラーは返しません（シグネチャはRedis実装と揃えています）。
func (rl *AttemptLimiter) Allow(_ context.Context, key string) (bool, error) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	b, ok := rl.buckets[key]
	if !ok {
		b = &bucket{lastReset: now}
		rl.buckets[key] = b
	}

	// interval を過ぎたらカウントリセット
	if now.Sub(b.lastReset) >= rl.interval {
		b.count = 0
		b.lastReset = now
	}

	b.count++
	return b.count <= rl.limit, nil
}
