package ratelimiter

import (
	"context"
	"testing"
	"time"
)

func TestAttemptLimiter_Allow(t *testing.T) {
	t.Parallel()

	limiter := NewAttemptLimiter(3, time.Minute)
	ctx := context.Background()

	// 上限までは許可される
	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow(ctx, "10.0.0.1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !allowed {
			t.Fatalf("attempt %d should be allowed", i+1)
		}
	}

	// 上限超過は拒否される
	allowed, err := limiter.Allow(ctx, "10.0.0.1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if allowed {
		t.Error("attempt over the limit should be rejected")
	}

	// 別のキーは独立してカウントされる
	allowed, err = limiter.Allow(ctx, "10.0.0.2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !allowed {
		t.Error("different key should have its own counter")
	}
}

func TestAttemptLimiter_WindowReset(t *testing.T) {
	t.Parallel()

	limiter := NewAttemptLimiter(1, 10*time.Millisecond)
	ctx := context.Background()

	if allowed, _ := limiter.Allow(ctx, "10.0.0.1"); !allowed {
		t.Fatal("first attempt should be allowed")
	}
	if allowed, _ := limiter.Allow(ctx, "10.0.0.1"); allowed {
		t.Fatal("second attempt should be rejected")
	}

	// ウィンドウ経過後はカウントがリセットされる
	time.Sleep(15 * time.Millisecond)

	if allowed, _ := limiter.Allow(ctx, "10.0.0.1"); !allowed {
		t.Error("attempt after window reset should be allowed")
	}
}
