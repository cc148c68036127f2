// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	authhandler "user_backend/internal/feature/auth/transport/handler"
	platformratelimiter "user_backend/internal/platform/ratelimiter"
	"user_backend/internal/shared/ratelimiter"

	"github.com/redis/go-redis/v9"
)

const (
	// loginAttemptLimit / loginAttemptWindow: 5 tries per 15 minutes per client IP.
	loginAttemptLimit  = 5
	loginAttemptWindow = 15 * time.Minute
)

// NewLoginLimiter creates a LoginLimiter implementation.
// If Redis is available, it returns a Redis-backed implementation.
// Otherwise, it falls back to an in-memory counter.
func NewLoginLimiter(rdb *redis.Client) authhandler.LoginLimiter {
	if rdb != nil {
		return platformratelimiter.NewRedisLimiter(rdb, "login_attempts", loginAttemptLimit, loginAttemptWindow)
	}
	return ratelimiter.NewAttemptLimiter(loginAttemptLimit, loginAttemptWindow)
}
