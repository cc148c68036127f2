// Package config は環境変数からプロセス全体の設定を読み込みます。
package config

import (
	"fmt"
	"os"
	"time"
)

const (
	// EnvKeyJWTSecret はトークン署名用シークレットの環境変数名です。
	EnvKeyJWTSecret = "JWT_SECRET"

	// defaultTokenTTL はセッショントークンの有効期間です。
	// CookieのMax-Ageもこの値に揃えます。
	defaultTokenTTL = time.Hour
)

// Config holds process-wide settings loaded once at startup.
type Config struct {
	// Port is the HTTP listen port (without the colon).
	Port string

	// JWTSecret signs and verifies session tokens. Required.
	JWTSecret string

	// TokenTTL is the session token lifetime.
	TokenTTL time.Duration

	// Production toggles the Secure attribute on the session cookie.
	Production bool

	// RedisAddr is the optional Redis address for the login limiter.
	// Empty means no Redis.
	RedisAddr     string
	RedisPassword string
}

// Load reads configuration from environment variables.
// A missing JWT_SECRET is a startup error, not a per-request condition.
func Load() (*Config, error) {
	secret := os.Getenv(EnvKeyJWTSecret)
	if secret == "" {
		return nil, fmt.Errorf("%s is not set", EnvKeyJWTSecret)
	}

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		JWTSecret:     secret,
		TokenTTL:      defaultTokenTTL,
		Production:    os.Getenv("APP_ENV") == "production",
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
	}

	if host := os.Getenv("REDIS_HOST"); host != "" {
		cfg.RedisAddr = host + ":" + getEnv("REDIS_PORT", "6379")
	}

	return cfg, nil
}

// getEnv は環境変数を読み、未設定ならフォールバック値を返します。
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
