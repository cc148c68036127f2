// Package token implements the session token codec and the cookie-based
// authentication middleware built on top of it.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the decoded payload of a session token.
type Claims struct {
	UserID uint
	Email  string
}

// Codec signs claims into an opaque session token and verifies them back.
type Codec interface {
	// Sign creates a signed session token for the given user.
	Sign(userID uint, email string) (string, error)

	// Verify checks the signature and expiry of a token and returns its claims.
	Verify(tokenStr string) (*Claims, error)
}

// ErrInvalidToken is returned by Verify for any tampered, malformed or
// expired token. Callers must not distinguish further.
var ErrInvalidToken = errors.New("invalid or expired token")

// codec implements Codec with HMAC-SHA256 and a fixed expiration window.
type codec struct {
	secret []byte
	ttl    time.Duration
}

// NewCodec creates a Codec with the provided secret and token lifetime.
// The secret is injected here so tests can use deterministic values.
func NewCodec(secret string, ttl time.Duration) Codec {
	return &codec{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Sign creates a signed JWT with standard claims.
func (c *codec) Sign(userID uint, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   userID,
		"exp":   now.Add(c.ttl).Unix(),
		"iat":   now.Unix(),
		"email": email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify parses the token, checks the HMAC signature and expiry, and
// returns the embedded claims.
func (c *codec) Verify(tokenStr string) (*Claims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// 署名アルゴリズムの確認（HMAC以外は拒否）
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, ok := mc["sub"].(float64) // JWT numbers are decoded as float64
	if !ok {
		return nil, ErrInvalidToken
	}
	email, _ := mc["email"].(string)

	return &Claims{UserID: uint(sub), Email: email}, nil
}
