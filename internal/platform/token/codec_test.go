package token

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TestNewCodec は各種設定でCodecが正しく生成されることを検証します。
func TestNewCodec(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		secret string
		ttl    time.Duration
	}{
		{"standard config", "my-secret-key", time.Hour},
		{"long ttl", "secret", 24 * time.Hour * 30},
		{"short ttl", "s", time.Minute},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := NewCodec(tt.secret, tt.ttl)
			if c == nil {
				t.Fatal("expected codec to be non-nil")
			}

			impl, ok := c.(*codec)
			if !ok {
				t.Fatalf("expected *codec, got %T", c)
			}
			if string(impl.secret) != tt.secret {
				t.Errorf("expected secret %q, got %q", tt.secret, string(impl.secret))
			}
			if impl.ttl != tt.ttl {
				t.Errorf("expected ttl %v, got %v", tt.ttl, impl.ttl)
			}
		})
	}
}

// TestCodec_RoundTrip はSignしたトークンをVerifyすると元のクレームが返ることを検証します。
func TestCodec_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		userID uint
		email  string
	}{
		{"basic user", 1, "user@example.com"},
		{"user with special email", 42, "user+tag@example.com"},
		{"large user id", 999999, "test@test.com"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := NewCodec("test-secret", time.Hour)
			tokenStr, err := c.Sign(tt.userID, tt.email)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tokenStr == "" {
				t.Fatal("expected non-empty token")
			}

			claims, err := c.Verify(tokenStr)
			if err != nil {
				t.Fatalf("failed to verify token: %v", err)
			}
			if claims.UserID != tt.userID {
				t.Errorf("expected userID %d, got %d", tt.userID, claims.UserID)
			}
			if claims.Email != tt.email {
				t.Errorf("expected email %q, got %q", tt.email, claims.Email)
			}
		})
	}
}

// TestCodec_Sign は発行したトークンに標準クレームが含まれることを検証します。
func TestCodec_Sign(t *testing.T) {
	t.Parallel()

	c := NewCodec("test-secret", time.Hour)
	tokenStr, err := c.Sign(7, "claims@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil {
		t.Fatalf("failed to parse token: %v", err)
	}
	if !token.Valid {
		t.Error("expected token to be valid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("expected MapClaims")
	}
	if sub, ok := claims["sub"].(float64); !ok || uint(sub) != 7 {
		t.Errorf("expected sub 7, got %v", claims["sub"])
	}
	if email, ok := claims["email"].(string); !ok || email != "claims@example.com" {
		t.Errorf("expected email claim, got %v", claims["email"])
	}
	if _, ok := claims["exp"]; !ok {
		t.Error("expected exp claim to be set")
	}
	if _, ok := claims["iat"]; !ok {
		t.Error("expected iat claim to be set")
	}
}

// TestCodec_Verify_Invalid は改ざん・別シークレット・期限切れ・不正形式のトークンが拒否されることを検証します。
func TestCodec_Verify_Invalid(t *testing.T) {
	t.Parallel()

	c := NewCodec("test-secret", time.Hour)

	t.Run("tampered token", func(t *testing.T) {
		t.Parallel()

		tokenStr, err := c.Sign(1, "user@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// ペイロード部分の1バイトを書き換える
		parts := strings.Split(tokenStr, ".")
		if len(parts) != 3 {
			t.Fatalf("expected 3 token parts, got %d", len(parts))
		}
		payload := []byte(parts[1])
		if payload[0] == 'A' {
			payload[0] = 'B'
		} else {
			payload[0] = 'A'
		}
		tampered := parts[0] + "." + string(payload) + "." + parts[2]

		if _, err := c.Verify(tampered); err == nil {
			t.Error("expected tampered token to be rejected")
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		t.Parallel()

		other := NewCodec("other-secret", time.Hour)
		tokenStr, err := other.Sign(1, "user@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := c.Verify(tokenStr); err == nil {
			t.Error("expected token signed with another secret to be rejected")
		}
	})

	t.Run("expired token", func(t *testing.T) {
		t.Parallel()

		expired := NewCodec("test-secret", -time.Minute)
		tokenStr, err := expired.Sign(1, "user@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := c.Verify(tokenStr); err == nil {
			t.Error("expected expired token to be rejected")
		}
	})

	t.Run("malformed token", func(t *testing.T) {
		t.Parallel()

		if _, err := c.Verify("not-a-jwt"); err == nil {
			t.Error("expected malformed token to be rejected")
		}
	})

	t.Run("unexpected signing algorithm", func(t *testing.T) {
		t.Parallel()

		// alg=noneのトークンは署名検証前に拒否される
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
			"sub":   float64(1),
			"email": "user@example.com",
			"exp":   time.Now().Add(time.Hour).Unix(),
		})
		tokenStr, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := c.Verify(tokenStr); err == nil {
			t.Error("expected none-algorithm token to be rejected")
		}
	})
}
