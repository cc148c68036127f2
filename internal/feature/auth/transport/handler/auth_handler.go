// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"user_backend/internal/feature/auth/domain/entity"
	"user_backend/internal/feature/auth/transport/http/dto"
	"user_backend/internal/feature/auth/usecase"
	"user_backend/internal/platform/token"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Register は指定されたメールアドレスとパスワードで新規ユーザーを登録します。
	Register(ctx context.Context, email, password string) (*entity.User, error)
	// Login はユーザーを認証し、成功時にセッショントークンを返します。
	Login(ctx context.Context, email, password string) (string, error)
}

// LoginLimiter limits login attempts per client key (IP address).
type LoginLimiter interface {
	// Allow records one attempt and reports whether it is within the limit.
	Allow(ctx context.Context, key string) (bool, error)
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
// セッショントークンはHttpOnly Cookieでのみ運び、レスポンスボディへは含めません。
type AuthHandler struct {
	auth         AuthUsecase
	limiter      LoginLimiter
	secureCookie bool
	tokenTTL     time.Duration
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
// secureCookieは本番環境でのみtrueにし、CookieにSecure属性を付与します。
func NewAuthHandler(auth AuthUsecase, limiter LoginLimiter, secureCookie bool, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		auth:         auth,
		limiter:      limiter,
		secureCookie: secureCookie,
		tokenTTL:     tokenTTL,
	}
}

// Register はユーザー登録APIエンドポイントを処理します。
// - リクエストJSONをRegisterReqにバインド（ストレージアクセス前に検証）
// - バリデーションエラー時は400を返却
// - メール重複時は409を返却
// - 成功時は作成されたユーザーの非機密フィールドのみを200で返却
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.auth.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			slog.Warn("register conflict", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusConflict, gin.H{"error": "email already exists"})
			return
		}
		slog.Error("register failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register user"})
		return
	}

	slog.Info("user registered", "email", user.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.UserResFromEntity(user))
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - バリデーションエラー時は400を返却
// - レートリミット超過時は429を返却
// - 認証失敗時は401を返却（ユーザー未存在とパスワード不一致は区別しない）
// - 成功時はセッションCookieを設定して200を返却（トークンはボディに含めない）
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// ログイン試行のレートリミット。リミッター自体のエラーはフェイルオープン。
	if h.limiter != nil {
		allowed, err := h.limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			slog.Error("login limiter failed", "error", err, "remote_addr", c.ClientIP())
		} else if !allowed {
			slog.Warn("login rate limited", "remote_addr", c.ClientIP())
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many login attempts"})
			return
		}
	}

	tokenStr, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			// ユーザー列挙攻撃を防止するため、失敗理由は公開しない
			slog.Warn("login failed", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}
		slog.Error("login failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign in"})
		return
	}

	// セッションCookieを設定（HttpOnly + SameSite=Strict、Max-Ageはトークン有効期限と一致）
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(token.CookieName, tokenStr, int(h.tokenTTL.Seconds()), "/", "", h.secureCookie, true)

	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, gin.H{"message": "signed in successfully"})
}

// Logout はセッションCookieを無条件に破棄します。
// 既存のトークンが有効かどうかは確認しません。
func (h *AuthHandler) Logout(c *gin.Context) {
	// 空値 + MaxAge 0 でブラウザに即時破棄させる
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(token.CookieName, "", -1, "/", "", h.secureCookie, true)

	c.JSON(http.StatusOK, gin.H{"message": "signed out successfully"})
}
