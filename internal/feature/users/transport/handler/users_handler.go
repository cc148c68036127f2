package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"user_backend/internal/feature/auth/domain/entity"
	authdto "user_backend/internal/feature/auth/transport/http/dto"
)

// UsersUsecase はユーザー一覧に関するユースケースのインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type UsersUsecase interface {
	ListUsers(ctx context.Context) ([]*entity.User, error)
}

// UsersHandler はユーザー一覧に関するHTTPリクエストを処理します。
// 認証ミドルウェアの背後に配置され、未認証リクエストはここまで到達しません。
type UsersHandler struct {
	uc UsersUsecase
}

// NewUsersHandler は新しい UsersHandler を作成します。
func NewUsersHandler(uc UsersUsecase) *UsersHandler {
	return &UsersHandler{uc: uc}
}

// List は登録ユーザーの一覧を取得するAPIです。
// Usecaseを呼び出してユーザー一覧を取得し、非機密フィールドのみのDTOに変換して返します。
// パスワードハッシュは決してレスポンスに含めません。
func (h *UsersHandler) List(c *gin.Context) {
	users, err := h.uc.ListUsers(c.Request.Context())
	if err != nil {
		slog.Error("failed to list users", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list users"})
		return
	}

	out := make([]authdto.UserRes, 0, len(users))
	for _, u := range users {
		out = append(out, authdto.UserResFromEntity(u))
	}
	c.JSON(http.StatusOK, out)
}
