package router

import (
	authhandler "user_backend/internal/feature/auth/transport/handler"
	usershandler "user_backend/internal/feature/users/transport/handler"
	"user_backend/internal/platform/http/handler"
	"user_backend/internal/platform/token"

	"github.com/gin-gonic/gin"
)

func NewRouter(codec token.Codec, auth *authhandler.AuthHandler,
	users *usershandler.UsersHandler) *gin.Engine {
	r := gin.Default()

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	// 新規ユーザー登録
	r.POST("/api/auth/register", auth.Register)
	// ログイン（セッションCookie発行）
	r.POST("/api/auth/login", auth.Login)
	// ログアウト（セッションCookie破棄。トークンの有効性は問わない）
	r.POST("/api/auth/logout", auth.Logout)

	// 認証必須のルート
	// token.AuthRequired ミドルウェアを適用
	// → リクエストにセッションCookieが必要になる
	api := r.Group("/api")
	api.Use(token.AuthRequired(codec))
	{
		api.GET("/users", users.List)
	}

	return r
}
