package token

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	// CookieName はセッショントークンを運ぶCookieの名前です。
	CookieName = "token"

	// ContextUserID and ContextEmail are the gin context keys populated
	// by AuthRequired for downstream handlers.
	ContextUserID = "userID"
	ContextEmail  = "email"
)

// AuthRequired returns a Gin middleware that validates the session cookie
// and restricts access to authenticated users only.
func AuthRequired(codec Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Cookieからセッショントークンを取得
		tokenStr, err := c.Cookie(CookieName)
		if err != nil || tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		// 2. 署名と有効期限を検証（ストレージアクセスの前）
		claims, err := codec.Verify(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		// 3. クレームをコンテキストに格納して次のハンドラーへ
		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Next()
	}
}
