package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HeaderServiceToken は内部サービス間呼び出しのトークンを運ぶヘッダーです。
const HeaderServiceToken = "X-Service-Token"

// ServiceToken admits only callers presenting the shared token issued to the
// login provider bridge. An empty configured token rejects every request.
func ServiceToken(token string) gin.HandlerFunc {
	want := []byte(token)
	return func(c *gin.Context) {
		got := []byte(c.GetHeader(HeaderServiceToken))
		if len(want) == 0 || subtle.ConstantTimeCompare(got, want) != 1 {
			slog.Warn("service token rejected", "remote_addr", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}
