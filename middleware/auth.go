package middleware

import (
	"net/http"
	"strings"

	"github.com/usman-51/Dream-shop/auth"
	"github.com/usman-51/Dream-shop/pkg/session"

	"github.com/gin-gonic/gin"
)

// Context keys set for authenticated requests.
const (
	AccountKey     = "account_id"
	AuthSessionKey = "auth_session_id"
)

// RequireAuth validates the bearer token and checks that its auth session has
// not been revoked by a logout.
func RequireAuth(sessions *session.Store, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
			c.Abort()
			return
		}
		tokenString = strings.TrimPrefix(tokenString, "Bearer ")

		claims, err := auth.ParseToken(secret, tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		live, err := sessions.AuthSessionExists(c.Request.Context(), claims.SessionID)
		if err != nil || !live {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired, please log in again"})
			c.Abort()
			return
		}

		c.Set(AccountKey, claims.AccountID)
		c.Set(AuthSessionKey, claims.SessionID)
		c.Next()
	}
}
