package middleware

import (
	"github.com/usman-51/Dream-shop/pkg/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionKey is the gin context key holding the browser session ID.
const SessionKey = "session_id"

// CartSession reads the session cookie, minting one on first contact, and
// exposes the session ID on the context. Redis registration is best effort;
// the cart row itself lives in Postgres.
func CartSession(store *session.Store, cookieName string) gin.HandlerFunc {
	maxAge := int(store.TTL().Seconds())
	return func(c *gin.Context) {
		id, _ := c.Cookie(cookieName)

		ensured, err := store.Ensure(c.Request.Context(), id)
		if err != nil {
			zap.S().Warnf("session registration failed: %v", err)
		}
		if ensured != id {
			c.SetCookie(cookieName, ensured, maxAge, "/", "", false, true)
		}

		c.Set(SessionKey, ensured)
		c.Next()
	}
}

// SessionID returns the browser session ID set by CartSession.
func SessionID(c *gin.Context) string {
	if v, ok := c.Get(SessionKey); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
