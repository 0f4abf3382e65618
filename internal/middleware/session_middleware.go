package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// SessionCookie carries the anonymous cart session id.
	SessionCookie = "cart_session"

	sessionContextKey = "cart_session_id"
	sessionMaxAge     = 60 * 60 * 24 // one day, matches the cart TTL default
)

// CartSession ensures every request carries a cart session id, minting a new
// cookie for first-time visitors. There are no user accounts; the cookie is
// the whole identity.
func CartSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookie)
		if err != nil || sessionID == "" {
			sessionID = uuid.NewString()
			c.SetCookie(SessionCookie, sessionID, sessionMaxAge, "/", "", false, true)
		}
		c.Set(sessionContextKey, sessionID)
		c.Next()
	}
}

// GetSessionID returns the cart session id bound to this request.
func GetSessionID(c *gin.Context) string {
	return c.GetString(sessionContextKey)
}
