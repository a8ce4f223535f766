package middleware

import (
	"storefront/internal/pkg/config"
	"storefront/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
)

const ctxSessionIDKey = "session_id"

// SessionMiddleware attaches the anonymous cart session to the request,
// minting the cookie on first visit.
func SessionMiddleware(cfg config.CookieConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ctxSessionIDKey, cookie.ResolveSession(c, cfg))
		c.Next()
	}
}

func GetSessionID(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxSessionIDKey)
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
