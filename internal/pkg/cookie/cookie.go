package cookie

import (
	"net/http"

	"storefront/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const SessionCookieName = "cart_session_id"

// ResolveSession returns the visitor's session id. An existing cookie is
// returned untouched; otherwise a fresh id is minted and set once with a fixed
// expiry. Later requests never refresh it.
func ResolveSession(c *gin.Context, cfg config.CookieConfig) string {
	if id, err := c.Cookie(SessionCookieName); err == nil && id != "" {
		return id
	}

	id := uuid.NewString()
	SetSessionCookie(c, cfg, id)
	return id
}

func SetSessionCookie(c *gin.Context, cfg config.CookieConfig, id string) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	c.SetCookie(
		SessionCookieName,
		id,
		int(cfg.SessionMaxAge.Seconds()),
		"/",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
