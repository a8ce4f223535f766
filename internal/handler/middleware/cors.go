package middleware

import (
	"log/slog"
	"slices"

	"storefront/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware lets the storefront and admin frontends call the API with
// the cart session cookie attached.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}

	if slices.Contains(cfg.AllowOrigins, "*") {
		// browsers drop credentialed responses for a wildcard origin, so the cart cookie would never arrive
		corsCfg.AllowAllOrigins = true
		if cfg.AllowCredentials {
			slog.Warn("CORS wildcard origin disables credentials; cart sessions will not survive cross-origin calls")
			corsCfg.AllowCredentials = false
		}
	} else {
		corsCfg.AllowOrigins = cfg.AllowOrigins
	}

	slog.Info("CORS middleware initialized",
		"allow_origins", cfg.AllowOrigins,
		"allow_credentials", corsCfg.AllowCredentials)
	return cors.New(corsCfg)
}
