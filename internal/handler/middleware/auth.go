package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"storefront/internal/handler/httperr"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase"

	"github.com/gin-gonic/gin"
)

const ctxAdminSubjectKey = "admin_subject"

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAdmin guards the admin console routes with a bearer token.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthorized, "Access token required", nil)
			return
		}

		subject, err := m.tokenValidator.ValidateAdmin(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxAdminSubjectKey, subject)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

func GetAdminSubject(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxAdminSubjectKey)
	if !exists {
		return "", false
	}
	subject, ok := v.(string)
	return subject, ok
}
