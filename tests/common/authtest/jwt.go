//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"storefront/internal/pkg/config"
	"storefront/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, role string) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg.Secret, duration).GenerateToken("admin", role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) AdminToken(t *testing.T) string {
	t.Helper()
	return h.GenerateToken(t, jwt.RoleAdmin)
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, -time.Minute).GenerateToken("admin", jwt.RoleAdmin)
	require.NoError(t, err)
	return token
}
