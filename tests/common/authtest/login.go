//go:build unit || e2e

package authtest

import (
	"encoding/json"
	"net/http"
	"testing"

	"storefront/internal/handler/dto/request"
	"storefront/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func LoginAdmin(t *testing.T, router *gin.Engine, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/admin/auth",
		request.AdminLoginRequest{Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Token, "token missing from login response")

	return body.Token
}
