//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"storefront/internal/handler/middleware"
	"storefront/internal/pkg/config"
	"storefront/internal/pkg/errs"
	"storefront/tests/common/authtest"
	"storefront/tests/common/httptest"
	usecasemock "storefront/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRequireAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	token := authtest.NewJWTHelper(config.NewTestConfig().JWT).AdminToken(t)

	tests := []struct {
		name       string
		token      string
		setup      func(v *usecasemock.MockTokenValidator)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "no token",
			token:      "",
			setup:      func(_ *usecasemock.MockTokenValidator) {},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Access token required",
		},
		{
			name:  "rejected token",
			token: "garbage",
			setup: func(v *usecasemock.MockTokenValidator) {
				v.EXPECT().ValidateAdmin("garbage").Return("", errs.ErrUnauthorized)
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Invalid or expired token",
		},
		{
			name:  "admin token",
			token: token,
			setup: func(v *usecasemock.MockTokenValidator) {
				v.EXPECT().ValidateAdmin(token).Return("admin", nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   "admin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			validator := usecasemock.NewMockTokenValidator(ctrl)
			tt.setup(validator)

			r := gin.New()
			r.GET("/admin", middleware.NewAuthMiddleware(validator).RequireAdmin(), func(c *gin.Context) {
				subject, _ := middleware.GetAdminSubject(c)
				c.String(http.StatusOK, subject)
			})

			rec := httptest.PerformRequest(t, r, http.MethodGet, "/admin", nil, tt.token)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
