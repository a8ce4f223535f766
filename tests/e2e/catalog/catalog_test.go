//go:build e2e

package catalog_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"storefront/internal/handler/dto/request"
	"storefront/internal/handler/dto/response"
	"storefront/tests/common/authtest"
	"storefront/tests/common/builder"
	"storefront/tests/common/dbtest"
	"storefront/tests/common/httptest"
	"storefront/tests/e2e"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL      = "/api/admin/auth"
	productsURL   = "/api/products"
	categoriesURL = "/api/categories"
	seedURL       = "/api/categories/seed"
	statsURL      = "/api/admin/stats"
)

type catalogSuite struct {
	e2e.SharedSuite
}

func TestCatalogSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(catalogSuite))
}

func (s *catalogSuite) TestAdminLogin() {
	s.Run("wrong password is rejected", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
			request.AdminLoginRequest{Password: "nope"}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "invalid password")
	})

	s.Run("missing password is a bad request", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Password is required")
	})

	s.Run("issued token opens admin routes", func() {
		token := authtest.LoginAdmin(s.T(), s.Router, e2e.AdminPassword)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, statsURL, nil, token)
		var stats response.StatsResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &stats)
		assert.Zero(s.T(), stats.Total)
	})

	s.Run("admin routes refuse anonymous and expired callers", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, statsURL, nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Access token required")

		expired := authtest.NewJWTHelper(s.Config.JWT).CreateExpiredToken(s.T())
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, statsURL, nil, expired)
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func (s *catalogSuite) TestProductLifecycle() {
	s.Run("create, list, fetch by slug, update and delete", func() {
		token := authtest.LoginAdmin(s.T(), s.Router, e2e.AdminPassword)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, productsURL,
			builder.NewProductBuilder().WithFeatured(true).BuildRequestDTO(), token)
		var created response.ProductEnvelope
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &created)
		require.NotNil(s.T(), created.Product)
		assert.Equal(s.T(), "maio-tropical", created.Product.Slug)
		assert.Equal(s.T(), "189.9", created.Product.Price.String())

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, productsURL+"?featured=true", nil, "")
		var list response.ProductListResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &list)
		require.Len(s.T(), list.Products, 1)
		assert.Equal(s.T(), int64(1), list.Pagination.Total)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, productsURL+"/maio-tropical", nil, "")
		var fetched response.ProductEnvelope
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &fetched)
		assert.Equal(s.T(), created.Product.ID, fetched.Product.ID)

		inStock := false
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPut, productsURL+"/"+created.Product.ID,
			request.ProductRequest{InStock: &inStock}, token)
		var updated response.ProductEnvelope
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &updated)
		assert.False(s.T(), updated.Product.InStock)
		assert.Equal(s.T(), "Maiô Tropical", updated.Product.Name)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, productsURL+"/"+created.Product.ID, nil, token)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, nil)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, productsURL+"/"+created.Product.ID, nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "product not found")
	})

	s.Run("anonymous create is rejected", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, productsURL,
			builder.NewProductBuilder().BuildRequestDTO(), "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "")
		assert.Zero(s.T(), dbtest.CountRows(s.T(), s.DB, "products"))
	})
}

func (s *catalogSuite) TestCategories() {
	s.Run("seed runs once", func() {
		token := authtest.LoginAdmin(s.T(), s.Router, e2e.AdminPassword)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, seedURL, nil, token)
		var seeded response.SeedResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &seeded)
		assert.Positive(s.T(), seeded.Created)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, seedURL, nil, token)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &seeded)
		assert.Zero(s.T(), seeded.Created)
	})

	s.Run("duplicate name conflicts", func() {
		dbtest.CreateTestCategory(s.T(), s.DB, "Biquínis", 1)
		token := authtest.LoginAdmin(s.T(), s.Router, e2e.AdminPassword)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, categoriesURL,
			map[string]any{"name": "Biquínis"}, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "already exists")
	})

	s.Run("public listing is ordered", func() {
		dbtest.CreateTestCategory(s.T(), s.DB, "Saídas de Praia", 2)
		dbtest.CreateTestCategory(s.T(), s.DB, "Biquínis", 1)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, categoriesURL, nil, "")
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

		var body response.CategoryListResponse
		require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &body))
		require.Len(s.T(), body.Categories, 2)
		assert.Equal(s.T(), "biquinis", body.Categories[0].Slug)
	})
}
