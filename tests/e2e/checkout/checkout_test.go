//go:build e2e

package checkout_test

import (
	"net/http"
	"strings"
	"testing"

	"storefront/internal/handler/dto/request"
	"storefront/internal/handler/dto/response"
	"storefront/internal/pkg/cookie"
	"storefront/tests/common/authtest"
	"storefront/tests/common/builder"
	"storefront/tests/common/dbtest"
	"storefront/tests/common/httptest"
	"storefront/tests/e2e"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	cartURL     = "/api/cart"
	checkoutURL = "/api/checkout"
	whatsappURL = "/api/config/whatsapp"
)

type checkoutSuite struct {
	e2e.SharedSuite
}

func TestCheckoutSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(checkoutSuite))
}

func (s *checkoutSuite) createProduct(b *builder.ProductBuilder) *response.ProductResponse {
	token := authtest.LoginAdmin(s.T(), s.Router, e2e.AdminPassword)
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/products", b.BuildRequestDTO(), token)
	var created response.ProductEnvelope
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &created)
	require.NotNil(s.T(), created.Product)
	return created.Product
}

func addRequest(productID, size string, qty int) request.AddCartItemRequest {
	price := decimal.RequireFromString("1.00")
	return request.AddCartItemRequest{
		ProductID: productID,
		Name:      "client supplied name",
		Price:     &price,
		Size:      size,
		Quantity:  &qty,
	}
}

func (s *checkoutSuite) TestCart() {
	s.Run("first request issues a session cookie and an empty cart", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, cartURL, nil, "")
		var body response.CartResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)

		session := httptest.ExtractCookie(w, cookie.SessionCookieName)
		require.NotNil(s.T(), session)
		assert.Equal(s.T(), session.Value, body.Cart.SessionID)
		assert.Empty(s.T(), body.Cart.Items)
		assert.Zero(s.T(), body.ItemCount)
	})

	s.Run("adding merges variants and prices come from the catalog", func() {
		p := s.createProduct(builder.NewProductBuilder())

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, cartURL, addRequest(p.ID, "M", 1), "")
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())
		cookies := httptest.ExtractCookies(w)

		w = httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodPost, cartURL, addRequest(p.ID, "M", 2), cookies, "")
		var body response.CartResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)

		require.Len(s.T(), body.Cart.Items, 1)
		item := body.Cart.Items[0]
		assert.Equal(s.T(), 3, item.Quantity)
		assert.Equal(s.T(), "Maiô Tropical", item.Name)
		assert.Equal(s.T(), "189.9", item.Price.String())
		assert.Equal(s.T(), 3, body.ItemCount)
	})

	s.Run("out of stock product cannot be added", func() {
		p := s.createProduct(builder.NewProductBuilder().WithName("Biquíni Esgotado").WithInStock(false))

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, cartURL, addRequest(p.ID, "", 1), "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "out of stock")
	})

	s.Run("quantity update and removal", func() {
		p := s.createProduct(builder.NewProductBuilder())
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, cartURL, addRequest(p.ID, "G", 1), "")
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())
		cookies := httptest.ExtractCookies(w)

		qty := 4
		w = httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodPut, cartURL,
			request.UpdateCartItemRequest{ProductID: p.ID, Size: "G", Quantity: &qty}, cookies, "")
		var body response.CartResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
		assert.Equal(s.T(), 4, body.ItemCount)

		w = httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodDelete, cartURL,
			request.RemoveCartItemRequest{ProductID: p.ID, Size: "G"}, cookies, "")
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
		assert.Empty(s.T(), body.Cart.Items)
	})
}

func (s *checkoutSuite) TestCheckout() {
	s.Run("places an order, queues notifications and clears the cart", func() {
		p := s.createProduct(builder.NewProductBuilder())
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, cartURL, addRequest(p.ID, "P", 2), "")
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())
		cookies := httptest.ExtractCookies(w)

		w = httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodPost, checkoutURL, request.CheckoutRequest{
			CustomerName:  "Maria Silva",
			CustomerPhone: "71999990000",
			Notes:         "Entregar à tarde",
		}, cookies, "")
		var placed response.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &placed)

		assert.True(s.T(), strings.HasPrefix(placed.Order.OrderNumber, s.Config.Store.OrderNumberPrefix+"-"))
		assert.Equal(s.T(), "379.8", placed.Order.Subtotal.String())
		assert.True(s.T(), strings.HasPrefix(placed.WhatsAppURL, "https://wa.me/"+s.Config.Store.WhatsAppNumber+"?text="))

		assert.Equal(s.T(), 1, dbtest.CountRows(s.T(), s.DB, "orders"))
		assert.Equal(s.T(), 1, dbtest.CountRows(s.T(), s.DB, "order_items"))
		assert.Equal(s.T(), 1, dbtest.CountRows(s.T(), s.DB, "checkout_attempts"))
		assert.Positive(s.T(), dbtest.CountRows(s.T(), s.DB, "notification_jobs"))

		w = httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodGet, cartURL, nil, cookies, "")
		var cart response.CartResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &cart)
		assert.Empty(s.T(), cart.Cart.Items)

		w = httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodPost, checkoutURL, request.CheckoutRequest{
			CustomerName:  "Maria Silva",
			CustomerPhone: "71999990000",
		}, cookies, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "cart is empty")
		assert.Equal(s.T(), 1, dbtest.CountRows(s.T(), s.DB, "orders"))
	})

	s.Run("missing customer data is rejected before touching the database", func() {
		p := s.createProduct(builder.NewProductBuilder())
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, cartURL, addRequest(p.ID, "", 1), "")
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodPost, checkoutURL,
			request.CheckoutRequest{CustomerPhone: "71999990000"}, httptest.ExtractCookies(w), "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "customer name is required")
		assert.Zero(s.T(), dbtest.CountRows(s.T(), s.DB, "orders"))
	})

	s.Run("whatsapp number is public", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, whatsappURL, nil, "")
		var cfg response.WhatsAppConfigResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &cfg)
		httptest.AssertHeaders(s.T(), w, map[string]string{"Content-Type": "application/json; charset=utf-8"})
		assert.Equal(s.T(), s.Config.Store.WhatsAppNumber, cfg.Number)
	})
}
