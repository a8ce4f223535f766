package api

import (
	"log/slog"
	"net/http"

	reqdto "storefront/internal/handler/dto/request"
	resdto "storefront/internal/handler/dto/response"
	"storefront/internal/handler/httperr"
	"storefront/internal/pkg/config"
	"storefront/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	cmds  commands.CheckoutCommands
	store config.StoreConfig
}

func NewCheckoutHandler(cmds commands.CheckoutCommands, cfg config.Config) *CheckoutHandler {
	return &CheckoutHandler{cmds: cmds, store: cfg.Store}
}

// @Summary Checkout
// @Description Turns the cart into an order and returns the WhatsApp deep link
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.CheckoutRequest true "Customer contact"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /checkout [post]
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	sessionID, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Checkout(c.Request.Context(), sessionID, req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	if result.Replayed {
		slog.Info("checkout replayed", "order_number", result.Order.Number(), "session_id", sessionID)
	}
	c.JSON(http.StatusOK, resdto.FromCheckout(result))
}

// @Summary WhatsApp number
// @Description Returns the merchant number used by the storefront contact links
// @Tags config
// @Produce json
// @Success 200 {object} resdto.WhatsAppConfigResponse
// @Router /config/whatsapp [get]
func (h *CheckoutHandler) WhatsAppConfig(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.WhatsAppConfigResponse{Number: h.store.WhatsAppNumber})
}
