package api

import (
	"net/http"

	reqdto "storefront/internal/handler/dto/request"
	resdto "storefront/internal/handler/dto/response"
	"storefront/internal/handler/httperr"
	"storefront/internal/handler/middleware"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errNoSession = errs.New("session id missing from context")

type CartHandler struct {
	cmds commands.CartCommands
	q    queries.CartQueries
}

func NewCartHandler(cmds commands.CartCommands, q queries.CartQueries) *CartHandler {
	return &CartHandler{cmds: cmds, q: q}
}

// @Summary Get cart
// @Description Returns the visitor's cart, empty when none exists yet
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.CartResponse
// @Failure 500 {object} httperr.Response
// @Router /cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	sessionID, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	crt, err := h.q.Get(c.Request.Context(), sessionID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCart(crt, ""))
}

// @Summary Add item to cart
// @Description Adds a product variant; an existing line only gains quantity
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.AddCartItemRequest true "Item to add"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /cart [post]
func (h *CartHandler) Add(c *gin.Context) {
	sessionID, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	var req reqdto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	crt, err := h.cmds.Add(c.Request.Context(), sessionID, req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCart(crt, "Item added to cart"))
}

// @Summary Update item quantity
// @Description Sets the quantity of an exact variant line; zero or less removes it
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.UpdateCartItemRequest true "Variant and quantity"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /cart [put]
func (h *CartHandler) Update(c *gin.Context) {
	sessionID, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	var req reqdto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	crt, err := h.cmds.SetQuantity(c.Request.Context(), sessionID, req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCart(crt, "Cart updated"))
}

// @Summary Remove item from cart
// @Description Removes an exact variant line; succeeds when nothing matched
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.RemoveCartItemRequest true "Variant to remove"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /cart [delete]
func (h *CartHandler) Remove(c *gin.Context) {
	sessionID, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	var req reqdto.RemoveCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	crt, err := h.cmds.Remove(c.Request.Context(), sessionID, req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCart(crt, "Item removed from cart"))
}

func sessionOrAbort(c *gin.Context) (string, bool) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		// route registered outside the session group
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoSession, httperr.InternalMessage, nil)
		return "", false
	}
	return sessionID, true
}
