package api

import (
	"net/http"

	reqdto "storefront/internal/handler/dto/request"
	resdto "storefront/internal/handler/dto/response"
	"storefront/internal/handler/httperr"
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProductHandler struct {
	cmds commands.CatalogCommands
	q    queries.ProductQueries
}

func NewProductHandler(cmds commands.CatalogCommands, q queries.ProductQueries) *ProductHandler {
	return &ProductHandler{cmds: cmds, q: q}
}

// @Summary List products
// @Description Paginated product listing with optional filters
// @Tags products
// @Produce json
// @Param category query string false "Category slug"
// @Param featured query bool false "Featured only"
// @Param search query string false "Matches name or tags"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 50, max 100)"
// @Success 200 {object} resdto.ProductListResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	var req reqdto.ProductListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	page, err := h.q.List(c.Request.Context(), req.ToFilter())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProductPage(page))
}

// @Summary Get product
// @Description Get a product by id or slug
// @Tags products
// @Produce json
// @Param id path string true "Product ID or slug"
// @Success 200 {object} resdto.ProductEnvelope
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /products/{id} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	p, err := h.q.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ProductEnvelope{Product: resdto.FromProduct(p)})
}

// @Summary Create product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ProductRequest true "Product"
// @Success 201 {object} resdto.ProductEnvelope
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req reqdto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	p, err := h.cmds.CreateProduct(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.ProductEnvelope{Product: resdto.FromProduct(p), Message: "Product created"})
}

// @Summary Update product
// @Description Partial update; absent fields are left unchanged
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body reqdto.ProductRequest true "Fields to change"
// @Success 200 {object} resdto.ProductEnvelope
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /products/{id} [put]
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.ProductRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	p, err := h.cmds.UpdateProduct(c.Request.Context(), id, req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ProductEnvelope{Product: resdto.FromProduct(p), Message: "Product updated"})
}

// @Summary Delete product
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /products/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.DeleteProduct(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Product deleted"})
}

// @Summary Catalog stats
// @Description Product counters for the admin dashboard
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.StatsResponse
// @Failure 401 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /admin/stats [get]
func (h *ProductHandler) Stats(c *gin.Context) {
	stats, err := h.q.Stats(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStats(stats))
}
