package api

import (
	"net/http"
	"strconv"

	reqdto "storefront/internal/handler/dto/request"
	resdto "storefront/internal/handler/dto/response"
	"storefront/internal/handler/httperr"
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CategoryHandler struct {
	cmds commands.CatalogCommands
	q    queries.CategoryQueries
}

func NewCategoryHandler(cmds commands.CatalogCommands, q queries.CategoryQueries) *CategoryHandler {
	return &CategoryHandler{cmds: cmds, q: q}
}

// @Summary List categories
// @Description Active categories ordered for the storefront menu
// @Tags categories
// @Produce json
// @Param all query bool false "Include inactive categories"
// @Success 200 {object} resdto.CategoryListResponse
// @Failure 500 {object} httperr.Response
// @Router /categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	all, _ := strconv.ParseBool(c.Query("all"))
	cats, err := h.q.List(c.Request.Context(), all)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.CategoryListResponse{Categories: resdto.FromCategories(cats)})
}

// @Summary Create category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCategoryRequest true "Category"
// @Success 201 {object} resdto.CategoryEnvelope
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req reqdto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Name is required", nil)
		return
	}
	cat, err := h.cmds.CreateCategory(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CategoryEnvelope{Category: resdto.FromCategory(cat), Message: "Category created"})
}

// @Summary Update category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Param request body reqdto.UpdateCategoryRequest true "Fields to change"
// @Success 200 {object} resdto.CategoryEnvelope
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /categories/{id} [put]
func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.UpdateCategoryRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	cat, err := h.cmds.UpdateCategory(c.Request.Context(), id, req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.CategoryEnvelope{Category: resdto.FromCategory(cat), Message: "Category updated"})
}

// @Summary Delete category
// @Description Refused while products still reference the category
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.DeleteCategory(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Category deleted"})
}

// @Summary Seed categories
// @Description Inserts the default categories when none exist
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SeedResponse
// @Success 201 {object} resdto.SeedResponse
// @Failure 401 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /categories/seed [post]
func (h *CategoryHandler) Seed(c *gin.Context) {
	created, err := h.cmds.SeedCategories(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	if created == 0 {
		c.JSON(http.StatusOK, resdto.SeedResponse{Message: "Categories already exist"})
		return
	}
	c.JSON(http.StatusCreated, resdto.SeedResponse{Created: created, Message: "Categories seeded"})
}
