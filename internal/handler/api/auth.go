package api

import (
	"net/http"

	reqdto "storefront/internal/handler/dto/request"
	resdto "storefront/internal/handler/dto/response"
	"storefront/internal/handler/httperr"
	"storefront/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds commands.AuthCommands
}

func NewAuthHandler(cmds commands.AuthCommands) *AuthHandler {
	return &AuthHandler{cmds: cmds}
}

// @Summary Admin login
// @Description Exchanges the admin password for a bearer token
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.AdminLoginRequest true "Admin password"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /admin/auth [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Password is required", nil)
		return
	}
	result, err := h.cmds.AdminLogin(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.LoginResponse{
		Success: true,
		Token:   result.Token,
		Message: "Login successful",
	})
}
