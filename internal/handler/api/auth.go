package api

import (
	"net/http"

	reqdto "voucher-hub/internal/handler/dto/request"
	resdto "voucher-hub/internal/handler/dto/response"
	"voucher-hub/internal/handler/httperr"
	"voucher-hub/internal/pkg/cookie"
	"voucher-hub/internal/pkg/jwt"
	"voucher-hub/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds       commands.AuthCommands
	jwtService *jwt.Service
}

func NewAuthHandler(cmds commands.AuthCommands, jwtService *jwt.Service) *AuthHandler {
	return &AuthHandler{cmds: cmds, jwtService: jwtService}
}

// @Summary Login
// @Description Exchange the operator password for an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req.Password)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Login failed")
		return
	}

	cookie.SetAuthCookie(c, result.AccessToken, h.jwtService.TokenDuration())
	c.JSON(http.StatusOK, resdto.LoginResponse{AccessToken: result.AccessToken})
}

// @Summary Logout
// @Description Clear the auth cookie
// @Tags auth
// @Success 204 "No Content"
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAuthCookie(c)
	c.Status(http.StatusNoContent)
}

// @Summary Current identity
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.MeResponse
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.MeResponse{Subject: jwt.SubjectAdmin})
}
