package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hackfest/internal/middleware"
	"hackfest/internal/service"
)

// AuthHandler handles admin sign-in and identity endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// GoogleLogin handles POST /api/v1/auth/google
// @Summary Sign in with a Google ID token
// @Description Verifies a Google ID token and issues an admin session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body GoogleLoginRequest true "Google ID token"
// @Success 200 {object} APIResponse{data=service.Session} "Session issued"
// @Failure 401 {object} APIResponse "Invalid ID token"
// @Router /auth/google [post]
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	var req GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "id_token is required")
		return
	}

	session, err := h.authService.LoginWithGoogle(c.Request.Context(), req.IDToken)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, session)
}

// Me handles GET /api/v1/auth/me
// @Summary Current identity
// @Description Returns the signed-in identity and whether it is on the admin allow-list
// @Tags auth
// @Produce json
// @Success 200 {object} APIResponse{data=MeResponse}
// @Failure 401 {object} APIResponse "Missing or invalid session"
// @Security BearerAuth
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing identity context")
		return
	}
	RespondOK(c, MeResponse{
		Email:      claims.Email,
		Name:       claims.Name,
		Authorized: h.authService.Authorized(claims.Email),
	})
}
