package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vaibhav/lifehub-api/internal/middleware"
	"github.com/vaibhav/lifehub-api/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type verifyRequest struct {
	PIN string `json:"pin" binding:"required"`
}

// @Summary Verify PIN
// @Description Verify the dashboard PIN and open a session
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body verifyRequest true "PIN"
// @Success 200 {object} services.VerifyResult
// @Failure 401 {object} map[string]string
// @Router /auth/verify [post]
func (h *AuthHandler) Verify(c *gin.Context) {
	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "pin is required"})
		return
	}

	result, err := h.authService.VerifyPIN(c.Request.Context(), req.PIN)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// @Summary Logout
// @Description Revoke the current session
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	token := middleware.GetSessionToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no active session"})
		return
	}

	if err := h.authService.Logout(c.Request.Context(), token); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
