package handlers

import (
	"errors"
	"net/http"

	"fitness_admin_backend/internal/models"
	"fitness_admin_backend/internal/services"
	"fitness_admin_backend/internal/session"
	"fitness_admin_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler holds the authentication service and the session codec.
type AuthHandler struct {
	authService services.AuthService
	codec       session.Codec
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as services.AuthService, codec session.Codec) *AuthHandler {
	return &AuthHandler{authService: as, codec: codec}
}

// Login verifies staff credentials and establishes a session. The failure
// message is identical for an unknown username and a wrong password.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.Credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "Login: Failed to bind JSON")
		utils.RespondError(c, http.StatusBadRequest, "username and password are required")
		return
	}

	username, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingCredentials):
			utils.RespondError(c, http.StatusBadRequest, services.ErrMissingCredentials.Error())
		case errors.Is(err, services.ErrInvalidCredentials):
			utils.RespondError(c, http.StatusUnauthorized, services.ErrInvalidCredentials.Error())
		default:
			utils.LogError(err, "Login: Error from authService.Login")
			utils.RespondError(c, http.StatusInternalServerError, utils.MsgInternalError)
		}
		return
	}

	manager := session.NewManager(h.codec, session.NewCookieStore(c))
	token, err := manager.Establish(username)
	if err != nil {
		utils.LogError(err, "Login: Failed to establish session")
		utils.RespondError(c, http.StatusInternalServerError, utils.MsgInternalError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "username": username, "token": token})
}

// Logout clears the session cookie. Always succeeds.
func (h *AuthHandler) Logout(c *gin.Context) {
	session.NewManager(h.codec, session.NewCookieStore(c)).Clear()
	utils.RespondOK(c)
}
