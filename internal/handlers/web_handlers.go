package handlers

import (
	"net/http"

	"fitness_admin_backend/internal/middleware"
	"fitness_admin_backend/internal/session"

	"github.com/gin-gonic/gin"
)

// WebHandler serves the server-rendered admin pages.
type WebHandler struct {
	codec session.Codec
}

// NewWebHandler creates a new WebHandler.
func NewWebHandler(codec session.Codec) *WebHandler {
	return &WebHandler{codec: codec}
}

// Root sends visitors to the admin dashboard; the page guard bounces
// unauthenticated ones to /login from there.
func (h *WebHandler) Root(c *gin.Context) {
	c.Redirect(http.StatusFound, "/admin")
}

// LoginPage renders the login form. A still-valid session skips it.
func (h *WebHandler) LoginPage(c *gin.Context) {
	manager := session.NewManager(h.codec, session.NewCookieStore(c))
	if manager.IsValid() {
		c.Redirect(http.StatusFound, "/admin")
		return
	}
	c.HTML(http.StatusOK, "login", gin.H{})
}

// Dashboard renders the aggregate statistics page.
func (h *WebHandler) Dashboard(c *gin.Context) {
	c.HTML(http.StatusOK, "dashboard", gin.H{
		"Username": c.GetString(middleware.ContextUsername),
		"Active":   "dashboard",
	})
}

// Clients renders the client list and forms.
func (h *WebHandler) Clients(c *gin.Context) {
	c.HTML(http.StatusOK, "clients", gin.H{
		"Username": c.GetString(middleware.ContextUsername),
		"Active":   "clients",
	})
}

// Coaches renders the coach list and forms.
func (h *WebHandler) Coaches(c *gin.Context) {
	c.HTML(http.StatusOK, "coaches", gin.H{
		"Username": c.GetString(middleware.ContextUsername),
		"Active":   "coaches",
	})
}
