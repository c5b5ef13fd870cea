package middleware

import (
	"net/http"
	"strings"

	"fitness_admin_backend/internal/session"
	"fitness_admin_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ContextUsername is the context key the session middleware sets for
// downstream handlers.
const ContextUsername = "username"

// RequireSession guards API routes. The session token is taken from the
// Authorization header (Bearer) or, failing that, the session cookie. Expiry
// is checked lazily on every request.
func RequireSession(codec session.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		manager := session.NewManager(codec, requestStore(c))
		username, ok := manager.CurrentUser()
		if !ok {
			utils.RespondError(c, http.StatusUnauthorized, utils.MsgUnauthorized)
			return
		}
		c.Set(ContextUsername, username)
		c.Next()
	}
}

// PageGuard protects the admin pages: an unauthenticated load is redirected
// to the login page before any protected content renders.
func PageGuard(codec session.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		manager := session.NewManager(codec, session.NewCookieStore(c))
		username, ok := manager.CurrentUser()
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Set(ContextUsername, username)
		c.Next()
	}
}

// requestStore reads the token from the Authorization header when present,
// falling back to the cookie jar. Writes and clears always target the cookie.
func requestStore(c *gin.Context) session.Store {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return &headerStore{token: parts[1], cookies: session.NewCookieStore(c)}
		}
	}
	return session.NewCookieStore(c)
}

type headerStore struct {
	token   string
	cookies *session.CookieStore
}

func (s *headerStore) Read() (string, bool) { return s.token, s.token != "" }
func (s *headerStore) Write(token string)   { s.cookies.Write(token) }
func (s *headerStore) Clear()               { s.cookies.Clear() }
