package session

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CookieStore keeps the session token in an HttpOnly cookie scoped to the
// current request.
type CookieStore struct {
	c *gin.Context
}

// NewCookieStore wraps the request's cookie jar as a session Store.
func NewCookieStore(c *gin.Context) *CookieStore {
	return &CookieStore{c: c}
}

func (s *CookieStore) Read() (string, bool) {
	token, err := s.c.Cookie(CookieName)
	if err != nil {
		return "", false
	}
	return token, true
}

func (s *CookieStore) Write(token string) {
	s.c.SetSameSite(http.SameSiteLaxMode)
	s.c.SetCookie(CookieName, token, int(TTL.Seconds()), "/", "", false, true)
}

func (s *CookieStore) Clear() {
	s.c.SetCookie(CookieName, "", -1, "/", "", false, true)
}

var _ Store = (*CookieStore)(nil)
