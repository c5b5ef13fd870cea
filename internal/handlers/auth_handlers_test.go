package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fitness_admin_backend/internal/services"
	"fitness_admin_backend/internal/session"

	"github.com/gin-gonic/gin"
)

type stubAuthService struct {
	username string
	err      error
	lastUser string
	lastPass string
}

func (s *stubAuthService) Login(username, password string) (string, error) {
	s.lastUser = username
	s.lastPass = password
	return s.username, s.err
}

func newAuthRouter(service services.AuthService) *gin.Engine {
	engine := gin.New()
	handler := NewAuthHandler(service, session.NewJWTCodec("test-secret"))
	engine.POST("/api/auth/login", handler.Login)
	engine.POST("/api/auth/logout", handler.Logout)
	return engine
}

func TestLoginSetsSessionAndReturnsUsername(t *testing.T) {
	service := &stubAuthService{username: "admin"}
	engine := newAuthRouter(service)

	body := []byte(`{"username":"admin","password":"s3cret"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	var resp struct {
		Success  bool   `json:"success"`
		Username string `json:"username"`
		Token    string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !resp.Success || resp.Username != "admin" {
		t.Errorf("unexpected response: %+v", resp)
	}
	if resp.Token == "" {
		t.Error("expected a session token in the response")
	}

	cookie := rec.Header().Get("Set-Cookie")
	if !strings.Contains(cookie, session.CookieName+"=") {
		t.Errorf("expected session cookie to be set, got %q", cookie)
	}

	rec2, err := session.NewJWTCodec("test-secret").Decode(resp.Token)
	if err != nil {
		t.Fatalf("returned token does not verify: %v", err)
	}
	if rec2.Username != "admin" {
		t.Errorf("token carries username %q, want admin", rec2.Username)
	}
}

func TestLoginNeverEchoesPassword(t *testing.T) {
	engine := newAuthRouter(&stubAuthService{username: "admin"})

	body := []byte(`{"username":"admin","password":"hunter2-password"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if strings.Contains(rec.Body.String(), "hunter2-password") {
		t.Error("response leaks the submitted password")
	}
}

func TestLoginInvalidCredentialsIs401Generic(t *testing.T) {
	engine := newAuthRouter(&stubAuthService{err: services.ErrInvalidCredentials})

	body := []byte(`{"username":"admin","password":"wrong"}`)
	rec, env := doJSON(t, engine, http.MethodPost, "/api/auth/login", body)
	if rec.Code != http.StatusUnauthorized || env.Success {
		t.Fatalf("expected 401 failure, got %d %+v", rec.Code, env)
	}
	if env.Error != services.ErrInvalidCredentials.Error() {
		t.Errorf("expected the generic credentials message, got %q", env.Error)
	}
}

func TestLoginMissingFieldsIs400(t *testing.T) {
	engine := newAuthRouter(&stubAuthService{err: services.ErrMissingCredentials})

	rec, env := doJSON(t, engine, http.MethodPost, "/api/auth/login", []byte(`{"username":"admin"}`))
	if rec.Code != http.StatusBadRequest || env.Success {
		t.Fatalf("expected 400 failure, got %d %+v", rec.Code, env)
	}
}

func TestLoginMalformedBodyIs400(t *testing.T) {
	engine := newAuthRouter(&stubAuthService{})

	rec, env := doJSON(t, engine, http.MethodPost, "/api/auth/login", []byte(`{not json`))
	if rec.Code != http.StatusBadRequest || env.Success {
		t.Fatalf("expected 400 failure, got %d %+v", rec.Code, env)
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	engine := newAuthRouter(&stubAuthService{})

	rec, env := doJSON(t, engine, http.MethodPost, "/api/auth/logout", nil)
	if rec.Code != http.StatusOK || !env.Success {
		t.Fatalf("expected 200 success, got %d %+v", rec.Code, env)
	}
	cookie := rec.Header().Get("Set-Cookie")
	if !strings.Contains(cookie, session.CookieName+"=") || !strings.Contains(cookie, "Max-Age=0") {
		t.Errorf("expected the session cookie to be expired, got %q", cookie)
	}
}
