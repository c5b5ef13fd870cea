package services

import (
	"errors"
	"testing"

	"fitness_admin_backend/internal/models"
	"fitness_admin_backend/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

type stubAdminRepo struct {
	users   map[string]models.AdminUser
	lookups []string
	err     error
}

func (r *stubAdminRepo) GetAdminUserByUsername(username string) (*models.AdminUser, error) {
	r.lookups = append(r.lookups, username)
	if r.err != nil {
		return nil, r.err
	}
	user, ok := r.users[username]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := user
	return &copied, nil
}

func newStubAdminRepo(t *testing.T, username, password string) *stubAdminRepo {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return &stubAdminRepo{users: map[string]models.AdminUser{
		username: {ID: "admin-1", Username: username, PasswordHash: string(hash)},
	}}
}

func TestLoginSucceedsAndTrimsInput(t *testing.T) {
	repo := newStubAdminRepo(t, "admin", "s3cret")
	service := NewAuthService(repo)

	username, err := service.Login("  admin  ", "  s3cret  ")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if username != "admin" {
		t.Errorf("expected username admin, got %q", username)
	}
	if len(repo.lookups) != 1 || repo.lookups[0] != "admin" {
		t.Errorf("expected lookup with trimmed username, got %v", repo.lookups)
	}
}

func TestLoginFailureMessagesDoNotLeakAccountExistence(t *testing.T) {
	repo := newStubAdminRepo(t, "admin", "s3cret")
	service := NewAuthService(repo)

	_, wrongPassword := service.Login("admin", "nope")
	_, unknownUser := service.Login("ghost", "nope")

	if !errors.Is(wrongPassword, ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPassword)
	}
	if !errors.Is(unknownUser, ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", unknownUser)
	}
	if wrongPassword.Error() != unknownUser.Error() {
		t.Errorf("failure messages differ: %q vs %q", wrongPassword.Error(), unknownUser.Error())
	}
}

func TestLoginRejectsMissingFields(t *testing.T) {
	service := NewAuthService(&stubAdminRepo{users: map[string]models.AdminUser{}})

	cases := [][2]string{{"", "pw"}, {"admin", ""}, {"   ", "   "}}
	for _, c := range cases {
		if _, err := service.Login(c[0], c[1]); !errors.Is(err, ErrMissingCredentials) {
			t.Errorf("Login(%q, %q): expected ErrMissingCredentials, got %v", c[0], c[1], err)
		}
	}
}

func TestLoginWrapsStoreErrors(t *testing.T) {
	repo := &stubAdminRepo{err: repositories.ErrDatabaseError}
	service := NewAuthService(repo)

	_, err := service.Login("admin", "pw")
	if errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("store failure must not masquerade as bad credentials: %v", err)
	}
	if !errors.Is(err, repositories.ErrDatabaseError) {
		t.Errorf("expected wrapped database error, got %v", err)
	}
}
