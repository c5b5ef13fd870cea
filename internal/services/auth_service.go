package services

import (
	"errors"
	"fmt"
	"strings"

	"fitness_admin_backend/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// --- Custom Service Errors for Auth ---
var (
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password, so the two cases are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrMissingCredentials = errors.New("username and password are required")
)

// AuthService verifies staff credentials against the admin_users table.
type AuthService interface {
	Login(username, password string) (string, error)
}

type authService struct {
	adminRepo repositories.AdminUserRepository
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(adminRepo repositories.AdminUserRepository) AuthService {
	return &authService{adminRepo: adminRepo}
}

// Login trims both fields, matches the username and verifies the bcrypt
// password hash. On success it returns the matched username; the password
// hash never leaves this layer.
func (s *authService) Login(username, password string) (string, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return "", ErrMissingCredentials
	}

	user, err := s.adminRepo.GetAdminUserByUsername(username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to look up admin user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return user.Username, nil
}
