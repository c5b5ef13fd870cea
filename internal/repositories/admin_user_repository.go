package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"fitness_admin_backend/internal/models"
)

// AdminUserRepository reads staff accounts. The table is read-only from the
// application's perspective; accounts are provisioned directly in the store.
type AdminUserRepository interface {
	GetAdminUserByUsername(username string) (*models.AdminUser, error)
}

type adminUserRepository struct {
	db *sql.DB
}

// NewAdminUserRepository creates a new instance of AdminUserRepository.
func NewAdminUserRepository(db *sql.DB) AdminUserRepository {
	return &adminUserRepository{db: db}
}

// GetAdminUserByUsername retrieves a staff account by its unique username.
func (r *adminUserRepository) GetAdminUserByUsername(username string) (*models.AdminUser, error) {
	user := &models.AdminUser{}
	query := `SELECT id, username, password_hash FROM admin_users WHERE username = $1`

	err := r.db.QueryRow(query, username).Scan(&user.ID, &user.Username, &user.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting admin user %s: %v", ErrDatabaseError, username, err)
	}
	return user, nil
}
