package models

// AdminUser is a staff account allowed into the admin panel. Accounts are
// provisioned directly in the database; no endpoint creates or mutates them.
type AdminUser struct {
	ID           string `json:"id" db:"id"`
	Username     string `json:"username" db:"username"`
	PasswordHash string `json:"-" db:"password_hash"` // never serialized
}

// Credentials is the login request body.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
