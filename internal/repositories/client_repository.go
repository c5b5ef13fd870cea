package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"fitness_admin_backend/internal/models"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ClientRepository defines client-related database operations.
type ClientRepository interface {
	CreateClient(executor SQLExecutor, client *models.Client) (string, error)
	GetClientByID(id string) (*models.Client, error)
	GetClients() ([]models.Client, error)
	UpdateClient(executor SQLExecutor, client *models.Client) error
	DeleteClient(executor SQLExecutor, id string) error
}

type clientRepository struct {
	db *sql.DB
}

// NewClientRepository creates a new instance of ClientRepository.
func NewClientRepository(db *sql.DB) ClientRepository {
	return &clientRepository{db: db}
}

// CreateClient inserts a new client. The identifier and creation timestamp
// are assigned here when the caller has not set them.
func (r *clientRepository) CreateClient(executor SQLExecutor, client *models.Client) (string, error) {
	query := `INSERT INTO clients (id, full_name, phone, subscription_type, status, created_at, last_visit)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`

	if client.ID == "" {
		client.ID = uuid.NewString()
	}
	if client.CreatedAt.IsZero() {
		client.CreatedAt = time.Now()
	}
	if client.SubscriptionType == "" {
		client.SubscriptionType = models.TierStandard
	}
	if client.Status == "" {
		client.Status = models.StatusActive
	}

	_, err := executor.Exec(query,
		client.ID, client.FullName, nullString(client.Phone),
		client.SubscriptionType, client.Status, client.CreatedAt, nullTime(client.LastVisit),
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return "", fmt.Errorf("%w: %s (constraint: %s)", ErrDuplicateKey, pqErr.Message, pqErr.Constraint)
		}
		return "", fmt.Errorf("%w: creating client: %v", ErrDatabaseError, err)
	}
	return client.ID, nil
}

// GetClientByID retrieves a client by identifier.
func (r *clientRepository) GetClientByID(id string) (*models.Client, error) {
	client := &models.Client{}
	query := `SELECT id, full_name, phone, subscription_type, status, created_at, last_visit
	          FROM clients WHERE id = $1`

	var phone sql.NullString
	var lastVisit sql.NullTime
	err := r.db.QueryRow(query, id).Scan(
		&client.ID, &client.FullName, &phone,
		&client.SubscriptionType, &client.Status, &client.CreatedAt, &lastVisit,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting client by ID %s: %v", ErrDatabaseError, id, err)
	}
	if phone.Valid {
		client.Phone = &phone.String
	}
	if lastVisit.Valid {
		client.LastVisit = &lastVisit.Time
	}
	return client, nil
}

// GetClients retrieves all clients, newest first.
func (r *clientRepository) GetClients() ([]models.Client, error) {
	clients := []models.Client{}
	query := `SELECT id, full_name, phone, subscription_type, status, created_at, last_visit
	          FROM clients ORDER BY created_at DESC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying clients: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var client models.Client
		var phone sql.NullString
		var lastVisit sql.NullTime
		if err := rows.Scan(
			&client.ID, &client.FullName, &phone,
			&client.SubscriptionType, &client.Status, &client.CreatedAt, &lastVisit,
		); err != nil {
			return nil, fmt.Errorf("%w: scanning client: %v", ErrDatabaseError, err)
		}
		if phone.Valid {
			client.Phone = &phone.String
		}
		if lastVisit.Valid {
			client.LastVisit = &lastVisit.Time
		}
		clients = append(clients, client)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating client rows: %v", ErrDatabaseError, err)
	}
	return clients, nil
}

// UpdateClient writes the full client row back. Returns ErrNotFound when the
// identifier matches no row.
func (r *clientRepository) UpdateClient(executor SQLExecutor, client *models.Client) error {
	query := `UPDATE clients SET
	            full_name = $1, phone = $2, subscription_type = $3, status = $4, last_visit = $5
	          WHERE id = $6`

	result, err := executor.Exec(query,
		client.FullName, nullString(client.Phone),
		client.SubscriptionType, client.Status, nullTime(client.LastVisit), client.ID,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return fmt.Errorf("%w: %s (constraint: %s)", ErrDuplicateKey, pqErr.Message, pqErr.Constraint)
		}
		return fmt.Errorf("%w: updating client ID %s: %v", ErrDatabaseError, client.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for updating client ID %s: %v", ErrDatabaseError, client.ID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteClient removes a client. A zero-row match is reported as success so
// that deletes stay idempotent.
func (r *clientRepository) DeleteClient(executor SQLExecutor, id string) error {
	query := `DELETE FROM clients WHERE id = $1`
	if _, err := executor.Exec(query, id); err != nil {
		return fmt.Errorf("%w: deleting client ID %s: %v", ErrDatabaseError, id, err)
	}
	return nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil || t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
