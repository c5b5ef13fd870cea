package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"fitness_admin_backend/internal/models"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// CoachRepository defines coach-related database operations.
type CoachRepository interface {
	CreateCoach(executor SQLExecutor, coach *models.Coach) (string, error)
	GetCoachByID(id string) (*models.Coach, error)
	GetCoaches() ([]models.Coach, error)
	UpdateCoach(executor SQLExecutor, coach *models.Coach) error
	DeleteCoach(executor SQLExecutor, id string) error
}

type coachRepository struct {
	db *sql.DB
}

// NewCoachRepository creates a new instance of CoachRepository.
func NewCoachRepository(db *sql.DB) CoachRepository {
	return &coachRepository{db: db}
}

// CreateCoach inserts a new coach, assigning the identifier when unset.
func (r *coachRepository) CreateCoach(executor SQLExecutor, coach *models.Coach) (string, error) {
	query := `INSERT INTO coaches (id, name, specialization) VALUES ($1, $2, $3)`

	if coach.ID == "" {
		coach.ID = uuid.NewString()
	}

	if _, err := executor.Exec(query, coach.ID, coach.Name, coach.Specialization); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return "", fmt.Errorf("%w: %s (constraint: %s)", ErrDuplicateKey, pqErr.Message, pqErr.Constraint)
		}
		return "", fmt.Errorf("%w: creating coach: %v", ErrDatabaseError, err)
	}
	return coach.ID, nil
}

// GetCoachByID retrieves a coach by identifier.
func (r *coachRepository) GetCoachByID(id string) (*models.Coach, error) {
	coach := &models.Coach{}
	query := `SELECT id, name, specialization FROM coaches WHERE id = $1`

	err := r.db.QueryRow(query, id).Scan(&coach.ID, &coach.Name, &coach.Specialization)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting coach by ID %s: %v", ErrDatabaseError, id, err)
	}
	return coach, nil
}

// GetCoaches retrieves all coaches in name order.
func (r *coachRepository) GetCoaches() ([]models.Coach, error) {
	coaches := []models.Coach{}
	query := `SELECT id, name, specialization FROM coaches ORDER BY name ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying coaches: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var coach models.Coach
		if err := rows.Scan(&coach.ID, &coach.Name, &coach.Specialization); err != nil {
			return nil, fmt.Errorf("%w: scanning coach: %v", ErrDatabaseError, err)
		}
		coaches = append(coaches, coach)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating coach rows: %v", ErrDatabaseError, err)
	}
	return coaches, nil
}

// UpdateCoach writes the full coach row back. Returns ErrNotFound when the
// identifier matches no row.
func (r *coachRepository) UpdateCoach(executor SQLExecutor, coach *models.Coach) error {
	query := `UPDATE coaches SET name = $1, specialization = $2 WHERE id = $3`

	result, err := executor.Exec(query, coach.Name, coach.Specialization, coach.ID)
	if err != nil {
		return fmt.Errorf("%w: updating coach ID %s: %v", ErrDatabaseError, coach.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for updating coach ID %s: %v", ErrDatabaseError, coach.ID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteCoach removes a coach. A zero-row match is reported as success so
// that deletes stay idempotent.
func (r *coachRepository) DeleteCoach(executor SQLExecutor, id string) error {
	query := `DELETE FROM coaches WHERE id = $1`
	if _, err := executor.Exec(query, id); err != nil {
		return fmt.Errorf("%w: deleting coach ID %s: %v", ErrDatabaseError, id, err)
	}
	return nil
}
