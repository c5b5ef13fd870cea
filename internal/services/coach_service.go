package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"fitness_admin_backend/internal/models"
	"fitness_admin_backend/internal/repositories"
)

// --- Custom Service Errors for Coach ---
var (
	ErrCoachNotFound   = errors.New("coach not found")
	ErrCoachValidation = errors.New("coach data validation error")
)

// --- Coach DTOs ---

type CreateCoachRequest struct {
	Name           string `json:"name" binding:"required"`
	Specialization string `json:"specialization"`
}

// UpdateCoachRequest is the per-field patch for an existing coach.
type UpdateCoachRequest struct {
	Name           *string `json:"name"`
	Specialization *string `json:"specialization"`
}

// --- CoachService Interface ---
type CoachService interface {
	CreateCoach(req CreateCoachRequest) (*models.Coach, error)
	GetCoachByID(coachID string) (*models.Coach, error)
	GetCoaches() ([]models.Coach, error)
	UpdateCoach(coachID string, req UpdateCoachRequest) (*models.Coach, error)
	DeleteCoach(coachID string) error
}

// --- coachService Implementation ---
type coachService struct {
	coachRepo repositories.CoachRepository
	db        *sql.DB
}

// NewCoachService creates a new instance of CoachService.
func NewCoachService(repo repositories.CoachRepository, db *sql.DB) CoachService {
	return &coachService{coachRepo: repo, db: db}
}

func (s *coachService) CreateCoach(req CreateCoachRequest) (*models.Coach, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", ErrCoachValidation)
	}
	specialization := strings.TrimSpace(req.Specialization)
	if specialization == "" {
		return nil, fmt.Errorf("%w: specialization cannot be empty", ErrCoachValidation)
	}

	coach := &models.Coach{Name: name, Specialization: specialization}
	id, err := s.coachRepo.CreateCoach(s.db, coach)
	if err != nil {
		return nil, fmt.Errorf("failed to create coach in repository: %w", err)
	}
	return s.coachRepo.GetCoachByID(id)
}

func (s *coachService) GetCoachByID(coachID string) (*models.Coach, error) {
	coach, err := s.coachRepo.GetCoachByID(coachID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCoachNotFound
		}
		return nil, fmt.Errorf("failed to get coach by ID: %w", err)
	}
	return coach, nil
}

func (s *coachService) GetCoaches() ([]models.Coach, error) {
	coaches, err := s.coachRepo.GetCoaches()
	if err != nil {
		return nil, fmt.Errorf("failed to get coaches: %w", err)
	}
	return coaches, nil
}

func (s *coachService) UpdateCoach(coachID string, req UpdateCoachRequest) (*models.Coach, error) {
	coach, err := s.coachRepo.GetCoachByID(coachID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCoachNotFound
		}
		return nil, fmt.Errorf("failed to find coach for update: %w", err)
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrCoachValidation)
		}
		coach.Name = name
	}
	if req.Specialization != nil {
		specialization := strings.TrimSpace(*req.Specialization)
		if specialization == "" {
			return nil, fmt.Errorf("%w: specialization cannot be empty", ErrCoachValidation)
		}
		coach.Specialization = specialization
	}

	if err := s.coachRepo.UpdateCoach(s.db, coach); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCoachNotFound
		}
		return nil, fmt.Errorf("failed to update coach in repository: %w", err)
	}
	return s.coachRepo.GetCoachByID(coachID)
}

// DeleteCoach removes a coach; deletes of unknown identifiers succeed.
func (s *coachService) DeleteCoach(coachID string) error {
	if err := s.coachRepo.DeleteCoach(s.db, coachID); err != nil {
		return fmt.Errorf("failed to delete coach: %w", err)
	}
	return nil
}
