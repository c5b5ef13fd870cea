package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"fitness_admin_backend/internal/models"
	"fitness_admin_backend/internal/repositories"
)

// --- Custom Service Errors for Client ---
var (
	ErrClientNotFound   = errors.New("client not found")
	ErrClientValidation = errors.New("client data validation error")
	ErrDateFormat       = errors.New("invalid date format, please use YYYY-MM-DD or RFC3339")
)

// --- Client DTOs ---

// CreateClientRequest carries the add-form payload. Optional fields left nil
// keep the store defaults.
type CreateClientRequest struct {
	FullName         string  `json:"full_name" binding:"required"`
	Phone            *string `json:"phone"`
	SubscriptionType *string `json:"subscription_type"`
	Status           *string `json:"status"`
	LastVisit        *string `json:"last_visit"`
}

// UpdateClientRequest is the per-field patch for an existing client. A nil
// field is untouched; a provided-but-empty Phone or LastVisit clears the
// stored value to NULL.
type UpdateClientRequest struct {
	FullName         *string `json:"full_name"`
	Phone            *string `json:"phone"`
	SubscriptionType *string `json:"subscription_type"`
	Status           *string `json:"status"`
	LastVisit        *string `json:"last_visit"`
}

// --- ClientService Interface ---
type ClientService interface {
	CreateClient(req CreateClientRequest) (*models.Client, error)
	GetClientByID(clientID string) (*models.Client, error)
	GetClients() ([]models.Client, error)
	UpdateClient(clientID string, req UpdateClientRequest) (*models.Client, error)
	DeleteClient(clientID string) error
}

// --- clientService Implementation ---
type clientService struct {
	clientRepo repositories.ClientRepository
	db         *sql.DB
}

// NewClientService creates a new instance of ClientService.
func NewClientService(repo repositories.ClientRepository, db *sql.DB) ClientService {
	return &clientService{clientRepo: repo, db: db}
}

func validateTier(tier string) error {
	if !models.ValidTier(tier) {
		return fmt.Errorf("%w: unknown subscription type %q", ErrClientValidation, tier)
	}
	return nil
}

func validateStatus(status string) error {
	if !models.ValidStatus(status) {
		return fmt.Errorf("%w: unknown status %q", ErrClientValidation, status)
	}
	return nil
}

// parseVisit accepts either a bare date or a full RFC3339 timestamp.
func parseVisit(value string) (*time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, ErrDateFormat
	}
	return &t, nil
}

func (s *clientService) CreateClient(req CreateClientRequest) (*models.Client, error) {
	fullName := strings.TrimSpace(req.FullName)
	if fullName == "" {
		return nil, fmt.Errorf("%w: full name cannot be empty", ErrClientValidation)
	}

	client := &models.Client{
		FullName:         fullName,
		SubscriptionType: models.TierStandard,
		Status:           models.StatusActive,
	}

	// Optional fields are included only when non-empty; omitting one leaves
	// the store default (NULL) in place.
	if req.Phone != nil {
		if phone := strings.TrimSpace(*req.Phone); phone != "" {
			client.Phone = &phone
		}
	}
	if req.SubscriptionType != nil && *req.SubscriptionType != "" {
		if err := validateTier(*req.SubscriptionType); err != nil {
			return nil, err
		}
		client.SubscriptionType = *req.SubscriptionType
	}
	if req.Status != nil && *req.Status != "" {
		if err := validateStatus(*req.Status); err != nil {
			return nil, err
		}
		client.Status = *req.Status
	}
	if req.LastVisit != nil && strings.TrimSpace(*req.LastVisit) != "" {
		visit, err := parseVisit(strings.TrimSpace(*req.LastVisit))
		if err != nil {
			return nil, err
		}
		client.LastVisit = visit
	}

	id, err := s.clientRepo.CreateClient(s.db, client)
	if err != nil {
		return nil, fmt.Errorf("failed to create client in repository: %w", err)
	}
	return s.clientRepo.GetClientByID(id)
}

func (s *clientService) GetClientByID(clientID string) (*models.Client, error) {
	client, err := s.clientRepo.GetClientByID(clientID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to get client by ID: %w", err)
	}
	return client, nil
}

func (s *clientService) GetClients() ([]models.Client, error) {
	clients, err := s.clientRepo.GetClients()
	if err != nil {
		return nil, fmt.Errorf("failed to get clients: %w", err)
	}
	return clients, nil
}

func (s *clientService) UpdateClient(clientID string, req UpdateClientRequest) (*models.Client, error) {
	client, err := s.clientRepo.GetClientByID(clientID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to find client for update: %w", err)
	}

	if req.FullName != nil {
		fullName := strings.TrimSpace(*req.FullName)
		if fullName == "" {
			return nil, fmt.Errorf("%w: full name cannot be empty", ErrClientValidation)
		}
		client.FullName = fullName
	}
	if req.Phone != nil {
		// Distinct from the create path: a provided-but-empty phone means
		// "explicitly cleared" and is stored as NULL.
		if phone := strings.TrimSpace(*req.Phone); phone == "" {
			client.Phone = nil
		} else {
			client.Phone = &phone
		}
	}
	if req.SubscriptionType != nil {
		if err := validateTier(*req.SubscriptionType); err != nil {
			return nil, err
		}
		client.SubscriptionType = *req.SubscriptionType
	}
	if req.Status != nil {
		if err := validateStatus(*req.Status); err != nil {
			return nil, err
		}
		client.Status = *req.Status
	}
	if req.LastVisit != nil {
		if value := strings.TrimSpace(*req.LastVisit); value == "" {
			client.LastVisit = nil
		} else {
			visit, parseErr := parseVisit(value)
			if parseErr != nil {
				return nil, parseErr
			}
			client.LastVisit = visit
		}
	}

	if err := s.clientRepo.UpdateClient(s.db, client); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to update client in repository: %w", err)
	}
	return s.clientRepo.GetClientByID(clientID)
}

// DeleteClient removes a client. Deleting an identifier that matches no row
// is still a success; the operation is idempotent by contract.
func (s *clientService) DeleteClient(clientID string) error {
	if err := s.clientRepo.DeleteClient(s.db, clientID); err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	return nil
}
