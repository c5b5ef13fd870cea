package services

import (
	"errors"
	"testing"

	"fitness_admin_backend/internal/models"
	"fitness_admin_backend/internal/repositories"
)

type stubCoachRepo struct {
	coaches map[string]models.Coach
	deleted []string
}

func newStubCoachRepo() *stubCoachRepo {
	return &stubCoachRepo{coaches: map[string]models.Coach{}}
}

func (r *stubCoachRepo) CreateCoach(_ repositories.SQLExecutor, coach *models.Coach) (string, error) {
	if coach.ID == "" {
		coach.ID = "coach-1"
	}
	r.coaches[coach.ID] = *coach
	return coach.ID, nil
}

func (r *stubCoachRepo) GetCoachByID(id string) (*models.Coach, error) {
	coach, ok := r.coaches[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := coach
	return &copied, nil
}

func (r *stubCoachRepo) GetCoaches() ([]models.Coach, error) {
	out := []models.Coach{}
	for _, c := range r.coaches {
		out = append(out, c)
	}
	return out, nil
}

func (r *stubCoachRepo) UpdateCoach(_ repositories.SQLExecutor, coach *models.Coach) error {
	if _, ok := r.coaches[coach.ID]; !ok {
		return repositories.ErrNotFound
	}
	r.coaches[coach.ID] = *coach
	return nil
}

func (r *stubCoachRepo) DeleteCoach(_ repositories.SQLExecutor, id string) error {
	r.deleted = append(r.deleted, id)
	delete(r.coaches, id)
	return nil
}

func TestCreateCoachRequiresNameAndSpecialization(t *testing.T) {
	service := NewCoachService(newStubCoachRepo(), nil)

	if _, err := service.CreateCoach(CreateCoachRequest{Name: " ", Specialization: "Yoga"}); !errors.Is(err, ErrCoachValidation) {
		t.Errorf("blank name: expected ErrCoachValidation, got %v", err)
	}
	if _, err := service.CreateCoach(CreateCoachRequest{Name: "Petrov", Specialization: ""}); !errors.Is(err, ErrCoachValidation) {
		t.Errorf("blank specialization: expected ErrCoachValidation, got %v", err)
	}
}

func TestCreateCoachTrimsFields(t *testing.T) {
	service := NewCoachService(newStubCoachRepo(), nil)

	coach, err := service.CreateCoach(CreateCoachRequest{Name: " Petrov ", Specialization: " CrossFit "})
	if err != nil {
		t.Fatalf("CreateCoach: %v", err)
	}
	if coach.Name != "Petrov" || coach.Specialization != "CrossFit" {
		t.Errorf("expected trimmed fields, got %q / %q", coach.Name, coach.Specialization)
	}
}

func TestUpdateCoachPatchesProvidedFieldsOnly(t *testing.T) {
	repo := newStubCoachRepo()
	service := NewCoachService(repo, nil)

	created, err := service.CreateCoach(CreateCoachRequest{Name: "Petrov", Specialization: "Yoga"})
	if err != nil {
		t.Fatalf("CreateCoach: %v", err)
	}

	spec := "Pilates"
	updated, err := service.UpdateCoach(created.ID, UpdateCoachRequest{Specialization: &spec})
	if err != nil {
		t.Fatalf("UpdateCoach: %v", err)
	}
	if updated.Name != "Petrov" {
		t.Errorf("untouched name changed: %q", updated.Name)
	}
	if updated.Specialization != "Pilates" {
		t.Errorf("expected specialization Pilates, got %q", updated.Specialization)
	}
}

func TestUpdateCoachUnknownIDIsNotFound(t *testing.T) {
	service := NewCoachService(newStubCoachRepo(), nil)

	name := "X"
	if _, err := service.UpdateCoach("missing", UpdateCoachRequest{Name: &name}); !errors.Is(err, ErrCoachNotFound) {
		t.Errorf("expected ErrCoachNotFound, got %v", err)
	}
}

func TestDeleteCoachUnknownIDSucceeds(t *testing.T) {
	repo := newStubCoachRepo()
	service := NewCoachService(repo, nil)

	if err := service.DeleteCoach("missing"); err != nil {
		t.Fatalf("expected idempotent delete to succeed, got %v", err)
	}
	if len(repo.deleted) != 1 {
		t.Errorf("expected delete to reach the repository, got %v", repo.deleted)
	}
}
