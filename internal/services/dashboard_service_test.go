package services

import (
	"errors"
	"testing"

	"fitness_admin_backend/internal/models"
)

type stubClientLister struct {
	clients []models.Client
	err     error
	calls   int
}

func (s *stubClientLister) GetClients() ([]models.Client, error) {
	s.calls++
	return s.clients, s.err
}

func (s *stubClientLister) CreateClient(CreateClientRequest) (*models.Client, error) {
	return nil, errors.New("not implemented")
}
func (s *stubClientLister) GetClientByID(string) (*models.Client, error) {
	return nil, errors.New("not implemented")
}
func (s *stubClientLister) UpdateClient(string, UpdateClientRequest) (*models.Client, error) {
	return nil, errors.New("not implemented")
}
func (s *stubClientLister) DeleteClient(string) error {
	return errors.New("not implemented")
}

func TestGetStatsDerivesAggregatesFromClientList(t *testing.T) {
	lister := &stubClientLister{clients: []models.Client{
		{ID: "1", FullName: "A", Status: models.StatusActive, SubscriptionType: models.TierStandard},
		{ID: "2", FullName: "B", Status: models.StatusActive, SubscriptionType: models.TierVIP},
		{ID: "3", FullName: "C", Status: models.StatusExpired, SubscriptionType: models.TierPremium},
	}}
	service := NewDashboardService(lister)

	stats, err := service.GetStats()
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	if stats.Total != 3 {
		t.Errorf("expected total 3, got %d", stats.Total)
	}
	if stats.Active != 2 {
		t.Errorf("expected active 2, got %d", stats.Active)
	}
	if stats.VIP != 1 {
		t.Errorf("expected vip 1, got %d", stats.VIP)
	}
	if len(stats.Expired) != 1 || stats.Expired[0].ID != "3" {
		t.Errorf("expected expired list with client 3, got %v", stats.Expired)
	}
	if lister.calls != 1 {
		t.Errorf("expected a single list call, got %d", lister.calls)
	}
}

func TestGetStatsEmptyListIsZeroes(t *testing.T) {
	service := NewDashboardService(&stubClientLister{})

	stats, err := service.GetStats()
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	if stats.Total != 0 || stats.Active != 0 || stats.VIP != 0 || len(stats.Expired) != 0 {
		t.Errorf("expected zeroed stats, got %+v", stats)
	}
}

func TestGetStatsPropagatesListError(t *testing.T) {
	service := NewDashboardService(&stubClientLister{err: errors.New("boom")})

	if _, err := service.GetStats(); err == nil {
		t.Fatal("expected error from failing client list")
	}
}
