package services

import (
	"fmt"

	"fitness_admin_backend/internal/models"
)

// DashboardService derives the dashboard aggregates. Everything is computed
// in memory from the full client list; no aggregate query is issued.
type DashboardService interface {
	GetStats() (*models.DashboardStats, error)
}

type dashboardService struct {
	clientService ClientService
}

// NewDashboardService creates a new instance of DashboardService.
func NewDashboardService(cs ClientService) DashboardService {
	return &dashboardService{clientService: cs}
}

func (s *dashboardService) GetStats() (*models.DashboardStats, error) {
	clients, err := s.clientService.GetClients()
	if err != nil {
		return nil, fmt.Errorf("failed to load clients for dashboard: %w", err)
	}

	stats := &models.DashboardStats{
		Total:   len(clients),
		Expired: []models.Client{},
	}
	for _, client := range clients {
		if client.Status == models.StatusActive {
			stats.Active++
		}
		if client.SubscriptionType == models.TierVIP {
			stats.VIP++
		}
		if client.Status == models.StatusExpired {
			stats.Expired = append(stats.Expired, client)
		}
	}
	return stats, nil
}
