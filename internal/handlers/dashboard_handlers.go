package handlers

import (
	"net/http"

	"fitness_admin_backend/internal/services"
	"fitness_admin_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// DashboardHandler holds the dashboard service.
type DashboardHandler struct {
	dashboardService services.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(ds services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: ds}
}

// GetStats returns the aggregates derived from the client list.
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboardService.GetStats()
	if err != nil {
		utils.LogError(err, "GetStats: Error from dashboardService.GetStats")
		utils.RespondError(c, http.StatusInternalServerError, storeErrorMessage(err))
		return
	}
	utils.RespondData(c, http.StatusOK, stats)
}
