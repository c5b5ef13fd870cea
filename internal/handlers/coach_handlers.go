package handlers

import (
	"errors"
	"net/http"

	"fitness_admin_backend/internal/services"
	"fitness_admin_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// CoachHandler holds the coach service.
type CoachHandler struct {
	coachService services.CoachService
}

// NewCoachHandler creates a new CoachHandler.
func NewCoachHandler(cs services.CoachService) *CoachHandler {
	return &CoachHandler{coachService: cs}
}

// GetCoaches returns all coaches in name order.
func (h *CoachHandler) GetCoaches(c *gin.Context) {
	coaches, err := h.coachService.GetCoaches()
	if err != nil {
		utils.LogError(err, "GetCoaches: Error from coachService.GetCoaches")
		utils.RespondError(c, http.StatusInternalServerError, storeErrorMessage(err))
		return
	}
	utils.RespondData(c, http.StatusOK, coaches)
}

// CreateCoach handles the add-coach form submission.
func (h *CoachHandler) CreateCoach(c *gin.Context) {
	var req services.CreateCoachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateCoach: Failed to bind JSON")
		utils.RespondError(c, http.StatusBadRequest, "name is required")
		return
	}

	coach, err := h.coachService.CreateCoach(req)
	if err != nil {
		if errors.Is(err, services.ErrCoachValidation) {
			utils.RespondError(c, http.StatusBadRequest, err.Error())
			return
		}
		utils.LogError(err, "CreateCoach: Error from coachService.CreateCoach")
		utils.RespondError(c, http.StatusInternalServerError, storeErrorMessage(err))
		return
	}
	utils.RespondData(c, http.StatusCreated, coach)
}

// UpdateCoach applies a partial update to one coach.
func (h *CoachHandler) UpdateCoach(c *gin.Context) {
	id := c.Param("id")

	var req services.UpdateCoachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateCoach: Failed to bind JSON for ID "+id)
		utils.RespondError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	coach, err := h.coachService.UpdateCoach(id, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCoachNotFound):
			utils.RespondError(c, http.StatusNotFound, services.ErrCoachNotFound.Error())
		case errors.Is(err, services.ErrCoachValidation):
			utils.RespondError(c, http.StatusBadRequest, err.Error())
		default:
			utils.LogError(err, "UpdateCoach: Error from coachService.UpdateCoach for ID "+id)
			utils.RespondError(c, http.StatusInternalServerError, storeErrorMessage(err))
		}
		return
	}
	utils.RespondData(c, http.StatusOK, coach)
}

// DeleteCoach removes one coach; unknown identifiers still report success.
func (h *CoachHandler) DeleteCoach(c *gin.Context) {
	id := c.Param("id")

	if err := h.coachService.DeleteCoach(id); err != nil {
		utils.LogError(err, "DeleteCoach: Error from coachService.DeleteCoach for ID "+id)
		utils.RespondError(c, http.StatusInternalServerError, storeErrorMessage(err))
		return
	}
	utils.RespondOK(c)
}
