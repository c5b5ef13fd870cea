package handlers

import (
	"errors"
	"net/http"

	"fitness_admin_backend/internal/repositories"
	"fitness_admin_backend/internal/services"
	"fitness_admin_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ClientHandler holds the client service.
type ClientHandler struct {
	clientService services.ClientService
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(cs services.ClientService) *ClientHandler {
	return &ClientHandler{clientService: cs}
}

// GetClients returns all clients, newest first. An empty list is a success.
func (h *ClientHandler) GetClients(c *gin.Context) {
	clients, err := h.clientService.GetClients()
	if err != nil {
		utils.LogError(err, "GetClients: Error from clientService.GetClients")
		utils.RespondError(c, http.StatusInternalServerError, storeErrorMessage(err))
		return
	}
	utils.RespondData(c, http.StatusOK, clients)
}

// CreateClient handles the add-client form submission.
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req services.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateClient: Failed to bind JSON")
		utils.RespondError(c, http.StatusBadRequest, "full name is required")
		return
	}

	client, err := h.clientService.CreateClient(req)
	if err != nil {
		if errors.Is(err, services.ErrClientValidation) || errors.Is(err, services.ErrDateFormat) {
			utils.RespondError(c, http.StatusBadRequest, err.Error())
			return
		}
		utils.LogError(err, "CreateClient: Error from clientService.CreateClient")
		utils.RespondError(c, http.StatusInternalServerError, storeErrorMessage(err))
		return
	}
	utils.RespondData(c, http.StatusCreated, client)
}

// UpdateClient applies a partial update to one client.
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	id := c.Param("id")

	var req services.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateClient: Failed to bind JSON for ID "+id)
		utils.RespondError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	client, err := h.clientService.UpdateClient(id, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrClientNotFound):
			utils.RespondError(c, http.StatusNotFound, services.ErrClientNotFound.Error())
		case errors.Is(err, services.ErrClientValidation), errors.Is(err, services.ErrDateFormat):
			utils.RespondError(c, http.StatusBadRequest, err.Error())
		default:
			utils.LogError(err, "UpdateClient: Error from clientService.UpdateClient for ID "+id)
			utils.RespondError(c, http.StatusInternalServerError, storeErrorMessage(err))
		}
		return
	}
	utils.RespondData(c, http.StatusOK, client)
}

// DeleteClient removes one client. Deleting an unknown identifier still
// reports success.
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	id := c.Param("id")

	if err := h.clientService.DeleteClient(id); err != nil {
		utils.LogError(err, "DeleteClient: Error from clientService.DeleteClient for ID "+id)
		utils.RespondError(c, http.StatusInternalServerError, storeErrorMessage(err))
		return
	}
	utils.RespondOK(c)
}

// storeErrorMessage picks the error string put on the wire for a 500. Our own
// wrapped database errors are safe to forward; anything else gets the generic
// message.
func storeErrorMessage(err error) string {
	if errors.Is(err, repositories.ErrDatabaseError) || errors.Is(err, repositories.ErrDuplicateKey) {
		return err.Error()
	}
	return utils.MsgInternalError
}
