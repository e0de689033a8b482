package handlers

import (
	"net/http"

	request "voltflow_crm/internal/adapter/http/dto/request"
	response "voltflow_crm/internal/adapter/http/dto/response"
	"voltflow_crm/internal/domain/entities"
	"voltflow_crm/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	usecase usecase.IClientUseCase
}

func NewClientHandler(uc usecase.IClientUseCase) *ClientHandler {
	return &ClientHandler{usecase: uc}
}

func (h *ClientHandler) CreateClient(c *gin.Context) {
	var payload request.ClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	client, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, mapFlowError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromClient(client))
}

func (h *ClientHandler) ListClients(c *gin.Context) {
	var filter entities.ClientFilter
	if raw := c.Query("status"); raw != "" {
		status, err := entities.ParseClientStatus(raw)
		if err != nil {
			writeError(c, mapFlowError(err))
			return
		}
		filter.Status = status
	}
	clients, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, mapFlowError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromClients(clients))
}

func (h *ClientHandler) GetClient(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	client, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, mapFlowError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromClient(client))
}

func (h *ClientHandler) UpdateClient(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload request.ClientUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	client, err := h.usecase.Update(c.Request.Context(), id, payload.ToPatch())
	if err != nil {
		writeError(c, mapFlowError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromClient(client))
}

func (h *ClientHandler) UpdateClientStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	status, err := entities.ParseClientStatus(payload.Status)
	if err != nil {
		writeError(c, mapFlowError(err))
		return
	}
	client, err := h.usecase.UpdateStatus(c.Request.Context(), id, status)
	if err != nil {
		writeError(c, mapFlowError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromClient(client))
}

func (h *ClientHandler) DeleteClient(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		writeError(c, mapFlowError(err))
		return
	}
	c.Status(http.StatusNoContent)
}
