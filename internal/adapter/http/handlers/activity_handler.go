package handlers

import (
	"net/http"
	"strconv"

	response "voltflow_crm/internal/adapter/http/dto/response"
	"voltflow_crm/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ActivityHandler struct {
	usecase usecase.IActivityUseCase
}

func NewActivityHandler(uc usecase.IActivityUseCase) *ActivityHandler {
	return &ActivityHandler{usecase: uc}
}

// RecentActivity returns the newest events; ?limit= is clamped by the use case.
func (h *ActivityHandler) RecentActivity(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(c, errInvalidRequest)
			return
		}
		limit = n
	}
	events, err := h.usecase.Recent(c.Request.Context(), limit)
	if err != nil {
		writeError(c, mapFlowError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromFlowEvents(events))
}

func (h *ActivityHandler) EntityActivity(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	events, err := h.usecase.ForEntity(c.Request.Context(), c.Param("module"), id)
	if err != nil {
		writeError(c, mapFlowError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromFlowEvents(events))
}
