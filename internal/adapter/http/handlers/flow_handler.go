package handlers

import (
	"net/http"

	response "voltflow_crm/internal/adapter/http/dto/response"
	"voltflow_crm/internal/usecase"
	"voltflow_crm/pkg"

	"github.com/gin-gonic/gin"
)

// FlowHandler exposes the stage registry, the transition validator and the
// action recommender.
type FlowHandler struct {
	usecase usecase.IFlowUseCase
}

func NewFlowHandler(uc usecase.IFlowUseCase) *FlowHandler {
	return &FlowHandler{usecase: uc}
}

// ListStages godoc
// @Summary  Stages of a module in pipeline order
// @Tags     flow
// @Produce  json
// @Param    module  path      string  true  "leads, clients, jobs, quotes or invoices"
// @Success  200     {object}  response.StagesResponse
// @Failure  400     {object}  pkg.HTTPError
// @Router   /flow/{module}/stages [get]
func (h *FlowHandler) ListStages(c *gin.Context) {
	module := c.Param("module")
	stages, err := h.usecase.Stages(module)
	if err != nil {
		writeError(c, mapFlowError(err))
		return
	}
	c.JSON(http.StatusOK, response.StagesResponse{Module: module, Stages: stages})
}

func (h *FlowHandler) GetStage(c *gin.Context) {
	module, status := c.Param("module"), c.Param("status")
	stage, found, err := h.usecase.GetStageInfo(module, status)
	if err != nil {
		writeError(c, mapFlowError(err))
		return
	}
	if !found {
		writeError(c, pkg.NewDomainErrorSimple("STAGE_NOT_FOUND", "Stage not found", http.StatusNotFound))
		return
	}
	c.JSON(http.StatusOK, stage)
}

// CheckTransition answers ?from=&to= without touching any record.
func (h *FlowHandler) CheckTransition(c *gin.Context) {
	module, from, to := c.Param("module"), c.Query("from"), c.Query("to")
	if from == "" || to == "" {
		writeError(c, errInvalidRequest)
		return
	}
	allowed, err := h.usecase.IsTransitionAllowed(module, from, to)
	if err != nil {
		writeError(c, mapFlowError(err))
		return
	}
	c.JSON(http.StatusOK, response.TransitionCheckResponse{Module: module, From: from, To: to, Allowed: allowed})
}

func (h *FlowHandler) NextActions(c *gin.Context) {
	module, status := c.Param("module"), c.Query("status")
	if status == "" {
		writeError(c, errInvalidRequest)
		return
	}
	actions, err := h.usecase.GetNextActions(module, status)
	if err != nil {
		writeError(c, mapFlowError(err))
		return
	}
	c.JSON(http.StatusOK, response.ActionsResponse{Module: module, Status: status, Actions: actions})
}
