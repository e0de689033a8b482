package handlers

import (
	"log"
	"net/http"

	request "voltflow_crm/internal/adapter/http/dto/request"
	response "voltflow_crm/internal/adapter/http/dto/response"
	"voltflow_crm/internal/domain/entities"
	"voltflow_crm/internal/usecase"

	"github.com/gin-gonic/gin"
)

// LeadHandler serves lead CRUD plus the lead → client conversion endpoints.
type LeadHandler struct {
	leads      usecase.ILeadUseCase
	conversion usecase.ILeadConversionUseCase
}

func NewLeadHandler(leads usecase.ILeadUseCase, conversion usecase.ILeadConversionUseCase) *LeadHandler {
	if err := request.RegisterValidators(); err != nil {
		log.Printf("[lead][handler] validator registration failed err=%v", err)
	}
	return &LeadHandler{leads: leads, conversion: conversion}
}

// CreateLead godoc
// @Summary  Create a lead
// @Tags     leads
// @Accept   json
// @Produce  json
// @Param    lead  body      request.LeadRequest  true  "Lead"
// @Success  201   {object}  response.LeadResponse
// @Failure  400   {object}  pkg.HTTPError
// @Router   /leads [post]
func (h *LeadHandler) CreateLead(c *gin.Context) {
	var payload request.LeadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	lead, err := h.leads.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, mapFlowError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromLead(lead))
}

func (h *LeadHandler) ListLeads(c *gin.Context) {
	var filter entities.LeadFilter
	if raw := c.Query("status"); raw != "" {
		status, err := entities.ParseLeadStatus(raw)
		if err != nil {
			writeError(c, mapFlowError(err))
			return
		}
		filter.Status = status
	}

	leads, err := h.leads.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, mapFlowError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLeads(leads))
}

func (h *LeadHandler) GetLead(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	lead, err := h.leads.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, mapFlowError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLead(lead))
}

func (h *LeadHandler) UpdateLead(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload request.LeadUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	lead, err := h.leads.Update(c.Request.Context(), id, payload.ToPatch())
	if err != nil {
		writeError(c, mapFlowError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLead(lead))
}

func (h *LeadHandler) DeleteLead(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.leads.Delete(c.Request.Context(), id); err != nil {
		writeError(c, mapFlowError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// ChangeLeadStatus godoc
// @Summary      Move a lead to another status
// @Description  "converted" runs the lead → client conversion; leaving "qualified" removes the linked client.
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        id      path      int                    true  "Lead ID"
// @Param        status  body      request.StatusRequest  true  "Target status"
// @Success      200     {object}  response.LeadResponse
// @Failure      400     {object}  pkg.HTTPError
// @Failure      404     {object}  pkg.HTTPError
// @Failure      409     {object}  pkg.HTTPError
// @Router       /leads/{id}/status [patch]
func (h *LeadHandler) ChangeLeadStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	status, err := entities.ParseLeadStatus(payload.Status)
	if err != nil {
		writeError(c, mapFlowError(err))
		return
	}

	lead, err := h.conversion.ChangeLeadStatus(c.Request.Context(), id, status)
	if err != nil {
		log.Printf("[lead][handler] status change failed lead_id=%d to=%s err=%v", id, status, err)
		writeError(c, mapFlowError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLead(lead))
}

// ConvertLead godoc
// @Summary  Convert a lead into a client
// @Tags     leads
// @Produce  json
// @Param    id   path      int  true  "Lead ID"
// @Success  201  {object}  response.ClientResponse
// @Failure  404  {object}  pkg.HTTPError
// @Failure  409  {object}  pkg.HTTPError
// @Router   /leads/{id}/convert [post]
func (h *LeadHandler) ConvertLead(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	client, err := h.conversion.ConvertLeadToClient(c.Request.Context(), id)
	if err != nil {
		log.Printf("[lead][handler] convert failed lead_id=%d err=%v", id, err)
		writeError(c, mapFlowError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromClient(client))
}

// DeleteLeadClient removes the client created from the lead, if any. A
// converted lead goes back to qualified.
func (h *LeadHandler) DeleteLeadClient(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.conversion.DeleteClientByLeadID(c.Request.Context(), id); err != nil {
		writeError(c, mapFlowError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *LeadHandler) LeadStats(c *gin.Context) {
	stats, err := h.conversion.GetConversionStats(c.Request.Context())
	if err != nil {
		writeError(c, mapFlowError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLeadStats(stats))
}
