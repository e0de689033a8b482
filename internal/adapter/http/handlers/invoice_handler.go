package handlers

import (
	"net/http"

	request "voltflow_crm/internal/adapter/http/dto/request"
	response "voltflow_crm/internal/adapter/http/dto/response"
	"voltflow_crm/internal/domain/entities"
	"voltflow_crm/internal/usecase"

	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var payload request.InvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	invoice, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, mapFlowError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromInvoice(invoice))
}

func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	clientID, ok := queryID(c, "client_id")
	if !ok {
		return
	}
	filter := entities.InvoiceFilter{ClientID: clientID}
	if raw := c.Query("status"); raw != "" {
		status, err := entities.ParseInvoiceStatus(raw)
		if err != nil {
			writeError(c, mapFlowError(err))
			return
		}
		filter.Status = status
	}
	invoices, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, mapFlowError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoices(invoices))
}

func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	invoice, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, mapFlowError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload request.InvoiceUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	invoice, err := h.usecase.Update(c.Request.Context(), id, payload.ToPatch())
	if err != nil {
		writeError(c, mapFlowError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

func (h *InvoiceHandler) UpdateInvoiceStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	status, err := entities.ParseInvoiceStatus(payload.Status)
	if err != nil {
		writeError(c, mapFlowError(err))
		return
	}
	invoice, err := h.usecase.UpdateStatus(c.Request.Context(), id, status)
	if err != nil {
		writeError(c, mapFlowError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
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
