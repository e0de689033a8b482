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

// QuoteHandler serves quote CRUD plus the quote → invoice conversion endpoints.
type QuoteHandler struct {
	quotes     usecase.IQuoteUseCase
	conversion usecase.IQuoteConversionUseCase
}

func NewQuoteHandler(quotes usecase.IQuoteUseCase, conversion usecase.IQuoteConversionUseCase) *QuoteHandler {
	return &QuoteHandler{quotes: quotes, conversion: conversion}
}

func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	quote, err := h.quotes.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, mapFlowError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	clientID, ok := queryID(c, "client_id")
	if !ok {
		return
	}
	filter := entities.QuoteFilter{ClientID: clientID}
	if raw := c.Query("status"); raw != "" {
		status, err := entities.ParseQuoteStatus(raw)
		if err != nil {
			writeError(c, mapFlowError(err))
			return
		}
		filter.Status = status
	}
	quotes, err := h.quotes.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, mapFlowError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	quote, err := h.quotes.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, mapFlowError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) UpdateQuote(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload request.QuoteUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	quote, err := h.quotes.Update(c.Request.Context(), id, payload.ToPatch())
	if err != nil {
		writeError(c, mapFlowError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) UpdateQuoteStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	status, err := entities.ParseQuoteStatus(payload.Status)
	if err != nil {
		writeError(c, mapFlowError(err))
		return
	}
	quote, err := h.quotes.UpdateStatus(c.Request.Context(), id, status)
	if err != nil {
		writeError(c, mapFlowError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) DeleteQuote(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.quotes.Delete(c.Request.Context(), id); err != nil {
		writeError(c, mapFlowError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// ConvertQuote godoc
// @Summary  Generate the invoice for a quote
// @Tags     quotes
// @Produce  json
// @Param    id   path      int  true  "Quote ID"
// @Success  201  {object}  response.InvoiceResponse
// @Failure  404  {object}  pkg.HTTPError
// @Failure  409  {object}  pkg.HTTPError
// @Router   /quotes/{id}/convert [post]
func (h *QuoteHandler) ConvertQuote(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	invoice, err := h.conversion.ConvertQuoteToInvoice(c.Request.Context(), id)
	if err != nil {
		log.Printf("[quote][handler] convert failed quote_id=%d err=%v", id, err)
		writeError(c, mapFlowError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromInvoice(invoice))
}

func (h *QuoteHandler) QuoteStats(c *gin.Context) {
	stats, err := h.conversion.GetQuoteStats(c.Request.Context())
	if err != nil {
		writeError(c, mapFlowError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteStats(stats))
}
