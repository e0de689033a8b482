package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	response "voltflow_crm/internal/adapter/http/dto/response"
	"voltflow_crm/internal/usecase"
	"voltflow_crm/pkg"

	"github.com/gin-gonic/gin"
)

// InvoicePaymentHandler charges invoices and lists their payments.
type InvoicePaymentHandler struct {
	usecase usecase.IInvoicePaymentUseCase
}

func NewInvoicePaymentHandler(uc usecase.IInvoicePaymentUseCase) *InvoicePaymentHandler {
	return &InvoicePaymentHandler{usecase: uc}
}

// PayInvoice godoc
// @Summary      Charge an invoice through Mercado Pago
// @Description  The body is the Mercado Pago payment request, bare or wrapped in {"mp_payload": ...}. The amount always comes from the invoice.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id       path      int                            true   "Invoice ID"
// @Param        payment  body      request.InvoicePaymentRequest  false  "Mercado Pago payload"
// @Success      201  {object}  response.InvoicePaymentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /invoices/{id}/payments [post]
func (h *InvoicePaymentHandler) PayInvoice(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	log.Printf("[payment][handler] create start invoice_id=%d", id)

	payload, err := readMPPayload(c)
	if err != nil {
		// the use case decides whether an unusable payload is fatal (it is not in mock mode)
		log.Printf("[payment][handler] unusable payload invoice_id=%d err=%v", id, err)
		payload = nil
	}

	created, err := h.usecase.Pay(c.Request.Context(), id, payload)
	if err != nil {
		log.Printf("[payment][handler] create failed invoice_id=%d err=%v", id, err)
		writeError(c, mapInvoicePaymentError(err))
		return
	}
	log.Printf("[payment][handler] create success invoice_id=%d payment_id=%s status=%s", id, created.ID, created.Status)
	c.JSON(http.StatusCreated, response.FromInvoicePayment(created))
}

func (h *InvoicePaymentHandler) ListInvoicePayments(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	payments, err := h.usecase.ListByInvoiceID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[payment][handler] list failed invoice_id=%d err=%v", id, err)
		writeError(c, mapInvoicePaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoicePayments(payments))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			inner := strings.TrimSpace(string(wrapped))
			if inner == "" || inner == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}
	return json.RawMessage(raw), nil
}

func mapInvoicePaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", err, http.StatusServiceUnavailable)
	default:
		return mapFlowError(err)
	}
}
