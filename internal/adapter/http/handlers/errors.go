package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"voltflow_crm/internal/domain/flow"
	"voltflow_crm/internal/usecase"
	"voltflow_crm/internal/usecase/interfaces"
	"voltflow_crm/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInvalidID      = pkg.NewDomainErrorSimple("INVALID_ID", "Invalid id", http.StatusBadRequest)
)

// mapFlowError turns use case errors shared by every pipeline handler into
// the HTTP envelope.
func mapFlowError(err error) *pkg.AppError {
	var te *flow.TransitionError
	switch {
	case errors.As(err, &te):
		return pkg.NewDomainError("INVALID_TRANSITION", "Status transition not allowed", err, http.StatusConflict).
			WithDetails(map[string]any{"module": string(te.Module), "from": te.From, "to": te.To})
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_TRANSITION", "Status transition not allowed", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrUnknownStatus):
		return pkg.NewDomainError("UNKNOWN_STATUS", "Unknown status", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownModule):
		return pkg.NewDomainError("UNKNOWN_MODULE", "Unknown module", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidID):
		return errInvalidID
	case errors.Is(err, usecase.ErrInvalidAmount):
		return pkg.NewDomainError("INVALID_AMOUNT", "Amount must not be negative", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidInput):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrLeadNotFound):
		return pkg.NewDomainErrorSimple("LEAD_NOT_FOUND", "Lead not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLeadAlreadyConverted):
		return pkg.NewDomainErrorSimple("LEAD_ALREADY_CONVERTED", "Lead already converted to a client", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteAlreadyInvoiced):
		return pkg.NewDomainErrorSimple("QUOTE_ALREADY_INVOICED", "Quote already has an invoice", http.StatusConflict)
	case errors.Is(err, interfaces.ErrConflict):
		return pkg.NewDomainError("CONFLICT", "Resource conflict", err, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// pathID reads a positive numeric path parameter, answering 400 otherwise.
func pathID(c *gin.Context, name string) (uint, bool) {
	n, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || n == 0 {
		writeError(c, errInvalidID)
		return 0, false
	}
	return uint(n), true
}

// queryID reads an optional numeric filter; absent means 0.
func queryID(c *gin.Context, name string) (uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		writeError(c, errInvalidRequest)
		return 0, false
	}
	return uint(n), true
}
