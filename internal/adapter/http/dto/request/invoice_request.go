package request

import (
	"time"

	"voltflow_crm/internal/domain/entities"
	"voltflow_crm/internal/usecase"
)

// InvoiceRequest creates a standalone invoice. Invoices tied to a quote are
// only produced by POST /quotes/:id/convert.
type InvoiceRequest struct {
	ClientID     uint       `json:"client_id" binding:"required"`
	JobID        *uint      `json:"job_id"`
	Amount       float64    `json:"amount" binding:"gte=0"`
	Status       string     `json:"status"`
	DueDate      *time.Time `json:"due_date"`
	PaymentTerms string     `json:"payment_terms"`
	Notes        string     `json:"notes"`
}

func (r InvoiceRequest) ToEntity() entities.Invoice {
	inv := entities.Invoice{
		ClientID:     r.ClientID,
		JobID:        r.JobID,
		Amount:       r.Amount,
		Status:       entities.InvoiceStatus(r.Status),
		PaymentTerms: r.PaymentTerms,
		Notes:        r.Notes,
	}
	if r.DueDate != nil {
		inv.DueDate = *r.DueDate
	}
	return inv
}

type InvoiceUpdateRequest struct {
	JobID        *uint      `json:"job_id"`
	Amount       *float64   `json:"amount" binding:"omitempty,gte=0"`
	DueDate      *time.Time `json:"due_date"`
	PaymentTerms *string    `json:"payment_terms"`
	Notes        *string    `json:"notes"`
}

func (r InvoiceUpdateRequest) ToPatch() usecase.InvoicePatch {
	return usecase.InvoicePatch{
		JobID:        r.JobID,
		Amount:       r.Amount,
		DueDate:      r.DueDate,
		PaymentTerms: r.PaymentTerms,
		Notes:        r.Notes,
	}
}
