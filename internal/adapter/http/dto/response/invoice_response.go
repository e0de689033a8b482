package response

import (
	"time"

	"voltflow_crm/internal/domain/entities"
)

type InvoiceResponse struct {
	ID           uint      `json:"id"`
	ClientID     uint      `json:"client_id"`
	JobID        *uint     `json:"job_id"`
	QuoteID      *uint     `json:"quote_id"`
	Amount       float64   `json:"amount"`
	Status       string    `json:"status"`
	DueDate      time.Time `json:"due_date"`
	PaymentTerms string    `json:"payment_terms"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromInvoice(i entities.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:           i.ID,
		ClientID:     i.ClientID,
		JobID:        i.JobID,
		QuoteID:      i.QuoteID,
		Amount:       i.Amount,
		Status:       string(i.Status),
		DueDate:      i.DueDate,
		PaymentTerms: i.PaymentTerms,
		Notes:        i.Notes,
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
}

func FromInvoices(in []entities.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(in))
	for _, i := range in {
		out = append(out, FromInvoice(i))
	}
	return out
}
