package response

import (
	"time"

	"voltflow_crm/internal/domain/entities"
)

type InvoicePaymentResponse struct {
	PaymentID      string    `json:"payment_id"`
	InvoiceID      uint      `json:"invoice_id"`
	Amount         float64   `json:"amount"`
	Date           time.Time `json:"date"`
	Status         string    `json:"status"`
	ProviderStatus string    `json:"provider_status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromInvoicePayment(p entities.InvoicePayment) InvoicePaymentResponse {
	return InvoicePaymentResponse{
		PaymentID:      p.ID,
		InvoiceID:      p.InvoiceID,
		Amount:         p.Amount,
		Date:           p.Date,
		Status:         string(p.Status),
		ProviderStatus: p.ProviderStatus,
		MPPayloadRaw:   string(p.PayloadRaw),
		MPPayload:      p.Payload,
	}
}

func FromInvoicePayments(in []entities.InvoicePayment) []InvoicePaymentResponse {
	out := make([]InvoicePaymentResponse, 0, len(in))
	for _, p := range in {
		out = append(out, FromInvoicePayment(p))
	}
	return out
}
