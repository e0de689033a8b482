package request

import "encoding/json"

// InvoicePaymentRequest is the optional envelope for POST /invoices/:id/payments.
//
// `mp_payload` is forwarded as-is to Mercado Pago; a body without the envelope
// is treated as the payload itself.
type InvoicePaymentRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
