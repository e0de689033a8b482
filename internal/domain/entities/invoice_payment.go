package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// InvoicePayment is a provider payment attempt for an invoice.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (invoice_id-index): invoice_id
//
// Provider payload:
//   - PayloadRaw keeps the original provider body (JSON) for reconciliation.
//   - Payload is the parsed representation, useful for querying/debugging.
type InvoicePayment struct {
	ID             string        `json:"id"`
	InvoiceID      uint          `json:"invoice_id"`
	Amount         float64       `json:"amount"`
	Date           time.Time     `json:"date"`
	Status         PaymentStatus `json:"status"`
	ProviderStatus string        `json:"provider_status"`

	PayloadRaw json.RawMessage        `json:"payload_raw,omitempty"`
	Payload    map[string]interface{} `json:"payload,omitempty"`
}

// PaymentStatusFromProvider maps a Mercado Pago payment status onto ours.
func PaymentStatusFromProvider(providerStatus string) PaymentStatus {
	switch providerStatus {
	case "approved", "authorized":
		return PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return PaymentStatusDenied
	default:
		return PaymentStatusPending
	}
}
