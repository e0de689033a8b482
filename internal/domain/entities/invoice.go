package entities

import "time"

type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusSent      InvoiceStatus = "sent"
	InvoiceStatusViewed    InvoiceStatus = "viewed"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusOverdue   InvoiceStatus = "overdue"
	InvoiceStatusDisputed  InvoiceStatus = "disputed"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

var invoiceStatuses = []InvoiceStatus{
	InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusViewed, InvoiceStatusPaid,
	InvoiceStatusOverdue, InvoiceStatusDisputed, InvoiceStatusCancelled,
}

func (InvoiceStatus) Module() Module { return ModuleInvoices }

func InvoiceStatuses() []InvoiceStatus { return append([]InvoiceStatus(nil), invoiceStatuses...) }

func ParseInvoiceStatus(raw string) (InvoiceStatus, error) {
	return parseStatus(raw, invoiceStatuses)
}

// DefaultPaymentTerms applies when an invoice is generated from a quote without terms.
const DefaultPaymentTerms = "Net 30"

// Invoice bills a client. QuoteID is set when the invoice was generated from a
// quote; Amount is copied from the quote at that time and not kept in sync.
type Invoice struct {
	ID           uint          `json:"id"`
	ClientID     uint          `json:"client_id"`
	JobID        *uint         `json:"job_id"`
	QuoteID      *uint         `json:"quote_id"`
	Amount       float64       `json:"amount"`
	Status       InvoiceStatus `json:"status"`
	DueDate      time.Time     `json:"due_date"`
	PaymentTerms string        `json:"payment_terms"`
	Notes        string        `json:"notes"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

type InvoiceFilter struct {
	ClientID uint
	Status   InvoiceStatus
}
