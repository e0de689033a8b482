package entities

import "time"

type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "draft"
	QuoteStatusSent     QuoteStatus = "sent"
	QuoteStatusReviewed QuoteStatus = "reviewed"
	QuoteStatusAccepted QuoteStatus = "accepted"
	QuoteStatusRejected QuoteStatus = "rejected"
	QuoteStatusExpired  QuoteStatus = "expired"
	QuoteStatusRevised  QuoteStatus = "revised"
)

var quoteStatuses = []QuoteStatus{
	QuoteStatusDraft, QuoteStatusSent, QuoteStatusReviewed, QuoteStatusAccepted,
	QuoteStatusRejected, QuoteStatusExpired, QuoteStatusRevised,
}

func (QuoteStatus) Module() Module { return ModuleQuotes }

func QuoteStatuses() []QuoteStatus { return append([]QuoteStatus(nil), quoteStatuses...) }

func ParseQuoteStatus(raw string) (QuoteStatus, error) { return parseStatus(raw, quoteStatuses) }

// Quote is a priced proposal for a client, optionally attached to a job.
//
// Monetary representation:
//   - Amount is the quoted total and is never negative.
type Quote struct {
	ID         uint        `json:"id"`
	ClientID   uint        `json:"client_id"`
	JobID      *uint       `json:"job_id"`
	Amount     float64     `json:"amount"`
	Status     QuoteStatus `json:"status"`
	ValidUntil *time.Time  `json:"valid_until"`
	Terms      string      `json:"terms"`
	Notes      string      `json:"notes"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

type QuoteFilter struct {
	ClientID uint
	Status   QuoteStatus
}
