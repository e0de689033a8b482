package response

import (
	"time"

	"voltflow_crm/internal/domain/entities"
	"voltflow_crm/internal/usecase"
)

type QuoteResponse struct {
	ID         uint       `json:"id"`
	ClientID   uint       `json:"client_id"`
	JobID      *uint      `json:"job_id"`
	Amount     float64    `json:"amount"`
	Status     string     `json:"status"`
	ValidUntil *time.Time `json:"valid_until"`
	Terms      string     `json:"terms"`
	Notes      string     `json:"notes"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:         q.ID,
		ClientID:   q.ClientID,
		JobID:      q.JobID,
		Amount:     q.Amount,
		Status:     string(q.Status),
		ValidUntil: q.ValidUntil,
		Terms:      q.Terms,
		Notes:      q.Notes,
		CreatedAt:  q.CreatedAt,
		UpdatedAt:  q.UpdatedAt,
	}
}

func FromQuotes(in []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(in))
	for _, q := range in {
		out = append(out, FromQuote(q))
	}
	return out
}

type QuoteStatsResponse struct {
	Total          int64            `json:"total"`
	Draft          int64            `json:"draft"`
	Sent           int64            `json:"sent"`
	Accepted       int64            `json:"accepted"`
	Rejected       int64            `json:"rejected"`
	AcceptanceRate float64          `json:"acceptance_rate"`
	ByStatus       map[string]int64 `json:"by_status"`
}

func FromQuoteStats(s usecase.QuoteStats) QuoteStatsResponse {
	return QuoteStatsResponse{
		Total:          s.Total,
		Draft:          s.ByStatus[string(entities.QuoteStatusDraft)],
		Sent:           s.ByStatus[string(entities.QuoteStatusSent)],
		Accepted:       s.Accepted,
		Rejected:       s.ByStatus[string(entities.QuoteStatusRejected)],
		AcceptanceRate: s.AcceptanceRate,
		ByStatus:       s.ByStatus,
	}
}
