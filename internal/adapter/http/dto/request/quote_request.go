package request

import (
	"time"

	"voltflow_crm/internal/domain/entities"
	"voltflow_crm/internal/usecase"
)

type QuoteRequest struct {
	ClientID   uint       `json:"client_id" binding:"required"`
	JobID      *uint      `json:"job_id"`
	Amount     float64    `json:"amount" binding:"gte=0"`
	Status     string     `json:"status"`
	ValidUntil *time.Time `json:"valid_until"`
	Terms      string     `json:"terms"`
	Notes      string     `json:"notes"`
}

func (r QuoteRequest) ToEntity() entities.Quote {
	return entities.Quote{
		ClientID:   r.ClientID,
		JobID:      r.JobID,
		Amount:     r.Amount,
		Status:     entities.QuoteStatus(r.Status),
		ValidUntil: r.ValidUntil,
		Terms:      r.Terms,
		Notes:      r.Notes,
	}
}

type QuoteUpdateRequest struct {
	JobID      *uint      `json:"job_id"`
	Amount     *float64   `json:"amount" binding:"omitempty,gte=0"`
	ValidUntil *time.Time `json:"valid_until"`
	Terms      *string    `json:"terms"`
	Notes      *string    `json:"notes"`
}

func (r QuoteUpdateRequest) ToPatch() usecase.QuotePatch {
	return usecase.QuotePatch{
		JobID:      r.JobID,
		Amount:     r.Amount,
		ValidUntil: r.ValidUntil,
		Terms:      r.Terms,
		Notes:      r.Notes,
	}
}
