package response

import (
	"time"

	"voltflow_crm/internal/domain/entities"
	"voltflow_crm/internal/usecase"
)

type LeadResponse struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Source         string    `json:"source"`
	EstimatedValue float64   `json:"estimated_value"`
	Status         string    `json:"status"`
	Notes          string    `json:"notes"`
	AssignedTo     string    `json:"assigned_to"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromLead(l entities.Lead) LeadResponse {
	return LeadResponse{
		ID:             l.ID,
		Name:           l.Name,
		Email:          l.Email,
		Phone:          l.Phone,
		Source:         string(l.Source),
		EstimatedValue: l.EstimatedValue,
		Status:         string(l.Status),
		Notes:          l.Notes,
		AssignedTo:     l.AssignedTo,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}

func FromLeads(in []entities.Lead) []LeadResponse {
	out := make([]LeadResponse, 0, len(in))
	for _, l := range in {
		out = append(out, FromLead(l))
	}
	return out
}

// LeadStatsResponse keeps the per-status counters of the original dashboard
// next to the full breakdown.
type LeadStatsResponse struct {
	Total          int64            `json:"total"`
	New            int64            `json:"new"`
	Contacted      int64            `json:"contacted"`
	Qualified      int64            `json:"qualified"`
	Lost           int64            `json:"lost"`
	Converted      int64            `json:"converted"`
	ConversionRate float64          `json:"conversion_rate"`
	ByStatus       map[string]int64 `json:"by_status"`
}

func FromLeadStats(s usecase.LeadConversionStats) LeadStatsResponse {
	return LeadStatsResponse{
		Total:          s.Total,
		New:            s.ByStatus[string(entities.LeadStatusNew)],
		Contacted:      s.ByStatus[string(entities.LeadStatusContacted)],
		Qualified:      s.ByStatus[string(entities.LeadStatusQualified)],
		Lost:           s.ByStatus[string(entities.LeadStatusLost)],
		Converted:      s.Converted,
		ConversionRate: s.ConversionRate,
		ByStatus:       s.ByStatus,
	}
}
