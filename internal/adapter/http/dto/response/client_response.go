package response

import (
	"time"

	"voltflow_crm/internal/domain/entities"
)

type ClientResponse struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Address        string    `json:"address"`
	Status         string    `json:"status"`
	EstimatedValue float64   `json:"estimated_value"`
	Source         string    `json:"source"`
	Notes          string    `json:"notes"`
	AssignedTo     string    `json:"assigned_to"`
	LeadID         *uint     `json:"lead_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromClient(c entities.Client) ClientResponse {
	return ClientResponse{
		ID:             c.ID,
		Name:           c.Name,
		Email:          c.Email,
		Phone:          c.Phone,
		Address:        c.Address,
		Status:         string(c.Status),
		EstimatedValue: c.EstimatedValue,
		Source:         c.Source,
		Notes:          c.Notes,
		AssignedTo:     c.AssignedTo,
		LeadID:         c.LeadID,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func FromClients(in []entities.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(in))
	for _, c := range in {
		out = append(out, FromClient(c))
	}
	return out
}
