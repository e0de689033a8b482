package request

import (
	"voltflow_crm/internal/domain/entities"
	"voltflow_crm/internal/usecase"
)

type LeadRequest struct {
	Name           string  `json:"name" binding:"required"`
	Email          string  `json:"email" binding:"omitempty,email"`
	Phone          string  `json:"phone"`
	Source         string  `json:"source" binding:"omitempty,lead_source"`
	EstimatedValue float64 `json:"estimated_value" binding:"gte=0"`
	Status         string  `json:"status"`
	Notes          string  `json:"notes"`
	AssignedTo     string  `json:"assigned_to"`
}

func (r LeadRequest) ToEntity() entities.Lead {
	return entities.Lead{
		Name:           r.Name,
		Email:          r.Email,
		Phone:          r.Phone,
		Source:         entities.LeadSource(r.Source),
		EstimatedValue: r.EstimatedValue,
		Status:         entities.LeadStatus(r.Status),
		Notes:          r.Notes,
		AssignedTo:     r.AssignedTo,
	}
}

// LeadUpdateRequest carries the fields to change; absent fields stay as they
// are. Status changes go through PATCH /leads/:id/status.
type LeadUpdateRequest struct {
	Name           *string  `json:"name" binding:"omitempty,min=1"`
	Email          *string  `json:"email" binding:"omitempty,email"`
	Phone          *string  `json:"phone"`
	Source         *string  `json:"source" binding:"omitempty,lead_source"`
	EstimatedValue *float64 `json:"estimated_value" binding:"omitempty,gte=0"`
	Notes          *string  `json:"notes"`
	AssignedTo     *string  `json:"assigned_to"`
}

func (r LeadUpdateRequest) ToPatch() usecase.LeadPatch {
	p := usecase.LeadPatch{
		Name:           r.Name,
		Email:          r.Email,
		Phone:          r.Phone,
		EstimatedValue: r.EstimatedValue,
		Notes:          r.Notes,
		AssignedTo:     r.AssignedTo,
	}
	if r.Source != nil {
		s := entities.LeadSource(*r.Source)
		p.Source = &s
	}
	return p
}
