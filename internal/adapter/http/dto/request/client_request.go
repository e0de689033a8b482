package request

import (
	"voltflow_crm/internal/domain/entities"
	"voltflow_crm/internal/usecase"
)

type ClientRequest struct {
	Name           string  `json:"name" binding:"required"`
	Email          string  `json:"email" binding:"omitempty,email"`
	Phone          string  `json:"phone"`
	Address        string  `json:"address"`
	Status         string  `json:"status"`
	EstimatedValue float64 `json:"estimated_value" binding:"gte=0"`
	Source         string  `json:"source"`
	Notes          string  `json:"notes"`
	AssignedTo     string  `json:"assigned_to"`
}

func (r ClientRequest) ToEntity() entities.Client {
	return entities.Client{
		Name:           r.Name,
		Email:          r.Email,
		Phone:          r.Phone,
		Address:        r.Address,
		Status:         entities.ClientStatus(r.Status),
		EstimatedValue: r.EstimatedValue,
		Source:         r.Source,
		Notes:          r.Notes,
		AssignedTo:     r.AssignedTo,
	}
}

type ClientUpdateRequest struct {
	Name           *string  `json:"name" binding:"omitempty,min=1"`
	Email          *string  `json:"email" binding:"omitempty,email"`
	Phone          *string  `json:"phone"`
	Address        *string  `json:"address"`
	EstimatedValue *float64 `json:"estimated_value" binding:"omitempty,gte=0"`
	Source         *string  `json:"source"`
	Notes          *string  `json:"notes"`
	AssignedTo     *string  `json:"assigned_to"`
}

func (r ClientUpdateRequest) ToPatch() usecase.ClientPatch {
	return usecase.ClientPatch{
		Name:           r.Name,
		Email:          r.Email,
		Phone:          r.Phone,
		Address:        r.Address,
		EstimatedValue: r.EstimatedValue,
		Source:         r.Source,
		Notes:          r.Notes,
		AssignedTo:     r.AssignedTo,
	}
}
