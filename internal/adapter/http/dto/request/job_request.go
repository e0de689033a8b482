package request

import (
	"time"

	"voltflow_crm/internal/domain/entities"
	"voltflow_crm/internal/usecase"
)

type JobRequest struct {
	ClientID            uint       `json:"client_id" binding:"required"`
	Title               string     `json:"title" binding:"required"`
	Description         string     `json:"description"`
	Status              string     `json:"status"`
	Priority            string     `json:"priority" binding:"omitempty,oneof=low medium high"`
	Budget              float64    `json:"budget" binding:"gte=0"`
	StartDate           *time.Time `json:"start_date"`
	EndDate             *time.Time `json:"end_date"`
	AssignedTechnicians []string   `json:"assigned_technicians"`
	ServiceAddress      string     `json:"service_address"`
}

func (r JobRequest) ToEntity() entities.Job {
	techs := r.AssignedTechnicians
	if techs == nil {
		techs = []string{}
	}
	return entities.Job{
		ClientID:            r.ClientID,
		Title:               r.Title,
		Description:         r.Description,
		Status:              entities.JobStatus(r.Status),
		Priority:            entities.JobPriority(r.Priority),
		Budget:              r.Budget,
		StartDate:           r.StartDate,
		EndDate:             r.EndDate,
		AssignedTechnicians: techs,
		ServiceAddress:      r.ServiceAddress,
	}
}

type JobUpdateRequest struct {
	ClientID            *uint      `json:"client_id" binding:"omitempty,gt=0"`
	Title               *string    `json:"title" binding:"omitempty,min=1"`
	Description         *string    `json:"description"`
	Priority            *string    `json:"priority" binding:"omitempty,oneof=low medium high"`
	Budget              *float64   `json:"budget" binding:"omitempty,gte=0"`
	StartDate           *time.Time `json:"start_date"`
	EndDate             *time.Time `json:"end_date"`
	AssignedTechnicians *[]string  `json:"assigned_technicians"`
	ServiceAddress      *string    `json:"service_address"`
}

func (r JobUpdateRequest) ToPatch() usecase.JobPatch {
	p := usecase.JobPatch{
		ClientID:            r.ClientID,
		Title:               r.Title,
		Description:         r.Description,
		Budget:              r.Budget,
		StartDate:           r.StartDate,
		EndDate:             r.EndDate,
		AssignedTechnicians: r.AssignedTechnicians,
		ServiceAddress:      r.ServiceAddress,
	}
	if r.Priority != nil {
		pr := entities.JobPriority(*r.Priority)
		p.Priority = &pr
	}
	return p
}
