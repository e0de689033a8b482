package response

import (
	"time"

	"voltflow_crm/internal/domain/entities"
)

type JobResponse struct {
	ID                  uint       `json:"id"`
	ClientID            uint       `json:"client_id"`
	Title               string     `json:"title"`
	Description         string     `json:"description"`
	Status              string     `json:"status"`
	Priority            string     `json:"priority"`
	Budget              float64    `json:"budget"`
	StartDate           *time.Time `json:"start_date"`
	EndDate             *time.Time `json:"end_date"`
	AssignedTechnicians []string   `json:"assigned_technicians"`
	ServiceAddress      string     `json:"service_address"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

func FromJob(j entities.Job) JobResponse {
	techs := j.AssignedTechnicians
	if techs == nil {
		techs = []string{}
	}
	return JobResponse{
		ID:                  j.ID,
		ClientID:            j.ClientID,
		Title:               j.Title,
		Description:         j.Description,
		Status:              string(j.Status),
		Priority:            string(j.Priority),
		Budget:              j.Budget,
		StartDate:           j.StartDate,
		EndDate:             j.EndDate,
		AssignedTechnicians: techs,
		ServiceAddress:      j.ServiceAddress,
		CreatedAt:           j.CreatedAt,
		UpdatedAt:           j.UpdatedAt,
	}
}

func FromJobs(in []entities.Job) []JobResponse {
	out := make([]JobResponse, 0, len(in))
	for _, j := range in {
		out = append(out, FromJob(j))
	}
	return out
}
