package entities

import "time"

type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusScheduled  JobStatus = "scheduled"
	JobStatusDispatched JobStatus = "dispatched"
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusOnHold     JobStatus = "on_hold"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusCancelled  JobStatus = "cancelled"
)

var jobStatuses = []JobStatus{
	JobStatusPending, JobStatusScheduled, JobStatusDispatched, JobStatusInProgress,
	JobStatusOnHold, JobStatusCompleted, JobStatusCancelled,
}

func (JobStatus) Module() Module { return ModuleJobs }

func JobStatuses() []JobStatus { return append([]JobStatus(nil), jobStatuses...) }

func ParseJobStatus(raw string) (JobStatus, error) { return parseStatus(raw, jobStatuses) }

type JobPriority string

const (
	JobPriorityLow    JobPriority = "low"
	JobPriorityMedium JobPriority = "medium"
	JobPriorityHigh   JobPriority = "high"
)

// Job is a unit of field work for a client. Completed and cancelled are terminal.
type Job struct {
	ID                  uint        `json:"id"`
	ClientID            uint        `json:"client_id"`
	Title               string      `json:"title"`
	Description         string      `json:"description"`
	Status              JobStatus   `json:"status"`
	Priority            JobPriority `json:"priority"`
	Budget              float64     `json:"budget"`
	StartDate           *time.Time  `json:"start_date"`
	EndDate             *time.Time  `json:"end_date"`
	AssignedTechnicians []string    `json:"assigned_technicians"`
	ServiceAddress      string      `json:"service_address"`
	CreatedAt           time.Time   `json:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at"`
}

type JobFilter struct {
	ClientID uint
	Status   JobStatus
}
