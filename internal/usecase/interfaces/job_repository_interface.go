package interfaces

import (
	"context"
	"voltflow_crm/internal/domain/entities"
)

//go:generate mockgen -source=job_repository_interface.go -destination=mocks/mock_job_repository_interface.go -package=mock_interfaces

type IJobRepository interface {
	Create(ctx context.Context, j entities.Job) (entities.Job, error)
	GetByID(ctx context.Context, id uint) (entities.Job, error)
	List(ctx context.Context, filter entities.JobFilter) ([]entities.Job, error)
	Update(ctx context.Context, j entities.Job) (entities.Job, error)
	UpdateStatus(ctx context.Context, id uint, status entities.JobStatus) (entities.Job, error)
	Delete(ctx context.Context, id uint) (bool, error)
}
