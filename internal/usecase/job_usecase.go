package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"voltflow_crm/internal/domain/entities"
	"voltflow_crm/internal/usecase/interfaces"
)

//go:generate mockgen -source=job_usecase.go -destination=../adapter/http/handlers/mocks/mock_job_usecase.go -package=mocks

type JobPatch struct {
	ClientID            *uint
	Title               *string
	Description         *string
	Priority            *entities.JobPriority
	Budget              *float64
	StartDate           *time.Time
	EndDate             *time.Time
	AssignedTechnicians *[]string
	ServiceAddress      *string
}

type IJobUseCase interface {
	Create(ctx context.Context, j entities.Job) (entities.Job, error)
	GetByID(ctx context.Context, id uint) (entities.Job, error)
	List(ctx context.Context, filter entities.JobFilter) ([]entities.Job, error)
	Update(ctx context.Context, id uint, patch JobPatch) (entities.Job, error)
	UpdateStatus(ctx context.Context, id uint, status entities.JobStatus) (entities.Job, error)
	Delete(ctx context.Context, id uint) error
}

type JobUseCase struct {
	repo     interfaces.IJobRepository
	clients  interfaces.IClientRepository
	observer *FlowObserver
}

var _ IJobUseCase = (*JobUseCase)(nil)

func NewJobUseCase(repo interfaces.IJobRepository, clients interfaces.IClientRepository, observer *FlowObserver) *JobUseCase {
	return &JobUseCase{repo: repo, clients: clients, observer: observer}
}

func (u *JobUseCase) Create(ctx context.Context, j entities.Job) (entities.Job, error) {
	j.Title = strings.TrimSpace(j.Title)
	if j.Title == "" {
		return entities.Job{}, ErrInvalidInput
	}
	if j.Budget < 0 {
		return entities.Job{}, ErrInvalidAmount
	}
	if err := validJobPriority(&j.Priority); err != nil {
		return entities.Job{}, err
	}
	if err := validSchedule(j.StartDate, j.EndDate); err != nil {
		return entities.Job{}, err
	}
	if j.Status == "" {
		j.Status = entities.JobStatusPending
	} else if _, err := entities.ParseJobStatus(string(j.Status)); err != nil {
		return entities.Job{}, err
	}
	if err := requireClient(ctx, u.clients, j.ClientID); err != nil {
		return entities.Job{}, err
	}

	j.ID = 0
	created, err := u.repo.Create(ctx, j)
	if err != nil {
		log.Printf("[job][usecase] create failed client_id=%d err=%v", j.ClientID, err)
		return entities.Job{}, err
	}
	u.observer.Record(ctx, entities.FlowEvent{
		Module:        entities.ModuleJobs,
		EntityID:      created.ID,
		Action:        entities.FlowActionCreate,
		ToStatus:      string(created.Status),
		RelatedModule: entities.ModuleClients,
		RelatedID:     created.ClientID,
	})
	return created, nil
}

func validJobPriority(p *entities.JobPriority) error {
	switch *p {
	case "":
		*p = entities.JobPriorityMedium
	case entities.JobPriorityLow, entities.JobPriorityMedium, entities.JobPriorityHigh:
	default:
		return ErrInvalidInput
	}
	return nil
}

func validSchedule(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return ErrInvalidInput
	}
	return nil
}

// requireClient fails with ErrClientNotFound unless id names a stored client.
func requireClient(ctx context.Context, clients interfaces.IClientRepository, id uint) error {
	if id == 0 {
		return ErrClientNotFound
	}
	c, err := clients.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c.ID == 0 {
		return ErrClientNotFound
	}
	return nil
}

func (u *JobUseCase) GetByID(ctx context.Context, id uint) (entities.Job, error) {
	if id == 0 {
		return entities.Job{}, ErrInvalidID
	}
	j, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}
	if j.ID == 0 {
		return entities.Job{}, ErrJobNotFound
	}
	return j, nil
}

func (u *JobUseCase) List(ctx context.Context, filter entities.JobFilter) ([]entities.Job, error) {
	return u.repo.List(ctx, filter)
}

func (u *JobUseCase) Update(ctx context.Context, id uint, patch JobPatch) (entities.Job, error) {
	j, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}

	if patch.ClientID != nil && *patch.ClientID != j.ClientID {
		if err := requireClient(ctx, u.clients, *patch.ClientID); err != nil {
			return entities.Job{}, err
		}
		j.ClientID = *patch.ClientID
	}
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return entities.Job{}, ErrInvalidInput
		}
		j.Title = title
	}
	if patch.Description != nil {
		j.Description = *patch.Description
	}
	if patch.Priority != nil {
		p := *patch.Priority
		if p == "" {
			return entities.Job{}, ErrInvalidInput
		}
		if err := validJobPriority(&p); err != nil {
			return entities.Job{}, err
		}
		j.Priority = p
	}
	if patch.Budget != nil {
		if *patch.Budget < 0 {
			return entities.Job{}, ErrInvalidAmount
		}
		j.Budget = *patch.Budget
	}
	if patch.StartDate != nil {
		j.StartDate = patch.StartDate
	}
	if patch.EndDate != nil {
		j.EndDate = patch.EndDate
	}
	if err := validSchedule(j.StartDate, j.EndDate); err != nil {
		return entities.Job{}, err
	}
	if patch.AssignedTechnicians != nil {
		j.AssignedTechnicians = append([]string(nil), (*patch.AssignedTechnicians)...)
	}
	if patch.ServiceAddress != nil {
		j.ServiceAddress = *patch.ServiceAddress
	}

	updated, err := u.repo.Update(ctx, j)
	if err != nil {
		return entities.Job{}, err
	}
	if updated.ID == 0 {
		return entities.Job{}, ErrJobNotFound
	}
	return updated, nil
}

func (u *JobUseCase) UpdateStatus(ctx context.Context, id uint, status entities.JobStatus) (entities.Job, error) {
	j, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}
	write, err := checkStatusChange(j.Status, status)
	if err != nil {
		u.observer.Transition(entities.ModuleJobs, err)
		return entities.Job{}, err
	}
	if !write {
		return j, nil
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status)
	if err == nil && updated.ID == 0 {
		err = ErrJobNotFound
	}
	u.observer.Transition(entities.ModuleJobs, err)
	if err != nil {
		log.Printf("[job][usecase] status update failed job_id=%d to=%s err=%v", id, status, err)
		return entities.Job{}, err
	}
	u.observer.Record(ctx, statusChangeEvent(entities.ModuleJobs, id, string(j.Status), string(status)))
	return updated, nil
}

func (u *JobUseCase) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrInvalidID
	}
	found, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrJobNotFound
	}
	u.observer.Record(ctx, entities.FlowEvent{Module: entities.ModuleJobs, EntityID: id, Action: entities.FlowActionDelete})
	return nil
}
