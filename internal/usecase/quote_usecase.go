package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"voltflow_crm/internal/domain/entities"
	"voltflow_crm/internal/usecase/interfaces"
)

//go:generate mockgen -source=quote_usecase.go -destination=../adapter/http/handlers/mocks/mock_quote_usecase.go -package=mocks

type QuotePatch struct {
	JobID      *uint
	Amount     *float64
	ValidUntil *time.Time
	Terms      *string
	Notes      *string
}

type IQuoteUseCase interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id uint) (entities.Quote, error)
	List(ctx context.Context, filter entities.QuoteFilter) ([]entities.Quote, error)
	Update(ctx context.Context, id uint, patch QuotePatch) (entities.Quote, error)
	UpdateStatus(ctx context.Context, id uint, status entities.QuoteStatus) (entities.Quote, error)
	Delete(ctx context.Context, id uint) error
}

type QuoteUseCase struct {
	repo     interfaces.IQuoteRepository
	clients  interfaces.IClientRepository
	jobs     interfaces.IJobRepository
	observer *FlowObserver
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, clients interfaces.IClientRepository, jobs interfaces.IJobRepository, observer *FlowObserver) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, clients: clients, jobs: jobs, observer: observer}
}

func (u *QuoteUseCase) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	if q.Amount < 0 {
		return entities.Quote{}, ErrInvalidAmount
	}
	if q.Status == "" {
		q.Status = entities.QuoteStatusDraft
	} else if _, err := entities.ParseQuoteStatus(string(q.Status)); err != nil {
		return entities.Quote{}, err
	}
	if err := requireClient(ctx, u.clients, q.ClientID); err != nil {
		return entities.Quote{}, err
	}
	if err := requireJob(ctx, u.jobs, q.JobID); err != nil {
		return entities.Quote{}, err
	}

	q.ID = 0
	q.Terms = strings.TrimSpace(q.Terms)
	created, err := u.repo.Create(ctx, q)
	if err != nil {
		log.Printf("[quote][usecase] create failed client_id=%d err=%v", q.ClientID, err)
		return entities.Quote{}, err
	}
	u.observer.Record(ctx, entities.FlowEvent{
		Module:        entities.ModuleQuotes,
		EntityID:      created.ID,
		Action:        entities.FlowActionCreate,
		ToStatus:      string(created.Status),
		RelatedModule: entities.ModuleClients,
		RelatedID:     created.ClientID,
	})
	return created, nil
}

// requireJob accepts a nil reference; a set one must name a stored job.
func requireJob(ctx context.Context, jobs interfaces.IJobRepository, id *uint) error {
	if id == nil {
		return nil
	}
	if *id == 0 {
		return ErrJobNotFound
	}
	j, err := jobs.GetByID(ctx, *id)
	if err != nil {
		return err
	}
	if j.ID == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id uint) (entities.Quote, error) {
	if id == 0 {
		return entities.Quote{}, ErrInvalidID
	}
	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == 0 {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) List(ctx context.Context, filter entities.QuoteFilter) ([]entities.Quote, error) {
	return u.repo.List(ctx, filter)
}

func (u *QuoteUseCase) Update(ctx context.Context, id uint, patch QuotePatch) (entities.Quote, error) {
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}

	if patch.JobID != nil {
		if err := requireJob(ctx, u.jobs, patch.JobID); err != nil {
			return entities.Quote{}, err
		}
		jobID := *patch.JobID
		q.JobID = &jobID
	}
	if patch.Amount != nil {
		if *patch.Amount < 0 {
			return entities.Quote{}, ErrInvalidAmount
		}
		q.Amount = *patch.Amount
	}
	if patch.ValidUntil != nil {
		q.ValidUntil = patch.ValidUntil
	}
	if patch.Terms != nil {
		q.Terms = strings.TrimSpace(*patch.Terms)
	}
	if patch.Notes != nil {
		q.Notes = *patch.Notes
	}

	updated, err := u.repo.Update(ctx, q)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == 0 {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return updated, nil
}

func (u *QuoteUseCase) UpdateStatus(ctx context.Context, id uint, status entities.QuoteStatus) (entities.Quote, error) {
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	write, err := checkStatusChange(q.Status, status)
	if err != nil {
		u.observer.Transition(entities.ModuleQuotes, err)
		return entities.Quote{}, err
	}
	if !write {
		return q, nil
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status)
	if err == nil && updated.ID == 0 {
		err = ErrQuoteNotFound
	}
	u.observer.Transition(entities.ModuleQuotes, err)
	if err != nil {
		log.Printf("[quote][usecase] status update failed quote_id=%d to=%s err=%v", id, status, err)
		return entities.Quote{}, err
	}
	u.observer.Record(ctx, statusChangeEvent(entities.ModuleQuotes, id, string(q.Status), string(status)))
	return updated, nil
}

func (u *QuoteUseCase) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrInvalidID
	}
	found, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrQuoteNotFound
	}
	u.observer.Record(ctx, entities.FlowEvent{Module: entities.ModuleQuotes, EntityID: id, Action: entities.FlowActionDelete})
	return nil
}
