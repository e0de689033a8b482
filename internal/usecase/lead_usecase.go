package usecase

import (
	"context"
	"log"
	"strings"

	"voltflow_crm/internal/domain/entities"
	"voltflow_crm/internal/usecase/interfaces"
	"voltflow_crm/pkg/phone"
)

//go:generate mockgen -source=lead_usecase.go -destination=../adapter/http/handlers/mocks/mock_lead_usecase.go -package=mocks

// LeadPatch carries the editable lead fields; nil means unchanged. Status is
// changed through ILeadConversionUseCase.ChangeLeadStatus only.
type LeadPatch struct {
	Name           *string
	Email          *string
	Phone          *string
	Source         *entities.LeadSource
	EstimatedValue *float64
	Notes          *string
	AssignedTo     *string
}

type ILeadUseCase interface {
	Create(ctx context.Context, l entities.Lead) (entities.Lead, error)
	GetByID(ctx context.Context, id uint) (entities.Lead, error)
	List(ctx context.Context, filter entities.LeadFilter) ([]entities.Lead, error)
	Update(ctx context.Context, id uint, patch LeadPatch) (entities.Lead, error)
	Delete(ctx context.Context, id uint) error
}

type LeadUseCase struct {
	repo        interfaces.ILeadRepository
	observer    *FlowObserver
	phoneRegion string
}

var _ ILeadUseCase = (*LeadUseCase)(nil)

func NewLeadUseCase(repo interfaces.ILeadRepository, observer *FlowObserver, phoneRegion string) *LeadUseCase {
	return &LeadUseCase{repo: repo, observer: observer, phoneRegion: phoneRegion}
}

func (u *LeadUseCase) Create(ctx context.Context, l entities.Lead) (entities.Lead, error) {
	l.Name = strings.TrimSpace(l.Name)
	if l.Name == "" {
		return entities.Lead{}, ErrInvalidInput
	}
	if l.EstimatedValue < 0 {
		return entities.Lead{}, ErrInvalidAmount
	}
	if l.Source == "" {
		l.Source = entities.LeadSourceOther
	} else if !entities.IsValidLeadSource(string(l.Source)) {
		return entities.Lead{}, ErrInvalidInput
	}

	switch {
	case l.Status == "":
		l.Status = entities.LeadStatusNew
	case l.Status == entities.LeadStatusConverted:
		// only a conversion may produce a converted lead
		return entities.Lead{}, ErrInvalidTransition
	default:
		if _, err := entities.ParseLeadStatus(string(l.Status)); err != nil {
			return entities.Lead{}, err
		}
	}

	l.ID = 0
	l.Email = strings.TrimSpace(l.Email)
	l.Phone = phone.Normalize(l.Phone, u.phoneRegion)

	created, err := u.repo.Create(ctx, l)
	if err != nil {
		log.Printf("[lead][usecase] create failed err=%v", err)
		return entities.Lead{}, err
	}
	u.observer.Record(ctx, entities.FlowEvent{
		Module:   entities.ModuleLeads,
		EntityID: created.ID,
		Action:   entities.FlowActionCreate,
		ToStatus: string(created.Status),
	})
	return created, nil
}

func (u *LeadUseCase) GetByID(ctx context.Context, id uint) (entities.Lead, error) {
	if id == 0 {
		return entities.Lead{}, ErrInvalidID
	}
	l, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Lead{}, err
	}
	if l.ID == 0 {
		return entities.Lead{}, ErrLeadNotFound
	}
	return l, nil
}

func (u *LeadUseCase) List(ctx context.Context, filter entities.LeadFilter) ([]entities.Lead, error) {
	return u.repo.List(ctx, filter)
}

func (u *LeadUseCase) Update(ctx context.Context, id uint, patch LeadPatch) (entities.Lead, error) {
	l, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Lead{}, err
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return entities.Lead{}, ErrInvalidInput
		}
		l.Name = name
	}
	if patch.Email != nil {
		l.Email = strings.TrimSpace(*patch.Email)
	}
	if patch.Phone != nil {
		l.Phone = phone.Normalize(*patch.Phone, u.phoneRegion)
	}
	if patch.Source != nil {
		if !entities.IsValidLeadSource(string(*patch.Source)) {
			return entities.Lead{}, ErrInvalidInput
		}
		l.Source = *patch.Source
	}
	if patch.EstimatedValue != nil {
		if *patch.EstimatedValue < 0 {
			return entities.Lead{}, ErrInvalidAmount
		}
		l.EstimatedValue = *patch.EstimatedValue
	}
	if patch.Notes != nil {
		l.Notes = *patch.Notes
	}
	if patch.AssignedTo != nil {
		l.AssignedTo = strings.TrimSpace(*patch.AssignedTo)
	}

	updated, err := u.repo.Update(ctx, l)
	if err != nil {
		return entities.Lead{}, err
	}
	if updated.ID == 0 {
		return entities.Lead{}, ErrLeadNotFound
	}
	return updated, nil
}

// Delete is irreversible. A client converted from the lead keeps existing with
// its lead reference cleared.
func (u *LeadUseCase) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrInvalidID
	}
	found, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrLeadNotFound
	}
	u.observer.Record(ctx, entities.FlowEvent{Module: entities.ModuleLeads, EntityID: id, Action: entities.FlowActionDelete})
	return nil
}
