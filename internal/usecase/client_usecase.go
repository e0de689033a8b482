package usecase

import (
	"context"
	"log"
	"strings"

	"voltflow_crm/internal/domain/entities"
	"voltflow_crm/internal/usecase/interfaces"
	"voltflow_crm/pkg/phone"
)

//go:generate mockgen -source=client_usecase.go -destination=../adapter/http/handlers/mocks/mock_client_usecase.go -package=mocks

type ClientPatch struct {
	Name           *string
	Email          *string
	Phone          *string
	Address        *string
	EstimatedValue *float64
	Source         *string
	Notes          *string
	AssignedTo     *string
}

type IClientUseCase interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id uint) (entities.Client, error)
	List(ctx context.Context, filter entities.ClientFilter) ([]entities.Client, error)
	Update(ctx context.Context, id uint, patch ClientPatch) (entities.Client, error)
	UpdateStatus(ctx context.Context, id uint, status entities.ClientStatus) (entities.Client, error)
	Delete(ctx context.Context, id uint) error
}

type ClientUseCase struct {
	repo        interfaces.IClientRepository
	observer    *FlowObserver
	phoneRegion string
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.IClientRepository, observer *FlowObserver, phoneRegion string) *ClientUseCase {
	return &ClientUseCase{repo: repo, observer: observer, phoneRegion: phoneRegion}
}

// Create stores a directly created client. The lead reference is only ever set
// by a lead conversion.
func (u *ClientUseCase) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return entities.Client{}, ErrInvalidInput
	}
	if c.EstimatedValue < 0 {
		return entities.Client{}, ErrInvalidAmount
	}
	if c.Status == "" {
		c.Status = entities.ClientStatusProspective
	} else if _, err := entities.ParseClientStatus(string(c.Status)); err != nil {
		return entities.Client{}, err
	}

	c.ID = 0
	c.LeadID = nil
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = phone.Normalize(c.Phone, u.phoneRegion)

	created, err := u.repo.Create(ctx, c)
	if err != nil {
		log.Printf("[client][usecase] create failed err=%v", err)
		return entities.Client{}, err
	}
	u.observer.Record(ctx, entities.FlowEvent{
		Module:   entities.ModuleClients,
		EntityID: created.ID,
		Action:   entities.FlowActionCreate,
		ToStatus: string(created.Status),
	})
	return created, nil
}

func (u *ClientUseCase) GetByID(ctx context.Context, id uint) (entities.Client, error) {
	if id == 0 {
		return entities.Client{}, ErrInvalidID
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == 0 {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *ClientUseCase) List(ctx context.Context, filter entities.ClientFilter) ([]entities.Client, error) {
	return u.repo.List(ctx, filter)
}

func (u *ClientUseCase) Update(ctx context.Context, id uint, patch ClientPatch) (entities.Client, error) {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return entities.Client{}, ErrInvalidInput
		}
		c.Name = name
	}
	if patch.Email != nil {
		c.Email = strings.TrimSpace(*patch.Email)
	}
	if patch.Phone != nil {
		c.Phone = phone.Normalize(*patch.Phone, u.phoneRegion)
	}
	if patch.Address != nil {
		c.Address = *patch.Address
	}
	if patch.EstimatedValue != nil {
		if *patch.EstimatedValue < 0 {
			return entities.Client{}, ErrInvalidAmount
		}
		c.EstimatedValue = *patch.EstimatedValue
	}
	if patch.Source != nil {
		c.Source = strings.TrimSpace(*patch.Source)
	}
	if patch.Notes != nil {
		c.Notes = *patch.Notes
	}
	if patch.AssignedTo != nil {
		c.AssignedTo = strings.TrimSpace(*patch.AssignedTo)
	}

	updated, err := u.repo.Update(ctx, c)
	if err != nil {
		return entities.Client{}, err
	}
	if updated.ID == 0 {
		return entities.Client{}, ErrClientNotFound
	}
	return updated, nil
}

func (u *ClientUseCase) UpdateStatus(ctx context.Context, id uint, status entities.ClientStatus) (entities.Client, error) {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	write, err := checkStatusChange(c.Status, status)
	if err != nil {
		u.observer.Transition(entities.ModuleClients, err)
		return entities.Client{}, err
	}
	if !write {
		return c, nil
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status)
	if err == nil && updated.ID == 0 {
		err = ErrClientNotFound
	}
	u.observer.Transition(entities.ModuleClients, err)
	if err != nil {
		log.Printf("[client][usecase] status update failed client_id=%d to=%s err=%v", id, status, err)
		return entities.Client{}, err
	}
	u.observer.Record(ctx, statusChangeEvent(entities.ModuleClients, id, string(c.Status), string(status)))
	return updated, nil
}

// Delete removes the client together with its jobs, quotes and invoices.
func (u *ClientUseCase) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrInvalidID
	}
	found, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrClientNotFound
	}
	u.observer.Record(ctx, entities.FlowEvent{Module: entities.ModuleClients, EntityID: id, Action: entities.FlowActionDelete})
	return nil
}
