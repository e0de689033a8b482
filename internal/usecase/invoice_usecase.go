package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"voltflow_crm/internal/domain/entities"
	"voltflow_crm/internal/usecase/interfaces"
)

//go:generate mockgen -source=invoice_usecase.go -destination=../adapter/http/handlers/mocks/mock_invoice_usecase.go -package=mocks

type InvoicePatch struct {
	JobID        *uint
	Amount       *float64
	DueDate      *time.Time
	PaymentTerms *string
	Notes        *string
}

type IInvoiceUseCase interface {
	Create(ctx context.Context, i entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id uint) (entities.Invoice, error)
	List(ctx context.Context, filter entities.InvoiceFilter) ([]entities.Invoice, error)
	Update(ctx context.Context, id uint, patch InvoicePatch) (entities.Invoice, error)
	UpdateStatus(ctx context.Context, id uint, status entities.InvoiceStatus) (entities.Invoice, error)
	Delete(ctx context.Context, id uint) error
}

type InvoiceUseCase struct {
	repo     interfaces.IInvoiceRepository
	clients  interfaces.IClientRepository
	jobs     interfaces.IJobRepository
	observer *FlowObserver
	now      func() time.Time
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(repo interfaces.IInvoiceRepository, clients interfaces.IClientRepository, jobs interfaces.IJobRepository, observer *FlowObserver) *InvoiceUseCase {
	return &InvoiceUseCase{
		repo:     repo,
		clients:  clients,
		jobs:     jobs,
		observer: observer,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Create stores a directly created invoice. A missing due date defaults to 30
// days out and blank terms to DefaultPaymentTerms; the quote reference is only
// set by a quote conversion.
func (u *InvoiceUseCase) Create(ctx context.Context, i entities.Invoice) (entities.Invoice, error) {
	if i.Amount < 0 {
		return entities.Invoice{}, ErrInvalidAmount
	}
	if i.Status == "" {
		i.Status = entities.InvoiceStatusDraft
	} else if _, err := entities.ParseInvoiceStatus(string(i.Status)); err != nil {
		return entities.Invoice{}, err
	}
	if err := requireClient(ctx, u.clients, i.ClientID); err != nil {
		return entities.Invoice{}, err
	}
	if err := requireJob(ctx, u.jobs, i.JobID); err != nil {
		return entities.Invoice{}, err
	}

	i.ID = 0
	i.QuoteID = nil
	if i.DueDate.IsZero() {
		i.DueDate = u.now().Add(invoiceDueAfter)
	}
	i.PaymentTerms = strings.TrimSpace(i.PaymentTerms)
	if i.PaymentTerms == "" {
		i.PaymentTerms = entities.DefaultPaymentTerms
	}

	created, err := u.repo.Create(ctx, i)
	if err != nil {
		log.Printf("[invoice][usecase] create failed client_id=%d err=%v", i.ClientID, err)
		return entities.Invoice{}, err
	}
	u.observer.Record(ctx, entities.FlowEvent{
		Module:        entities.ModuleInvoices,
		EntityID:      created.ID,
		Action:        entities.FlowActionCreate,
		ToStatus:      string(created.Status),
		RelatedModule: entities.ModuleClients,
		RelatedID:     created.ClientID,
	})
	return created, nil
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, id uint) (entities.Invoice, error) {
	if id == 0 {
		return entities.Invoice{}, ErrInvalidID
	}
	i, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if i.ID == 0 {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return i, nil
}

func (u *InvoiceUseCase) List(ctx context.Context, filter entities.InvoiceFilter) ([]entities.Invoice, error) {
	return u.repo.List(ctx, filter)
}

func (u *InvoiceUseCase) Update(ctx context.Context, id uint, patch InvoicePatch) (entities.Invoice, error) {
	i, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}

	if patch.JobID != nil {
		if err := requireJob(ctx, u.jobs, patch.JobID); err != nil {
			return entities.Invoice{}, err
		}
		jobID := *patch.JobID
		i.JobID = &jobID
	}
	if patch.Amount != nil {
		if *patch.Amount < 0 {
			return entities.Invoice{}, ErrInvalidAmount
		}
		i.Amount = *patch.Amount
	}
	if patch.DueDate != nil {
		i.DueDate = *patch.DueDate
	}
	if patch.PaymentTerms != nil {
		terms := strings.TrimSpace(*patch.PaymentTerms)
		if terms == "" {
			terms = entities.DefaultPaymentTerms
		}
		i.PaymentTerms = terms
	}
	if patch.Notes != nil {
		i.Notes = *patch.Notes
	}

	updated, err := u.repo.Update(ctx, i)
	if err != nil {
		return entities.Invoice{}, err
	}
	if updated.ID == 0 {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return updated, nil
}

func (u *InvoiceUseCase) UpdateStatus(ctx context.Context, id uint, status entities.InvoiceStatus) (entities.Invoice, error) {
	i, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	write, err := checkStatusChange(i.Status, status)
	if err != nil {
		u.observer.Transition(entities.ModuleInvoices, err)
		return entities.Invoice{}, err
	}
	if !write {
		return i, nil
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status)
	if err == nil && updated.ID == 0 {
		err = ErrInvoiceNotFound
	}
	u.observer.Transition(entities.ModuleInvoices, err)
	if err != nil {
		log.Printf("[invoice][usecase] status update failed invoice_id=%d to=%s err=%v", id, status, err)
		return entities.Invoice{}, err
	}
	u.observer.Record(ctx, statusChangeEvent(entities.ModuleInvoices, id, string(i.Status), string(status)))
	return updated, nil
}

func (u *InvoiceUseCase) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrInvalidID
	}
	found, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrInvoiceNotFound
	}
	u.observer.Record(ctx, entities.FlowEvent{Module: entities.ModuleInvoices, EntityID: id, Action: entities.FlowActionDelete})
	return nil
}
