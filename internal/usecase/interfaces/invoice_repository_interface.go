package interfaces

import (
	"context"
	"time"
	"voltflow_crm/internal/domain/entities"
)

//go:generate mockgen -source=invoice_repository_interface.go -destination=mocks/mock_invoice_repository_interface.go -package=mock_interfaces

// IInvoiceRepository abstracts persistence for Invoice.
//
// The store enforces at most one invoice per quote_id; a second insert fails
// with ErrConflict.
type IInvoiceRepository interface {
	Create(ctx context.Context, i entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id uint) (entities.Invoice, error)
	GetByQuoteID(ctx context.Context, quoteID uint) (entities.Invoice, error)
	List(ctx context.Context, filter entities.InvoiceFilter) ([]entities.Invoice, error)
	ListDueBefore(ctx context.Context, before time.Time, statuses []entities.InvoiceStatus) ([]entities.Invoice, error)
	Update(ctx context.Context, i entities.Invoice) (entities.Invoice, error)
	UpdateStatus(ctx context.Context, id uint, status entities.InvoiceStatus) (entities.Invoice, error)
	UpdateStatusFrom(ctx context.Context, id uint, from, to entities.InvoiceStatus) (entities.Invoice, error)
	Delete(ctx context.Context, id uint) (bool, error)
}
