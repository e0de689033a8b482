package interfaces

import (
	"context"
	"voltflow_crm/internal/domain/entities"
)

//go:generate mockgen -source=invoice_payment_repository_interface.go -destination=mocks/mock_invoice_payment_repository_interface.go -package=mock_interfaces

// IInvoicePaymentRepository abstracts DynamoDB persistence for InvoicePayment.
type IInvoicePaymentRepository interface {
	Create(ctx context.Context, p entities.InvoicePayment) (entities.InvoicePayment, error)
	ListByInvoiceID(ctx context.Context, invoiceID uint) ([]entities.InvoicePayment, error)
}
