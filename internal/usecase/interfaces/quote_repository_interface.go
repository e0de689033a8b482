package interfaces

import (
	"context"
	"time"
	"voltflow_crm/internal/domain/entities"
)

//go:generate mockgen -source=quote_repository_interface.go -destination=mocks/mock_quote_repository_interface.go -package=mock_interfaces

// IQuoteRepository abstracts persistence for Quote.
//
// ListValidUntilBefore feeds the expiry sweep: quotes in one of statuses whose
// valid_until is set and earlier than before.
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id uint) (entities.Quote, error)
	List(ctx context.Context, filter entities.QuoteFilter) ([]entities.Quote, error)
	ListValidUntilBefore(ctx context.Context, before time.Time, statuses []entities.QuoteStatus) ([]entities.Quote, error)
	Update(ctx context.Context, q entities.Quote) (entities.Quote, error)
	UpdateStatus(ctx context.Context, id uint, status entities.QuoteStatus) (entities.Quote, error)
	UpdateStatusFrom(ctx context.Context, id uint, from, to entities.QuoteStatus) (entities.Quote, error)
	Delete(ctx context.Context, id uint) (bool, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
}
