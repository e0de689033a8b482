package interfaces

import (
	"context"
	"voltflow_crm/internal/domain/entities"
)

//go:generate mockgen -source=lead_repository_interface.go -destination=mocks/mock_lead_repository_interface.go -package=mock_interfaces

// ILeadRepository abstracts persistence for Lead.
//
// Lookups that match nothing return a zero-value Lead (ID == 0) and a nil error.
type ILeadRepository interface {
	Create(ctx context.Context, l entities.Lead) (entities.Lead, error)
	GetByID(ctx context.Context, id uint) (entities.Lead, error)
	List(ctx context.Context, filter entities.LeadFilter) ([]entities.Lead, error)
	Update(ctx context.Context, l entities.Lead) (entities.Lead, error)
	UpdateStatus(ctx context.Context, id uint, status entities.LeadStatus) (entities.Lead, error)
	Delete(ctx context.Context, id uint) (bool, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
}
