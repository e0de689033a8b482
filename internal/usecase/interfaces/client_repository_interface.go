package interfaces

import (
	"context"
	"voltflow_crm/internal/domain/entities"
)

//go:generate mockgen -source=client_repository_interface.go -destination=mocks/mock_client_repository_interface.go -package=mock_interfaces

// IClientRepository abstracts persistence for Client.
//
// The store enforces at most one client per lead_id; a second insert fails
// with ErrConflict.
type IClientRepository interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id uint) (entities.Client, error)
	GetByLeadID(ctx context.Context, leadID uint) (entities.Client, error)
	List(ctx context.Context, filter entities.ClientFilter) ([]entities.Client, error)
	Update(ctx context.Context, c entities.Client) (entities.Client, error)
	UpdateStatus(ctx context.Context, id uint, status entities.ClientStatus) (entities.Client, error)
	Delete(ctx context.Context, id uint) (bool, error)
}
