package interfaces

import (
	"context"
	"voltflow_crm/internal/domain/entities"
)

//go:generate mockgen -source=flow_event_repository_interface.go -destination=mocks/mock_flow_event_repository_interface.go -package=mock_interfaces

// IFlowEventRepository abstracts DynamoDB persistence for the activity feed.
type IFlowEventRepository interface {
	Create(ctx context.Context, e entities.FlowEvent) (entities.FlowEvent, error)
	ListByEntity(ctx context.Context, module entities.Module, entityID uint) ([]entities.FlowEvent, error)
	ListRecent(ctx context.Context, limit int) ([]entities.FlowEvent, error)
}
