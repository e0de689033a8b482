package usecase

import (
	"context"

	"voltflow_crm/internal/domain/entities"
	"voltflow_crm/internal/usecase/interfaces"
)

//go:generate mockgen -source=activity_usecase.go -destination=../adapter/http/handlers/mocks/mock_activity_usecase.go -package=mocks

const (
	DefaultActivityLimit = 20
	MaxActivityLimit     = 100
)

// IActivityUseCase reads the pipeline activity feed.
type IActivityUseCase interface {
	Recent(ctx context.Context, limit int) ([]entities.FlowEvent, error)
	ForEntity(ctx context.Context, module string, id uint) ([]entities.FlowEvent, error)
}

type ActivityUseCase struct {
	repo interfaces.IFlowEventRepository
}

var _ IActivityUseCase = (*ActivityUseCase)(nil)

func NewActivityUseCase(repo interfaces.IFlowEventRepository) *ActivityUseCase {
	return &ActivityUseCase{repo: repo}
}

// Recent returns the newest events first. limit is clamped to [1, MaxActivityLimit];
// zero or less means DefaultActivityLimit.
func (u *ActivityUseCase) Recent(ctx context.Context, limit int) ([]entities.FlowEvent, error) {
	switch {
	case limit <= 0:
		limit = DefaultActivityLimit
	case limit > MaxActivityLimit:
		limit = MaxActivityLimit
	}
	return u.repo.ListRecent(ctx, limit)
}

func (u *ActivityUseCase) ForEntity(ctx context.Context, module string, id uint) ([]entities.FlowEvent, error) {
	m, err := parseModule(module)
	if err != nil {
		return nil, err
	}
	if id == 0 {
		return nil, ErrInvalidID
	}
	return u.repo.ListByEntity(ctx, m, id)
}
