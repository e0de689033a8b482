package usecase

import (
	"strings"

	"voltflow_crm/internal/domain/entities"
	"voltflow_crm/internal/domain/flow"
)

//go:generate mockgen -source=flow_usecase.go -destination=../adapter/http/handlers/mocks/mock_flow_usecase.go -package=mocks

// IFlowUseCase exposes the read-only side of the pipeline state machine to the UI:
// stage metadata, transition checks and the follow-up actions to offer.
type IFlowUseCase interface {
	Stages(module string) ([]flow.StageDescriptor, error)
	GetStageInfo(module, status string) (flow.StageDescriptor, bool, error)
	IsTransitionAllowed(module, from, to string) (bool, error)
	GetNextActions(module, status string) ([]flow.ActionDescriptor, error)
}

type FlowUseCase struct{}

var _ IFlowUseCase = (*FlowUseCase)(nil)

func NewFlowUseCase() *FlowUseCase {
	return &FlowUseCase{}
}

func (u *FlowUseCase) Stages(module string) ([]flow.StageDescriptor, error) {
	m, err := parseModule(module)
	if err != nil {
		return nil, err
	}
	return flow.Stages(m), nil
}

// GetStageInfo reports found=false for an unknown status; only an unknown
// module is an error.
func (u *FlowUseCase) GetStageInfo(module, status string) (flow.StageDescriptor, bool, error) {
	m, err := parseModule(module)
	if err != nil {
		return flow.StageDescriptor{}, false, err
	}
	d, ok := flow.GetStageInfo(m, status)
	return d, ok, nil
}

func (u *FlowUseCase) IsTransitionAllowed(module, from, to string) (bool, error) {
	m, err := parseModule(module)
	if err != nil {
		return false, err
	}
	return flow.IsTransitionAllowed(m, from, to), nil
}

func (u *FlowUseCase) GetNextActions(module, status string) ([]flow.ActionDescriptor, error) {
	m, err := parseModule(module)
	if err != nil {
		return nil, err
	}
	return flow.NextActions(m, status), nil
}

func parseModule(raw string) (entities.Module, error) {
	m, ok := entities.ParseModule(strings.TrimSpace(raw))
	if !ok {
		return "", ErrUnknownModule
	}
	return m, nil
}
