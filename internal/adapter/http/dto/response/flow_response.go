package response

import (
	"time"

	"voltflow_crm/internal/domain/entities"
	"voltflow_crm/internal/domain/flow"
)

type StagesResponse struct {
	Module string                 `json:"module"`
	Stages []flow.StageDescriptor `json:"stages"`
}

type TransitionCheckResponse struct {
	Module  string `json:"module"`
	From    string `json:"from"`
	To      string `json:"to"`
	Allowed bool   `json:"allowed"`
}

type ActionsResponse struct {
	Module  string                  `json:"module"`
	Status  string                  `json:"status"`
	Actions []flow.ActionDescriptor `json:"actions"`
}

type FlowEventResponse struct {
	ID            string    `json:"id"`
	Module        string    `json:"module"`
	EntityID      uint      `json:"entity_id"`
	Action        string    `json:"action"`
	FromStatus    string    `json:"from_status,omitempty"`
	ToStatus      string    `json:"to_status,omitempty"`
	RelatedModule string    `json:"related_module,omitempty"`
	RelatedID     uint      `json:"related_id,omitempty"`
	Details       string    `json:"details,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromFlowEvents(in []entities.FlowEvent) []FlowEventResponse {
	out := make([]FlowEventResponse, 0, len(in))
	for _, e := range in {
		out = append(out, FlowEventResponse{
			ID:            e.ID,
			Module:        string(e.Module),
			EntityID:      e.EntityID,
			Action:        string(e.Action),
			FromStatus:    e.FromStatus,
			ToStatus:      e.ToStatus,
			RelatedModule: string(e.RelatedModule),
			RelatedID:     e.RelatedID,
			Details:       e.Details,
			CreatedAt:     e.CreatedAt,
		})
	}
	return out
}
