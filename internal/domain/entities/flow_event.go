package entities

import (
	"fmt"
	"time"
)

type FlowAction string

const (
	FlowActionCreate         FlowAction = "create"
	FlowActionDelete         FlowAction = "delete"
	FlowActionStatusChange   FlowAction = "status_change"
	FlowActionConvert        FlowAction = "convert"
	FlowActionUnconvert      FlowAction = "unconvert"
	FlowActionPayment        FlowAction = "payment"
	FlowActionAutoTransition FlowAction = "auto_transition"
)

// FlowEvent is one entry of the pipeline activity feed.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (entity_key-index): entity_key = "<module>#<entity id>", sort key created_at
//   - GSI2 (feed-index): constant feed partition, sort key created_at
type FlowEvent struct {
	ID            string     `json:"id"`
	Module        Module     `json:"module"`
	EntityID      uint       `json:"entity_id"`
	Action        FlowAction `json:"action"`
	FromStatus    string     `json:"from_status,omitempty"`
	ToStatus      string     `json:"to_status,omitempty"`
	RelatedModule Module     `json:"related_module,omitempty"`
	RelatedID     uint       `json:"related_id,omitempty"`
	Details       string     `json:"details,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func EntityKey(module Module, id uint) string {
	return fmt.Sprintf("%s#%d", module, id)
}
