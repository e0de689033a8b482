package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"voltflow_crm/internal/domain/entities"
	"voltflow_crm/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const (
	outcomeSuccess  = "success"
	outcomeRejected = "rejected"
	outcomeError    = "error"
)

// FlowObserver feeds the activity log and the pipeline metrics. Both sinks are
// optional and failures never reach the caller. A nil *FlowObserver is valid.
type FlowObserver struct {
	events  interfaces.IFlowEventRepository
	metrics interfaces.IFlowMetrics
}

func NewFlowObserver(events interfaces.IFlowEventRepository, metrics interfaces.IFlowMetrics) *FlowObserver {
	return &FlowObserver{events: events, metrics: metrics}
}

func (o *FlowObserver) Record(ctx context.Context, e entities.FlowEvent) {
	if o == nil || o.events == nil {
		return
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	if _, err := o.events.Create(ctx, e); err != nil {
		log.Printf("[flow][observer] failed recording event module=%s entity_id=%d action=%s err=%v", e.Module, e.EntityID, e.Action, err)
	}
}

func (o *FlowObserver) Conversion(kind string, err error) {
	if o == nil || o.metrics == nil {
		return
	}
	o.metrics.ObserveConversion(kind, outcomeOf(err))
}

func (o *FlowObserver) Transition(module entities.Module, err error) {
	if o == nil || o.metrics == nil {
		return
	}
	o.metrics.ObserveTransition(string(module), outcomeOf(err))
}

func (o *FlowObserver) Sweep(module entities.Module, updated int) {
	if o == nil || o.metrics == nil {
		return
	}
	o.metrics.ObserveSweep(string(module), updated)
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return outcomeSuccess
	case errors.Is(err, ErrInvalidTransition), errors.Is(err, ErrLeadAlreadyConverted), errors.Is(err, ErrQuoteAlreadyInvoiced):
		return outcomeRejected
	default:
		return outcomeError
	}
}

func statusChangeEvent(module entities.Module, id uint, from, to string) entities.FlowEvent {
	return entities.FlowEvent{
		Module:     module,
		EntityID:   id,
		Action:     entities.FlowActionStatusChange,
		FromStatus: from,
		ToStatus:   to,
	}
}
