package usecase

import (
	"context"
	"log"
	"time"

	"voltflow_crm/internal/domain/entities"
	"voltflow_crm/internal/usecase/interfaces"
)

// SweepResult counts the records moved by one sweep.
type SweepResult struct {
	OverdueInvoices int
	ExpiredQuotes   int
}

// IFlowSweeperUseCase applies the time based transitions: unpaid invoices past
// their due date become overdue and open quotes past valid_until expire. A
// record whose status changed after it was listed is skipped.
type IFlowSweeperUseCase interface {
	Sweep(ctx context.Context) (SweepResult, error)
}

type FlowSweeperUseCase struct {
	quotes   interfaces.IQuoteRepository
	invoices interfaces.IInvoiceRepository
	observer *FlowObserver
	now      func() time.Time
}

var _ IFlowSweeperUseCase = (*FlowSweeperUseCase)(nil)

var (
	overdueCandidates = []entities.InvoiceStatus{entities.InvoiceStatusSent, entities.InvoiceStatusViewed}
	expiryCandidates  = []entities.QuoteStatus{entities.QuoteStatusSent, entities.QuoteStatusReviewed}
)

func NewFlowSweeperUseCase(quotes interfaces.IQuoteRepository, invoices interfaces.IInvoiceRepository, observer *FlowObserver) *FlowSweeperUseCase {
	return &FlowSweeperUseCase{
		quotes:   quotes,
		invoices: invoices,
		observer: observer,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Sweep keeps going past per-record failures and returns the first error seen
// after both passes ran.
func (u *FlowSweeperUseCase) Sweep(ctx context.Context) (SweepResult, error) {
	now := u.now()
	var res SweepResult

	overdue, invErr := u.sweepInvoices(ctx, now)
	res.OverdueInvoices = overdue
	expired, quoteErr := u.sweepQuotes(ctx, now)
	res.ExpiredQuotes = expired

	u.observer.Sweep(entities.ModuleInvoices, overdue)
	u.observer.Sweep(entities.ModuleQuotes, expired)
	log.Printf("[flow][sweeper] done overdue_invoices=%d expired_quotes=%d", overdue, expired)

	if invErr != nil {
		return res, invErr
	}
	return res, quoteErr
}

func (u *FlowSweeperUseCase) sweepInvoices(ctx context.Context, now time.Time) (int, error) {
	due, err := u.invoices.ListDueBefore(ctx, now, overdueCandidates)
	if err != nil {
		log.Printf("[flow][sweeper] list due invoices failed err=%v", err)
		return 0, err
	}

	var (
		n     int
		first error
	)
	for _, inv := range due {
		write, err := checkStatusChange(inv.Status, entities.InvoiceStatusOverdue)
		if err != nil || !write {
			continue
		}
		updated, err := u.invoices.UpdateStatusFrom(ctx, inv.ID, inv.Status, entities.InvoiceStatusOverdue)
		if err != nil {
			log.Printf("[flow][sweeper] mark overdue failed invoice_id=%d err=%v", inv.ID, err)
			if first == nil {
				first = err
			}
			continue
		}
		if updated.ID == 0 {
			log.Printf("[flow][sweeper] invoice moved since listing, skipped invoice_id=%d from=%s", inv.ID, inv.Status)
			continue
		}
		n++
		u.observer.Record(ctx, autoTransitionEvent(entities.ModuleInvoices, inv.ID, string(inv.Status), string(entities.InvoiceStatusOverdue)))
	}
	return n, first
}

func (u *FlowSweeperUseCase) sweepQuotes(ctx context.Context, now time.Time) (int, error) {
	stale, err := u.quotes.ListValidUntilBefore(ctx, now, expiryCandidates)
	if err != nil {
		log.Printf("[flow][sweeper] list stale quotes failed err=%v", err)
		return 0, err
	}

	var (
		n     int
		first error
	)
	for _, q := range stale {
		write, err := checkStatusChange(q.Status, entities.QuoteStatusExpired)
		if err != nil || !write {
			continue
		}
		updated, err := u.quotes.UpdateStatusFrom(ctx, q.ID, q.Status, entities.QuoteStatusExpired)
		if err != nil {
			log.Printf("[flow][sweeper] expire failed quote_id=%d err=%v", q.ID, err)
			if first == nil {
				first = err
			}
			continue
		}
		if updated.ID == 0 {
			log.Printf("[flow][sweeper] quote moved since listing, skipped quote_id=%d from=%s", q.ID, q.Status)
			continue
		}
		n++
		u.observer.Record(ctx, autoTransitionEvent(entities.ModuleQuotes, q.ID, string(q.Status), string(entities.QuoteStatusExpired)))
	}
	return n, first
}

func autoTransitionEvent(module entities.Module, id uint, from, to string) entities.FlowEvent {
	e := statusChangeEvent(module, id, from, to)
	e.Action = entities.FlowActionAutoTransition
	return e
}
