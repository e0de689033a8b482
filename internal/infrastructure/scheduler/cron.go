package scheduler

import (
	"context"
	"log"
	"time"

	"voltflow_crm/internal/usecase"

	"github.com/robfig/cron/v3"
)

const sweepTimeout = 5 * time.Minute

// FlowSweepScheduler runs the flow sweeper on a cron schedule. Overlapping
// runs are skipped.
type FlowSweepScheduler struct {
	cron    *cron.Cron
	sweeper usecase.IFlowSweeperUseCase
}

func NewFlowSweepScheduler(spec string, sweeper usecase.IFlowSweeperUseCase) (*FlowSweepScheduler, error) {
	s := &FlowSweepScheduler{
		cron:    cron.New(cron.WithChain(cron.Recover(cron.DefaultLogger), cron.SkipIfStillRunning(cron.DefaultLogger))),
		sweeper: sweeper,
	}
	if _, err := s.cron.AddFunc(spec, func() { s.RunOnce(context.Background()) }); err != nil {
		log.Printf("[flow][scheduler] invalid schedule spec=%q err=%v", spec, err)
		return nil, err
	}
	return s, nil
}

func (s *FlowSweepScheduler) Start() {
	log.Printf("[flow][scheduler] started")
	s.cron.Start()
}

// Stop waits for a running sweep to finish or ctx to expire.
func (s *FlowSweepScheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
	}
	log.Printf("[flow][scheduler] stopped")
}

func (s *FlowSweepScheduler) RunOnce(ctx context.Context) usecase.SweepResult {
	ctx, cancel := context.WithTimeout(ctx, sweepTimeout)
	defer cancel()

	res, err := s.sweeper.Sweep(ctx)
	if err != nil {
		log.Printf("[flow][scheduler] sweep finished with error overdue_invoices=%d expired_quotes=%d err=%v", res.OverdueInvoices, res.ExpiredQuotes, err)
		return res
	}
	log.Printf("[flow][scheduler] sweep ok overdue_invoices=%d expired_quotes=%d", res.OverdueInvoices, res.ExpiredQuotes)
	return res
}
