package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"voltflow_crm/internal/usecase"
)

type fakeSweeper struct {
	calls atomic.Int32
	res   usecase.SweepResult
	err   error
}

func (f *fakeSweeper) Sweep(ctx context.Context) (usecase.SweepResult, error) {
	f.calls.Add(1)
	if _, ok := ctx.Deadline(); !ok {
		return usecase.SweepResult{}, errors.New("sweep ran without deadline")
	}
	return f.res, f.err
}

func TestNewFlowSweepScheduler(t *testing.T) {
	if _, err := NewFlowSweepScheduler("not a schedule", &fakeSweeper{}); err == nil {
		t.Fatalf("expected invalid spec error")
	}
	s, err := NewFlowSweepScheduler("@hourly", &fakeSweeper{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got := len(s.cron.Entries()); got != 1 {
		t.Fatalf("expected one entry, got %d", got)
	}
}

func TestFlowSweepScheduler_RunOnce(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		sw := &fakeSweeper{res: usecase.SweepResult{OverdueInvoices: 2, ExpiredQuotes: 1}}
		s, err := NewFlowSweepScheduler("@hourly", sw)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		res := s.RunOnce(context.Background())
		if res.OverdueInvoices != 2 || res.ExpiredQuotes != 1 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("error keeps partial result", func(t *testing.T) {
		sw := &fakeSweeper{res: usecase.SweepResult{OverdueInvoices: 1}, err: errors.New("db down")}
		s, _ := NewFlowSweepScheduler("@hourly", sw)
		res := s.RunOnce(context.Background())
		if res.OverdueInvoices != 1 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestFlowSweepScheduler_StartStop(t *testing.T) {
	sw := &fakeSweeper{}
	s, err := NewFlowSweepScheduler("@every 1s", sw)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	s.Start()

	deadline := time.Now().Add(3 * time.Second)
	for sw.calls.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(50 * time.Millisecond)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	s.Stop(ctx)

	if sw.calls.Load() == 0 {
		t.Fatalf("expected at least one scheduled sweep")
	}
}
