package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestFlowMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewFlowMetrics(reg)

	m.ObserveConversion("lead_to_client", "success")
	m.ObserveConversion("lead_to_client", "success")
	m.ObserveConversion("quote_to_invoice", "rejected")
	m.ObserveTransition("jobs", "error")
	m.ObserveSweep("invoices", 3)
	m.ObserveSweep("quotes", 0)

	if got := testutil.ToFloat64(m.conversions.WithLabelValues("lead_to_client", "success")); got != 2 {
		t.Fatalf("unexpected conversions: %v", got)
	}
	if got := testutil.ToFloat64(m.transitions.WithLabelValues("jobs", "error")); got != 1 {
		t.Fatalf("unexpected transitions: %v", got)
	}
	if got := testutil.ToFloat64(m.swept.WithLabelValues("invoices")); got != 3 {
		t.Fatalf("unexpected swept: %v", got)
	}
	if got := testutil.ToFloat64(m.sweeps); got != 2 {
		t.Fatalf("unexpected sweeps: %v", got)
	}

	expected := `
# HELP voltflow_conversions_total Lead to client and quote to invoice conversions by outcome.
# TYPE voltflow_conversions_total counter
voltflow_conversions_total{kind="lead_to_client",outcome="success"} 2
voltflow_conversions_total{kind="quote_to_invoice",outcome="rejected"} 1
`
	if err := testutil.GatherAndCompare(reg, strings.NewReader(expected), "voltflow_conversions_total"); err != nil {
		t.Fatalf("unexpected exposition: %v", err)
	}
}
