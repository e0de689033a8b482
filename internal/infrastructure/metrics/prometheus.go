package metrics

import (
	"voltflow_crm/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "voltflow"

// FlowMetrics exports pipeline counters to Prometheus.
type FlowMetrics struct {
	conversions *prometheus.CounterVec
	transitions *prometheus.CounterVec
	swept       *prometheus.CounterVec
	sweeps      prometheus.Counter
}

var _ interfaces.IFlowMetrics = (*FlowMetrics)(nil)

func NewFlowMetrics(reg prometheus.Registerer) *FlowMetrics {
	f := promauto.With(reg)
	return &FlowMetrics{
		conversions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "conversions_total",
			Help:      "Lead to client and quote to invoice conversions by outcome.",
		}, []string{"kind", "outcome"}),
		transitions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "status_transitions_total",
			Help:      "Status writes by module and outcome.",
		}, []string{"module", "outcome"}),
		swept: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sweeper_updated_total",
			Help:      "Records moved by the flow sweeper.",
		}, []string{"module"}),
		sweeps: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sweeper_runs_total",
			Help:      "Flow sweeper passes per module.",
		}),
	}
}

func (m *FlowMetrics) ObserveConversion(kind, outcome string) {
	m.conversions.WithLabelValues(kind, outcome).Inc()
}

func (m *FlowMetrics) ObserveTransition(module, outcome string) {
	m.transitions.WithLabelValues(module, outcome).Inc()
}

func (m *FlowMetrics) ObserveSweep(module string, updated int) {
	m.sweeps.Inc()
	if updated > 0 {
		m.swept.WithLabelValues(module).Add(float64(updated))
	}
}
