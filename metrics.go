package libemitter

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	modeEmit    = "emit"
	modeCollect = "collect"
)

// Metrics holds prometheus collectors shared by one or more emitters. Counters
// are labeled by dispatch mode only, event names are never used as labels. A
// nil *Metrics records nothing.
type Metrics struct {
	emissions   *prometheus.CounterVec
	invocations *prometheus.CounterVec
	failures    *prometheus.CounterVec
}

// NewMetrics builds the collectors under the given namespace. They are not
// registered until Register is called.
func NewMetrics(namespace string) *Metrics {
	labels := []string{"mode"}

	return &Metrics{
		emissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "emitter",
			Name:      "emissions_total",
			Help:      "Emissions that reached at least one listener.",
		}, labels),
		invocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "emitter",
			Name:      "listener_invocations_total",
			Help:      "Listener invocations started by an emission.",
		}, labels),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "emitter",
			Name:      "listener_failures_total",
			Help:      "Listener invocations that returned an error or panicked.",
		}, labels),
	}
}

// Register registers every collector on reg.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range m.Collectors() {
		if err := reg.Register(c); err != nil {
			return errors.Wrap(err, "cannot register emitter metrics")
		}
	}
	return nil
}

// Collectors returns the emission, invocation and failure counters, for callers
// that register them on their own.
func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{m.emissions, m.invocations, m.failures}
}

func (m *Metrics) emitted(mode string) {
	if m == nil {
		return
	}
	m.emissions.WithLabelValues(mode).Inc()
}

func (m *Metrics) invoked(mode string) {
	if m == nil {
		return
	}
	m.invocations.WithLabelValues(mode).Inc()
}

func (m *Metrics) failed(mode string) {
	if m == nil {
		return
	}
	m.failures.WithLabelValues(mode).Inc()
}
