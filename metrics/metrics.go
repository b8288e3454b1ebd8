// Package metrics mirrors the teacher's hand-rolled atomic Stats
// counters (see strex.Stats) into Prometheus, the same
// prometheus.CounterVec/HistogramVec shape as
// bargom-codeai/pkg/metrics.Registry, scaled down to the three numbers
// a literal-gap matcher actually produces: how many compiles
// succeeded or failed, how many match calls ran, and how long they
// took.
//
// Registration is opt-in. A StrexSet never touches Prometheus unless a
// caller builds a *Metrics and registers it; strex.Stats remains the
// always-on, lock-free source of truth.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for one or more StrexSets.
// A single Metrics may be shared across many compiled sets sharing a
// namespace, the way the teacher's Registry is process-wide.
type Metrics struct {
	compileTotal  *prometheus.CounterVec
	matchesTotal  prometheus.Counter
	matchDuration prometheus.Histogram
}

// New builds a Metrics with the given namespace (the Prometheus metric
// name prefix, e.g. "strex"). Collectors are created but not
// registered with any registry until Register is called.
func New(namespace string) *Metrics {
	return &Metrics{
		compileTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "compile_total",
				Help:      "Total number of Compile calls, by result.",
			},
			[]string{"result"},
		),
		matchesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "matches_total",
				Help:      "Total number of Matches/IsMatch calls.",
			},
		),
		matchDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "match_duration_seconds",
				Help:      "Time spent in a single Matches call.",
				Buckets:   prometheus.DefBuckets,
			},
		),
	}
}

// Register adds m's collectors to reg. Call once per registry; a
// second Register against the same registry returns the
// AlreadyRegisteredError reported by Prometheus.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{m.compileTotal, m.matchesTotal, m.matchDuration} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// ObserveCompile records the outcome of one Compile/CompileWithConfig
// call.
func (m *Metrics) ObserveCompile(err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.compileTotal.WithLabelValues(result).Inc()
}

// ObserveMatch records one Matches call's wall-clock duration.
func (m *Metrics) ObserveMatch(d time.Duration) {
	if m == nil {
		return
	}
	m.matchesTotal.Inc()
	m.matchDuration.Observe(d.Seconds())
}
