package batch

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome label values for the instances counter.
const (
	OutcomeConnected    = "connected"
	OutcomeDisconnected = "disconnected"
	OutcomeInvalid      = "invalid"
)

// Metrics holds the solver's Prometheus collectors in a private registry,
// so several solvers never collide on registration.
type Metrics struct {
	registry  *prometheus.Registry
	instances *prometheus.CounterVec
	passes    prometheus.Counter
	duration  prometheus.Histogram
}

// NewMetrics creates and registers the solver collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		instances: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "evenflow",
			Name:      "instances_total",
			Help:      "Data sets solved, by outcome.",
		}, []string{"outcome"}),
		passes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "evenflow",
			Name:      "kruskal_passes_total",
			Help:      "Kruskal passes run across all data sets.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "evenflow",
			Name:      "solve_duration_seconds",
			Help:      "Wall time spent solving one data set.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}),
	}
	m.registry.MustRegister(m.instances, m.passes, m.duration)

	return m
}

// Registry exposes the underlying registry as a Gatherer.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Instances returns the counter for one outcome label.
func (m *Metrics) Instances(outcome string) prometheus.Counter {
	return m.instances.WithLabelValues(outcome)
}

// Passes returns the Kruskal pass counter.
func (m *Metrics) Passes() prometheus.Counter {
	return m.passes
}

// Duration returns the per-data-set solve time histogram.
func (m *Metrics) Duration() prometheus.Histogram {
	return m.duration
}

// WriteFile dumps all metrics in the text exposition format, suitable for
// a node_exporter textfile collector.
func (m *Metrics) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
