// internal/metrics/metrics.go
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "stealth"

// Metrics holds the collectors for line-of-sight updates.
type Metrics struct {
	registry     *prometheus.Registry
	TickSeconds  prometheus.Histogram
	Rays         prometheus.Counter
	SkippedTicks prometheus.Counter
}

// New registers the collectors on a private registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		TickSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "los",
			Name:      "tick_seconds",
			Help:      "Time spent rebuilding line-of-sight meshes in one frame.",
			Buckets:   prometheus.ExponentialBuckets(0.00005, 2, 12),
		}),
		Rays: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "los",
			Name:      "rays_total",
			Help:      "Line-of-sight rays traced.",
		}),
		SkippedTicks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "los",
			Name:      "ticks_skipped_total",
			Help:      "Mesh ticks skipped because no world was available.",
		}),
	}
	m.registry.MustRegister(m.TickSeconds, m.Rays, m.SkippedTicks)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
