package metrics

import (
	"quadcraft/internal/meshing"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "quadcraft"

// MeshMetrics exports mesher diagnostics. It implements meshing.Recorder.
type MeshMetrics struct {
	rebuilds prometheus.Counter
	failures prometheus.Counter
	vertices prometheus.Gauge
	usage    prometheus.Gauge
	duration prometheus.Histogram
}

var _ meshing.Recorder = (*MeshMetrics)(nil)

// NewMeshMetrics creates the collectors and registers them with reg.
func NewMeshMetrics(reg prometheus.Registerer) *MeshMetrics {
	m := &MeshMetrics{
		rebuilds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mesh_rebuilds_total",
			Help:      "Completed chunk meshing passes.",
		}),
		failures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mesh_failures_total",
			Help:      "Meshing passes aborted on a vertex capacity overflow.",
		}),
		vertices: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "mesh_vertices",
			Help:      "Vertices emitted by the latest meshing pass.",
		}),
		usage: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "mesh_buffer_usage_ratio",
			Help:      "Fraction of the vertex buffer used by the latest meshing pass.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "mesh_duration_seconds",
			Help:      "Wall time of a meshing pass.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 12),
		}),
	}
	reg.MustRegister(m.rebuilds, m.failures, m.vertices, m.usage, m.duration)
	return m
}

// RecordMesh records a successful pass.
func (m *MeshMetrics) RecordMesh(s meshing.Stats) {
	m.rebuilds.Inc()
	m.vertices.Set(float64(s.Vertices))
	m.usage.Set(float64(s.Usage))
	m.duration.Observe(s.Duration.Seconds())
}

// RecordFailure records an aborted pass.
func (m *MeshMetrics) RecordFailure() {
	m.failures.Inc()
}
