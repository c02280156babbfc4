package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics of topology analysis runs
type Registry struct {
	AnalysesTotal    *prometheus.CounterVec
	AnalysisDuration prometheus.Histogram
	Geobodies        prometheus.Gauge
	Edges            prometheus.Gauge
	Voxels           prometheus.Gauge
	SplitGeobodies   prometheus.Gauge
	DefectsTotal     *prometheus.CounterVec

	registry *prometheus.Registry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
	}

	r.initAnalysisMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
