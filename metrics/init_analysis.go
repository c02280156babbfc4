package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initAnalysisMetrics() {
	r.AnalysesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "geotopo_analyses_total",
			Help: "Total number of topology analyses",
		},
		[]string{"status"}, // ok, error
	)

	r.AnalysisDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "geotopo_analysis_duration_seconds",
			Help:    "Duration of topology analyses in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		},
	)

	r.Geobodies = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "geotopo_geobodies",
			Help: "Number of distinct labels in the last analysed model",
		},
	)

	r.Edges = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "geotopo_edges",
			Help: "Number of contact edges in the last analysed model",
		},
	)

	r.Voxels = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "geotopo_voxels",
			Help: "Number of voxels in the last analysed model",
		},
	)

	r.SplitGeobodies = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "geotopo_split_geobodies",
			Help: "Number of labels forming more than one connected region",
		},
	)

	r.DefectsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "geotopo_defects_total",
			Help: "Total number of data defects that aborted an analysis",
		},
		[]string{"kind"},
	)
}
