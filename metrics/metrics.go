package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Panjichuan/gempy/label"
	"github.com/Panjichuan/gempy/topology"
)

// RecordAnalysis records a successful analysis and the size of its result
func (r *Registry) RecordAnalysis(res *topology.Result, duration time.Duration) {
	r.AnalysesTotal.WithLabelValues("ok").Inc()
	r.AnalysisDuration.Observe(duration.Seconds())

	nodes := res.Graph.Nodes()
	split := 0
	for _, n := range nodes {
		if n.Regions > 1 {
			split++
		}
	}
	r.Geobodies.Set(float64(len(nodes)))
	r.Edges.Set(float64(len(res.Edges)))
	r.Voxels.Set(float64(res.Field.Shape().Len()))
	r.SplitGeobodies.Set(float64(split))
}

// RecordFailure records a failed analysis and classifies the defect
func (r *Registry) RecordFailure(err error, duration time.Duration) {
	r.AnalysesTotal.WithLabelValues("error").Inc()
	r.AnalysisDuration.Observe(duration.Seconds())
	r.DefectsTotal.WithLabelValues(DefectKind(err)).Inc()
}

// DefectKind maps an analysis error to a short metric label value
func DefectKind(err error) string {
	switch {
	case errors.Is(err, label.ErrEncodingCollision):
		return "encoding_collision"
	case errors.Is(err, topology.ErrAmbiguousBoundary):
		return "ambiguous_boundary"
	case errors.Is(err, label.ErrUnresolvedLithology):
		return "unresolved_lithology"
	case errors.Is(err, topology.ErrLabelNotInSpace):
		return "label_not_in_space"
	case errors.Is(err, label.ErrSignatureCollision):
		return "signature_collision"
	case errors.Is(err, label.ErrFaultSide), errors.Is(err, label.ErrLithologyRange),
		errors.Is(err, label.ErrFaultCountMismatch):
		return "input_range"
	default:
		return "other"
	}
}

// WriteTextfile writes all metrics in the text exposition format, for the
// node exporter textfile collector
func (r *Registry) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
