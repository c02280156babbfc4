package topology_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Panjichuan/gempy/label"
	"github.com/Panjichuan/gempy/topology"
	"github.com/Panjichuan/gempy/voxel"
)

// TestAnalyze_TwoHalves: a 2-wide single-fault two-layer grid yields one
// edge between its two labels and centroids at the centre of each half.
func TestAnalyze_TwoHalves(t *testing.T) {
	lb, fb := twoHalves(t, voxel.Shape{NX: 2, NY: 2, NZ: 2})

	res, err := topology.Analyze(lb, fb, 2)
	require.NoError(t, err)

	assert.Equal(t, []label.Label{5, 10}, res.Field.Labels())
	require.Len(t, res.Edges, 1)
	assert.Equal(t, label.Pair{A: 5, B: 10}, res.Edges[0].Pair())
	assert.Equal(t, map[label.Label]topology.Point{
		5:  {X: 0, Y: 0.5, Z: 0.5},
		10: {X: 1, Y: 0.5, Z: 0.5},
	}, res.Centroids)
	assert.Equal(t, map[label.Label]int64{5: 1, 10: 2}, res.Lithology)

	assert.Equal(t, 4, res.Space.Len())
	assert.True(t, res.Matrix.Symmetric())
	ok, err := res.Matrix.Lookup("0101", "1010")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 4, res.Matrix.Count())
	assert.Len(t, res.Graph.Nodes(), 2)
}

// TestAnalyze_Section: a 2-D section model keeps its X contact when the
// thin Y axis is not cropped, and yields no edges instead of an error when
// it is.
func TestAnalyze_Section(t *testing.T) {
	lb, fb := model(t, voxel.Shape{NX: 4, NY: 1, NZ: 4}, byX(1, 1, 2, 2), nil)

	res, err := topology.Analyze(lb, fb, 2, topology.WithoutCrop())
	require.NoError(t, err)
	require.Len(t, res.Edges, 1)
	assert.Equal(t, label.Pair{A: 1, B: 2}, res.Edges[0].Pair())
	assert.Equal(t, []voxel.Axis{voxel.X}, res.Edges[0].Axes)
	ok, err := res.Matrix.Lookup("01", "10")
	require.NoError(t, err)
	assert.True(t, ok)

	res, err = topology.Analyze(lb, fb, 2)
	require.NoError(t, err)
	assert.Empty(t, res.Edges)
	assert.Len(t, res.Graph.Nodes(), 2)

	lb, fb = twoHalves(t, voxel.Shape{NX: 2, NY: 1, NZ: 1})
	res, err = topology.Analyze(lb, fb, 2)
	require.NoError(t, err)
	assert.Empty(t, res.Edges)
}

// TestAnalyze_Uniform: one label, no internal boundary, no edges and a
// single self-adjacent node.
func TestAnalyze_Uniform(t *testing.T) {
	lb, fb := model(t, voxel.Shape{NX: 3, NY: 3, NZ: 3}, constant(1), constant(1))

	res, err := topology.Analyze(lb, fb, 1)
	require.NoError(t, err)

	assert.Empty(t, res.Edges)
	nodes := res.Graph.Nodes()
	require.Len(t, nodes, 1)
	assert.Equal(t, label.Label(0b101), nodes[0].Label)
	assert.Equal(t, 27, nodes[0].Voxels)
	assert.Equal(t, topology.Point{X: 1, Y: 1, Z: 1}, nodes[0].Centroid)

	self, err := res.Matrix.Lookup("101", "101")
	require.NoError(t, err)
	assert.True(t, self)
	assert.Equal(t, 1, res.Matrix.Count())
}

func TestAnalyze_Ambiguous(t *testing.T) {
	lb, fb := crossedContacts(t)

	_, err := topology.Analyze(lb, fb, 2)
	assert.ErrorIs(t, err, topology.ErrAmbiguousBoundary)

	_, err = topology.Analyze(lb, fb, 2, topology.WithSignatureCheck())
	assert.ErrorIs(t, err, label.ErrSignatureCollision)
}

func TestAnalyze_Errors(t *testing.T) {
	lb, fb := twoHalves(t, voxel.Shape{NX: 2, NY: 2, NZ: 2})

	_, err := topology.Analyze(lb, fb, 2, topology.WithShift(-1))
	assert.ErrorIs(t, err, topology.ErrOptionViolation)
	_, err = topology.Analyze(lb, fb, 2, topology.WithLayout(label.LayoutKind(9)))
	assert.ErrorIs(t, err, topology.ErrOptionViolation)
	_, err = topology.Analyze(lb, fb, 1)
	assert.ErrorIs(t, err, label.ErrLithologyRange)
	_, err = topology.Analyze(lb, fb, 0)
	assert.ErrorIs(t, err, label.ErrBadCardinality)

	// two faults under the overlapping layout: the data encodes, the label
	// space does not
	ones := constant(1)
	shape := voxel.Shape{NX: 2, NY: 2, NZ: 2}
	f0, err := voxel.FromFunc(shape, ones)
	require.NoError(t, err)
	two, err := voxel.NewStack(shape, f0, f0)
	require.NoError(t, err)
	_, err = topology.Analyze(lb, two, 2, topology.WithLayout(label.Overlapping))
	assert.ErrorIs(t, err, label.ErrEncodingCollision)
}

// TestAnalyze_LithologyBase keeps labels stable when the lowest lithology is
// absent.
func TestAnalyze_LithologyBase(t *testing.T) {
	lb, fb := model(t, voxel.Shape{NX: 2, NY: 2, NZ: 2}, byX(2, 3), byX(1, 1))

	res, err := topology.Analyze(lb, fb, 3, topology.WithLithologyBase(1))
	require.NoError(t, err)
	assert.Equal(t, map[label.Label]int64{0b001001: 2, 0b010001: 3}, res.Lithology)

	res, err = topology.Analyze(lb, fb, 3)
	require.NoError(t, err)
	assert.Equal(t, map[label.Label]int64{0b000101: 2, 0b001001: 3}, res.Lithology)
}

// TestAnalyze_DebugLog emits structured debug records.
func TestAnalyze_DebugLog(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	lb, fb := twoHalves(t, voxel.Shape{NX: 2, NY: 2, NZ: 2})

	_, err := topology.Analyze(lb, fb, 2, topology.WithLogger(log))
	require.NoError(t, err)

	var msgs []string
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		msgs = append(msgs, rec["msg"].(string))
		if rec["msg"] == "label field" {
			assert.Equal(t, []any{"0101", "1010"}, rec["binary"])
		}
	}
	assert.Equal(t, []string{
		"label field",
		"signature block", "signature block", "signature block",
		"edges", "adjacency matrix",
	}, msgs)
}
