package topology_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Panjichuan/gempy/label"
	"github.com/Panjichuan/gempy/topology"
	"github.com/Panjichuan/gempy/voxel"
)

// chainGraph is the column 5 | 9 | 17 along X.
func chainGraph(t *testing.T) *topology.Graph {
	t.Helper()
	lb, fb := model(t, voxel.Shape{NX: 4, NY: 2, NZ: 2}, byX(1, 2, 3, 3), constant(1))
	f := encode(t, lb, fb, 3)
	b, err := topology.BuildBlock(f)
	require.NoError(t, err)
	edges, err := topology.Edges(b, f)
	require.NoError(t, err)
	g, err := topology.NewGraph(f, edges)
	require.NoError(t, err)
	return g
}

func TestGraph_Queries(t *testing.T) {
	g := chainGraph(t)

	nodes := g.Nodes()
	require.Len(t, nodes, 3)
	assert.Equal(t, []label.Label{5, 9, 17}, []label.Label{nodes[0].Label, nodes[1].Label, nodes[2].Label})
	assert.Equal(t, "10001", nodes[2].Key)
	assert.Equal(t, int64(3), nodes[2].Lithology)
	assert.Equal(t, 8, nodes[2].Voxels)
	assert.Equal(t, []int{0}, nodes[2].Sides)
	assert.Equal(t, topology.Point{X: 2.5, Y: 0.5, Z: 0.5}, nodes[2].Centroid)

	nbrs, err := g.Neighbors(9)
	require.NoError(t, err)
	assert.Equal(t, []label.Label{5, 17}, nbrs)
	d, err := g.Degree(9)
	require.NoError(t, err)
	assert.Equal(t, 2, d)

	assert.True(t, g.HasEdge(5, 9))
	assert.True(t, g.HasEdge(9, 5))
	assert.False(t, g.HasEdge(5, 17))
	assert.False(t, g.HasEdge(5, 5))
	assert.Len(t, g.Edges(), 2)

	_, err = g.Neighbors(33)
	assert.ErrorIs(t, err, topology.ErrUnknownNode)
	_, err = g.Degree(33)
	assert.ErrorIs(t, err, topology.ErrUnknownNode)
	_, ok := g.Node(33)
	assert.False(t, ok)
}

func TestGraph_Hops(t *testing.T) {
	g := chainGraph(t)

	res, err := g.Hops(5)
	require.NoError(t, err)
	assert.Equal(t, []label.Label{5, 9, 17}, res.Order)
	assert.Equal(t, map[label.Label]int{5: 0, 9: 1, 17: 2}, res.Depth)

	path, err := res.PathTo(17)
	require.NoError(t, err)
	assert.Equal(t, []label.Label{5, 9, 17}, path)

	_, err = res.PathTo(33)
	assert.ErrorIs(t, err, topology.ErrUnknownNode)
	_, err = g.Hops(33)
	assert.ErrorIs(t, err, topology.ErrUnknownNode)
}

// TestGraph_Regions counts a label split into two bodies.
func TestGraph_Regions(t *testing.T) {
	lb, fb := model(t, voxel.Shape{NX: 3, NY: 2, NZ: 2}, byX(1, 2, 1), constant(1))
	f := encode(t, lb, fb, 2)
	g, err := topology.NewGraph(f, []topology.Edge{{A: 5, B: 9}})
	require.NoError(t, err)

	n, ok := g.Node(5)
	require.True(t, ok)
	assert.Equal(t, 2, n.Regions)
	assert.Equal(t, 8, n.Voxels)
	n, ok = g.Node(9)
	require.True(t, ok)
	assert.Equal(t, 1, n.Regions)

	// diagonal contact merges under 26-connectivity only
	lb, fb = model(t, voxel.Shape{NX: 2, NY: 2, NZ: 1}, func(c voxel.Coord) int64 {
		return int64(1 + (c.X+c.Y)%2)
	}, constant(1))
	f = encode(t, lb, fb, 2)
	g, err = topology.NewGraph(f, nil, topology.WithConnectivity(voxel.Conn26))
	require.NoError(t, err)
	n, _ = g.Node(5)
	assert.Equal(t, 1, n.Regions)
	g, err = topology.NewGraph(f, nil)
	require.NoError(t, err)
	n, _ = g.Node(5)
	assert.Equal(t, 2, n.Regions)
}

func TestNewGraph_Errors(t *testing.T) {
	lb, fb := twoHalves(t, voxel.Shape{NX: 2, NY: 2, NZ: 2})
	f := encode(t, lb, fb, 2)

	_, err := topology.NewGraph(f, []topology.Edge{{A: 5, B: 6}})
	assert.ErrorIs(t, err, topology.ErrUnknownNode)
	_, err = topology.NewGraph(f, nil, topology.WithConnectivity(voxel.Connectivity(7)))
	assert.ErrorIs(t, err, topology.ErrOptionViolation)
}
