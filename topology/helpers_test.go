package topology_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Panjichuan/gempy/label"
	"github.com/Panjichuan/gempy/voxel"
)

// model builds lb and a one-fault fb from per-voxel functions.
func model(t testing.TB, shape voxel.Shape, lith, fault func(voxel.Coord) int64) (*voxel.Volume, *voxel.Stack) {
	t.Helper()
	lb, err := voxel.FromFunc(shape, lith)
	require.NoError(t, err)
	if fault == nil {
		fb, err := voxel.NewStack(shape)
		require.NoError(t, err)
		return lb, fb
	}
	f, err := voxel.FromFunc(shape, fault)
	require.NoError(t, err)
	fb, err := voxel.NewStack(shape, f)
	require.NoError(t, err)
	return lb, fb
}

// encode builds a Disjoint field with lithology base 1.
func encode(t testing.TB, lb *voxel.Volume, fb *voxel.Stack, nLayers int) *label.Field {
	t.Helper()
	l, err := label.NewLayout(label.Disjoint, fb.Layers(), nLayers)
	require.NoError(t, err)
	f, err := label.Encode(lb, fb, l, label.WithLithologyBase(1))
	require.NoError(t, err)
	return f
}

// byX returns vals[c.X].
func byX(vals ...int64) func(voxel.Coord) int64 {
	return func(c voxel.Coord) int64 { return vals[c.X] }
}

func constant(v int64) func(voxel.Coord) int64 {
	return func(voxel.Coord) int64 { return v }
}

// twoHalves is the 2-wide single-fault two-layer model: (0,y,z) is
// lithology 1 on side 1, (1,y,z) is lithology 2 on side 2.
func twoHalves(t testing.TB, shape voxel.Shape) (*voxel.Volume, *voxel.Stack) {
	return model(t, shape, byX(1, 2), byX(1, 2))
}

// crossedContacts puts contact 5|10 and contact 6|9 on the X axis; both sum
// to 15.
func crossedContacts(t testing.TB) (*voxel.Volume, *voxel.Stack) {
	shape := voxel.Shape{NX: 2, NY: 4, NZ: 2}
	return model(t, shape, byX(1, 2), func(c voxel.Coord) int64 {
		if c.Y < 2 {
			return int64(1 + c.X)
		}
		return int64(2 - c.X)
	})
}
