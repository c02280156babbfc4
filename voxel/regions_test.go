// File: voxel/regions_test.go
package voxel

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegions_Face6 splits a value into two pieces that only touch at a corner.
//
// Slice z=0 (x rows, y columns), one voxel thick:
//
//	1 0
//	0 1
//
// With Conn6 the two 1-voxels are separate; with Conn26 they join.
func TestRegions_Face6(t *testing.T) {
	v, err := NewVolume(Shape{NX: 2, NY: 2, NZ: 1}, []int64{1, 0, 0, 1})
	require.NoError(t, err)

	assert.Len(t, v.Regions(1, Conn6), 2)
	assert.Len(t, v.Regions(1, Conn26), 1)
	assert.Len(t, v.Regions(0, Conn6), 2)
}

// TestRegions_Sizes checks region sizes on a 3×3×1 slab.
//
//	2 2 0
//	0 2 0
//	0 0 2
func TestRegions_Sizes(t *testing.T) {
	v, err := NewVolume(Shape{NX: 3, NY: 3, NZ: 1}, []int64{
		2, 2, 0,
		0, 2, 0,
		0, 0, 2,
	})
	require.NoError(t, err)

	regions := v.Regions(2, Conn6)
	require.Len(t, regions, 2)
	sizes := []int{len(regions[0]), len(regions[1])}
	sort.Ints(sizes)
	assert.Equal(t, []int{1, 3}, sizes)
	assert.Equal(t, 0, regions[0][0], "regions are ordered by first voxel")
}

// TestRegions_Absent returns no regions for a value that does not occur.
func TestRegions_Absent(t *testing.T) {
	v, err := Filled(Shape{NX: 2, NY: 2, NZ: 2}, 4)
	require.NoError(t, err)

	assert.Empty(t, v.Regions(5, Conn6))
	assert.Len(t, v.Regions(4, Conn6), 1)
	assert.Len(t, v.Regions(4, Conn6)[0], 8)
}

// TestRegionCounts counts regions of every value in one pass.
func TestRegionCounts(t *testing.T) {
	v, err := NewVolume(Shape{NX: 3, NY: 1, NZ: 1}, []int64{7, 8, 7})
	require.NoError(t, err)

	assert.Equal(t, map[int64]int{7: 2, 8: 1}, v.RegionCounts(Conn6))
}

// TestRegionCounts_MatchesRegions checks both walks agree on every value,
// and that together the regions cover every voxel once.
func TestRegionCounts_MatchesRegions(t *testing.T) {
	v, err := FromFunc(Shape{NX: 4, NY: 3, NZ: 3}, func(c Coord) int64 {
		return int64((c.X*7 + c.Y*3 + c.Z*5) % 4)
	})
	require.NoError(t, err)

	for _, conn := range []Connectivity{Conn6, Conn26} {
		counts := v.RegionCounts(conn)
		covered := 0
		for _, value := range v.Unique() {
			regions := v.Regions(value, conn)
			assert.Len(t, regions, counts[value], "value %d", value)
			for _, r := range regions {
				covered += len(r)
			}
		}
		assert.Equal(t, v.Len(), covered)
	}
}
