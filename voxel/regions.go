package voxel

var (
	faceOffsets = []Coord{
		{X: -1}, {X: 1}, {Y: -1}, {Y: 1}, {Z: -1}, {Z: 1},
	}
	cubeOffsets = func() []Coord {
		out := make([]Coord, 0, 26)
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				for dz := -1; dz <= 1; dz++ {
					if dx == 0 && dy == 0 && dz == 0 {
						continue
					}
					out = append(out, Coord{X: dx, Y: dy, Z: dz})
				}
			}
		}
		return out
	}()
)

// Offsets returns the neighbour offsets for conn.
func (conn Connectivity) Offsets() []Coord {
	if conn == Conn26 {
		return cubeOffsets
	}
	return faceOffsets
}

// Regions finds all connected regions of voxels equal to value, using the
// neighbourhood selected by conn.
// Returns a slice of regions; each region is a slice of flat indices in BFS
// order, regions ordered by their smallest index.
//
// Time:   O(V·d), where d = 6 or 26.
// Memory: O(V) for visited flags and output.
func (v *Volume) Regions(value int64, conn Connectivity) [][]int {
	seen := make([]bool, len(v.data))
	offsets := conn.Offsets()
	var regions [][]int

	for i0, x := range v.data {
		if x != value || seen[i0] {
			continue
		}
		regions = append(regions, v.flood(i0, offsets, seen))
	}

	return regions
}

// RegionCounts returns, for every distinct value, the number of connected
// regions it forms.
// Complexity: O(V·d).
func (v *Volume) RegionCounts(conn Connectivity) map[int64]int {
	seen := make([]bool, len(v.data))
	offsets := conn.Offsets()
	counts := make(map[int64]int)

	for i0, value := range v.data {
		if seen[i0] {
			continue
		}
		counts[value]++
		v.flood(i0, offsets, seen)
	}

	return counts
}

// flood marks and returns, in BFS order, every voxel reachable from start
// through voxels of the same value. seen is shared across calls.
func (v *Volume) flood(start int, offsets []Coord, seen []bool) []int {
	value := v.data[start]
	queue := []int{start}
	seen[start] = true
	for qi := 0; qi < len(queue); qi++ {
		c := v.Coordinate(queue[qi])
		for _, d := range offsets {
			n := c.Add(d)
			if !v.InBounds(n) {
				continue
			}
			ni := v.Index(n)
			if seen[ni] || v.data[ni] != value {
				continue
			}
			seen[ni] = true
			queue = append(queue, ni)
		}
	}
	return queue
}
