package voxel_test

import (
	"math/rand"
	"testing"

	"github.com/Panjichuan/gempy/voxel"
)

// BenchmarkRegionCounts measures RegionCounts on a random 64³ grid with
// values in [0,4).
// Complexity: O(V×6)
func BenchmarkRegionCounts(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	shape := voxel.Shape{NX: 64, NY: 64, NZ: 64}
	v, err := voxel.FromFunc(shape, func(voxel.Coord) int64 { return int64(rng.Intn(4)) })
	if err != nil {
		b.Fatalf("setup FromFunc failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.RegionCounts(voxel.Conn6)
	}
}
