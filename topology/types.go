package topology

import (
	"github.com/Panjichuan/gempy/label"
	"github.com/Panjichuan/gempy/matrix"
	"github.com/Panjichuan/gempy/voxel"
)

// AxisBlock holds the contact signatures of one axis.
// Cell c of Signatures compares field voxels Origin+c and Origin+c+Shift·axis.
// Signatures is nil when the axis is too thin to hold a pair.
type AxisBlock struct {
	Axis       voxel.Axis
	Origin     voxel.Coord
	Signatures *voxel.Volume
}

// Shape returns the extent of the signature volume, or the zero Shape for an
// empty block.
func (b AxisBlock) Shape() voxel.Shape {
	if b.Signatures == nil {
		return voxel.Shape{}
	}
	return b.Signatures.Shape()
}

// Empty reports whether the axis holds no voxel pairs.
func (b AxisBlock) Empty() bool { return b.Signatures == nil }

// Block is the Topology Block: one AxisBlock per axis for a field shape.
type Block struct {
	field voxel.Shape
	shift int
	crop  bool
	axes  [3]AxisBlock
}

// Edge is an unordered pair of face-adjacent geobodies, A < B.
// Axes lists, in X, Y, Z order, the axes along which the contact was seen.
type Edge struct {
	A, B label.Label
	Axes []voxel.Axis
}

// Pair returns the edge as a label pair.
func (e Edge) Pair() label.Pair { return label.Pair{A: e.A, B: e.B} }

// Point is a continuous voxel-index coordinate.
type Point struct {
	X, Y, Z float64
}

// Node is one geobody of the topology graph.
type Node struct {
	Label     label.Label
	Key       string // fixed-width binary form of Label
	Lithology int64
	Sides     []int // side (0 or 1) of every fault
	Centroid  Point
	Voxels    int
	// Regions is the number of disjoint pieces the label forms. More than one
	// means a single label names several separate bodies.
	Regions int
}

// Result bundles every output of one Analyze call.
type Result struct {
	Field     *label.Field
	Block     *Block
	Edges     []Edge
	Centroids map[label.Label]Point
	Lithology map[label.Label]int64
	Space     *label.Space
	Matrix    *matrix.Adjacency
	Graph     *Graph
}
