// SPDX-License-Identifier: MIT

package label

import (
	"fmt"
	"sort"

	"github.com/Panjichuan/gempy/voxel"
)

// EncodeOption configures Encode.
type EncodeOption func(*encodeOptions)

type encodeOptions struct {
	base    int64
	hasBase bool
}

// WithLithologyBase fixes the lithology id that maps to lithology index 0.
// Without it the smallest id present in the volume is used, which makes
// labels depend on which lithologies a particular model contains.
func WithLithologyBase(base int64) EncodeOption {
	return func(o *encodeOptions) {
		o.base = base
		o.hasBase = true
	}
}

// Field is the Label Field: one label per voxel plus the layout and lithology
// base used to produce it. It is immutable.
type Field struct {
	labels *voxel.Volume
	layout Layout
	base   int64
	unique []Label
}

// Encode combines a lithology volume and a fault-block stack into a Field.
//
// Algorithm:
//  1. Every fault value v must be 1 or 2; side = v-1, giving the bit
//     layout.FaultBit(i, side).
//  2. The lithology index is k = lb - base, where base is min(lb) unless
//     WithLithologyBase was given; k must lie in [0, nLayers).
//  3. label = 2^LithologyBit(k) + Σ_i 2^FaultBit(i, side_i).
//  4. The label must have nFaults+1 bits set.
//
// Returns voxel.ErrShapeMismatch for differing shapes, ErrFaultCountMismatch,
// ErrFaultSide and ErrLithologyRange (wrapped with the voxel coordinate) for
// inconsistent inputs, and *EncodingCollisionError for the first voxel whose
// flags collide.
// Complexity: O(V·nFaults) time, O(V) memory.
func Encode(lb *voxel.Volume, fb *voxel.Stack, layout Layout, opts ...EncodeOption) (*Field, error) {
	var o encodeOptions
	for _, opt := range opts {
		opt(&o)
	}
	if lb.Shape() != fb.Shape() {
		return nil, fmt.Errorf("%w: lithology %s, faults %s", voxel.ErrShapeMismatch, lb.Shape(), fb.Shape())
	}
	if fb.Layers() != layout.Faults() {
		return nil, fmt.Errorf("%w: %d fault blocks, layout has %d", ErrFaultCountMismatch, fb.Layers(), layout.Faults())
	}
	base := o.base
	if !o.hasBase {
		base = lb.Min()
	}

	nFaults := layout.Faults()
	want := nFaults + 1
	out := make([]int64, lb.Len())
	for i := range out {
		k := lb.Value(i) - base
		if k < 0 || k >= int64(layout.Layers()) {
			return nil, fmt.Errorf("%w: lithology %d (base %d, %d layers) at %s",
				ErrLithologyRange, lb.Value(i), base, layout.Layers(), lb.Coordinate(i))
		}
		lab := Label(1) << uint(layout.LithologyBit(int(k)))
		for f := 0; f < nFaults; f++ {
			v := fb.Layer(f).Value(i)
			if v != 1 && v != 2 {
				return nil, fmt.Errorf("%w: fault %d value %d at %s", ErrFaultSide, f, v, lb.Coordinate(i))
			}
			lab += Label(1) << uint(layout.FaultBit(f, int(v-1)))
		}
		if n := lab.OnesCount(); n != want {
			c := lb.Coordinate(i)
			sides := make([]int, nFaults)
			for f := range sides {
				sides[f] = int(fb.Layer(f).Value(i) - 1)
			}
			return nil, &EncodingCollisionError{
				Label:     lab,
				Lithology: int(k),
				Sides:     sides,
				Bits:      n,
				Want:      want,
				Coord:     &c,
			}
		}
		out[i] = int64(lab)
	}

	labels, err := voxel.NewVolume(lb.Shape(), out)
	if err != nil {
		return nil, err
	}

	return newField(labels, layout, base), nil
}

// NewField wraps an existing label volume. Every value must be a valid label
// of layout (ErrUndecodable otherwise).
// Complexity: O(V).
func NewField(labels *voxel.Volume, layout Layout, base int64) (*Field, error) {
	for i := 0; i < labels.Len(); i++ {
		if _, err := layout.Decode(Label(labels.Value(i))); err != nil {
			return nil, fmt.Errorf("%w at %s", err, labels.Coordinate(i))
		}
	}
	return newField(labels, layout, base), nil
}

func newField(labels *voxel.Volume, layout Layout, base int64) *Field {
	vals := labels.Unique()
	unique := make([]Label, len(vals))
	for i, v := range vals {
		unique[i] = Label(v)
	}
	sort.Slice(unique, func(i, j int) bool { return unique[i] < unique[j] })

	return &Field{labels: labels, layout: layout, base: base, unique: unique}
}

// Volume returns the label values as a voxel volume.
func (f *Field) Volume() *voxel.Volume { return f.labels }

// Shape returns the grid shape.
func (f *Field) Shape() voxel.Shape { return f.labels.Shape() }

// Layout returns the layout the field was encoded with.
func (f *Field) Layout() Layout { return f.layout }

// LithologyBase returns the lithology id mapped to index 0.
func (f *Field) LithologyBase() int64 { return f.base }

// At returns the label at flat index idx.
func (f *Field) At(idx int) Label { return Label(f.labels.Value(idx)) }

// Labels returns the distinct labels in ascending order.
func (f *Field) Labels() []Label {
	out := make([]Label, len(f.unique))
	copy(out, f.unique)
	return out
}

// Contains reports whether lab occurs in the field.
func (f *Field) Contains(lab Label) bool {
	i := sort.Search(len(f.unique), func(i int) bool { return f.unique[i] >= lab })
	return i < len(f.unique) && f.unique[i] == lab
}

// Counts returns the number of voxels carrying each label.
// Complexity: O(V).
func (f *Field) Counts() map[Label]int {
	out := make(map[Label]int, len(f.unique))
	for i := 0; i < f.labels.Len(); i++ {
		out[Label(f.labels.Value(i))]++
	}
	return out
}
