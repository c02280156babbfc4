// SPDX-License-Identifier: MIT

package voxel

import (
	"fmt"
	"sort"
)

// NewVolume constructs a Volume from values laid out in C order.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyShape if a dimension is not positive and
// ErrShapeMismatch if len(values) != shape.Len().
// Complexity: O(V) time and memory.
func NewVolume(shape Shape, values []int64) (*Volume, error) {
	if !shape.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrEmptyShape, shape)
	}
	if len(values) != shape.Len() {
		return nil, fmt.Errorf("%w: %d values for shape %s", ErrShapeMismatch, len(values), shape)
	}
	data := make([]int64, len(values))
	copy(data, values)

	return &Volume{shape: shape, data: data}, nil
}

// FromFunc builds a Volume by evaluating fn at every voxel.
// Complexity: O(V) calls to fn.
func FromFunc(shape Shape, fn func(c Coord) int64) (*Volume, error) {
	if !shape.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrEmptyShape, shape)
	}
	data := make([]int64, shape.Len())
	i := 0
	for x := 0; x < shape.NX; x++ {
		for y := 0; y < shape.NY; y++ {
			for z := 0; z < shape.NZ; z++ {
				data[i] = fn(Coord{X: x, Y: y, Z: z})
				i++
			}
		}
	}

	return &Volume{shape: shape, data: data}, nil
}

// Filled returns a Volume where every voxel holds v.
func Filled(shape Shape, v int64) (*Volume, error) {
	return FromFunc(shape, func(Coord) int64 { return v })
}

// Shape returns the grid size of the volume.
func (v *Volume) Shape() Shape {
	return v.shape
}

// Len returns the number of voxels.
func (v *Volume) Len() int {
	return len(v.data)
}

// InBounds reports whether c lies inside the grid.
// Complexity: O(1).
func (v *Volume) InBounds(c Coord) bool {
	s := v.shape
	return c.X >= 0 && c.X < s.NX && c.Y >= 0 && c.Y < s.NY && c.Z >= 0 && c.Z < s.NZ
}

// Index maps c to its flat C-order index. c must be in bounds.
// Complexity: O(1).
func (v *Volume) Index(c Coord) int {
	return (c.X*v.shape.NY+c.Y)*v.shape.NZ + c.Z
}

// Coordinate converts a flat index back to (x,y,z).
// Complexity: O(1).
func (v *Volume) Coordinate(idx int) Coord {
	nz := v.shape.NZ
	nyz := v.shape.NY * nz
	return Coord{X: idx / nyz, Y: (idx % nyz) / nz, Z: idx % nz}
}

// At returns the value at c, or ErrOutOfBounds.
// Complexity: O(1).
func (v *Volume) At(c Coord) (int64, error) {
	if !v.InBounds(c) {
		return 0, fmt.Errorf("%w: %s in %s", ErrOutOfBounds, c, v.shape)
	}
	return v.data[v.Index(c)], nil
}

// Value returns the value at flat index idx without bounds checks.
func (v *Volume) Value(idx int) int64 {
	return v.data[idx]
}

// Values returns a copy of the flat storage.
func (v *Volume) Values() []int64 {
	out := make([]int64, len(v.data))
	copy(out, v.data)
	return out
}

// Unique returns the distinct values of the volume in ascending order.
// Complexity: O(V + k·log k) for k distinct values.
func (v *Volume) Unique() []int64 {
	seen := make(map[int64]struct{})
	for _, x := range v.data {
		seen[x] = struct{}{}
	}
	out := make([]int64, 0, len(seen))
	for x := range seen {
		out = append(out, x)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Min returns the smallest value of the volume.
func (v *Volume) Min() int64 {
	m := v.data[0]
	for _, x := range v.data[1:] {
		if x < m {
			m = x
		}
	}
	return m
}

// Max returns the largest value of the volume.
func (v *Volume) Max() int64 {
	m := v.data[0]
	for _, x := range v.data[1:] {
		if x > m {
			m = x
		}
	}
	return m
}

// Window returns a view of shape voxels starting at origin.
// Returns ErrEmptyShape for an empty view shape and ErrOutOfBounds when the
// view does not fit inside the volume.
// Complexity: O(1).
func (v *Volume) Window(origin Coord, shape Shape) (Window, error) {
	if !shape.Valid() {
		return Window{}, fmt.Errorf("%w: window %s", ErrEmptyShape, shape)
	}
	last := origin.Add(Coord{X: shape.NX - 1, Y: shape.NY - 1, Z: shape.NZ - 1})
	if !v.InBounds(origin) || !v.InBounds(last) {
		return Window{}, fmt.Errorf("%w: window %s at %s in %s", ErrOutOfBounds, shape, origin, v.shape)
	}

	return Window{vol: v, origin: origin, shape: shape}, nil
}

// Shape returns the extent of the view.
func (w Window) Shape() Shape {
	return w.shape
}

// Origin returns the position of the view's first voxel in the parent volume.
func (w Window) Origin() Coord {
	return w.origin
}

// At returns the value at c, relative to the view origin. c must lie inside
// the view; no bounds check is made.
// Complexity: O(1).
func (w Window) At(c Coord) int64 {
	return w.vol.data[w.vol.Index(w.origin.Add(c))]
}

// Parent converts a view-relative coordinate to a coordinate in the parent volume.
func (w Window) Parent(c Coord) Coord {
	return w.origin.Add(c)
}

// NewStack groups equally shaped volumes along a leading layer axis.
// An empty stack keeps the given shape and holds no layers.
// Returns ErrShapeMismatch if any layer's shape differs.
func NewStack(shape Shape, layers ...*Volume) (*Stack, error) {
	if !shape.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrEmptyShape, shape)
	}
	out := make([]*Volume, len(layers))
	for i, l := range layers {
		if l == nil || l.shape != shape {
			return nil, fmt.Errorf("%w: layer %d", ErrShapeMismatch, i)
		}
		out[i] = l
	}

	return &Stack{shape: shape, layers: out}, nil
}

// Shape returns the common shape of all layers.
func (s *Stack) Shape() Shape {
	return s.shape
}

// Layers returns the number of layers.
func (s *Stack) Layers() int {
	return len(s.layers)
}

// Layer returns layer i.
func (s *Stack) Layer(i int) *Volume {
	return s.layers[i]
}
