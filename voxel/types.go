// SPDX-License-Identifier: MIT

// Package voxel defines the grid types, axes and connectivity options shared
// by the topology pipeline.
package voxel

import "fmt"

// Axis identifies one of the three grid directions.
type Axis int

const (
	// X is the slowest-varying axis of the flat storage.
	X Axis = iota
	// Y is the middle axis.
	Y
	// Z is the fastest-varying axis of the flat storage.
	Z
)

// Axes lists X, Y, Z in storage order.
var Axes = [3]Axis{X, Y, Z}

// String returns "x", "y" or "z".
func (a Axis) String() string {
	switch a {
	case X:
		return "x"
	case Y:
		return "y"
	case Z:
		return "z"
	default:
		return fmt.Sprintf("axis(%d)", int(a))
	}
}

// Connectivity selects the neighbourhood used by Regions.
type Connectivity int

const (
	// Conn6 links voxels sharing a face.
	Conn6 Connectivity = iota
	// Conn26 links voxels sharing a face, an edge or a corner.
	Conn26
)

// Shape is the size of a regular voxel grid.
type Shape struct {
	NX, NY, NZ int
}

// Len returns the number of voxels NX·NY·NZ.
func (s Shape) Len() int {
	return s.NX * s.NY * s.NZ
}

// Valid reports whether every dimension is positive.
func (s Shape) Valid() bool {
	return s.NX > 0 && s.NY > 0 && s.NZ > 0
}

// Dim returns the extent along axis a.
func (s Shape) Dim(a Axis) int {
	switch a {
	case X:
		return s.NX
	case Y:
		return s.NY
	default:
		return s.NZ
	}
}

// With returns a copy of s whose extent along axis a is n.
func (s Shape) With(a Axis, n int) Shape {
	switch a {
	case X:
		s.NX = n
	case Y:
		s.NY = n
	default:
		s.NZ = n
	}
	return s
}

// String formats the shape like a numpy shape tuple.
func (s Shape) String() string {
	return fmt.Sprintf("(%d, %d, %d)", s.NX, s.NY, s.NZ)
}

// Coord addresses a voxel by its integer indices.
type Coord struct {
	X, Y, Z int
}

// Get returns the component of c along axis a.
func (c Coord) Get(a Axis) int {
	switch a {
	case X:
		return c.X
	case Y:
		return c.Y
	default:
		return c.Z
	}
}

// Step returns c moved n voxels along axis a.
func (c Coord) Step(a Axis, n int) Coord {
	switch a {
	case X:
		c.X += n
	case Y:
		c.Y += n
	default:
		c.Z += n
	}
	return c
}

// Add returns the component-wise sum of c and d.
func (c Coord) Add(d Coord) Coord {
	return Coord{X: c.X + d.X, Y: c.Y + d.Y, Z: c.Z + d.Z}
}

// String formats the coordinate as "(x,y,z)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

// Volume is an immutable int64 field on a Shape.
// data holds Shape.Len() values in C order.
type Volume struct {
	shape Shape
	data  []int64
}

// Stack is a sequence of equally shaped volumes along a leading layer axis.
type Stack struct {
	shape  Shape
	layers []*Volume
}

// Window is a read-only view of a Volume covering shape voxels starting at origin.
type Window struct {
	vol    *Volume
	origin Coord
	shape  Shape
}
