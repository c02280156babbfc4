package voxel

import "errors"

var (
	// ErrEmptyShape indicates a shape with a non-positive dimension.
	ErrEmptyShape = errors.New("voxel: shape must have positive dimensions")
	// ErrShapeMismatch indicates values or layers that do not fit the shape.
	ErrShapeMismatch = errors.New("voxel: data does not match shape")
	// ErrOutOfBounds indicates a coordinate or window outside the grid.
	ErrOutOfBounds = errors.New("voxel: coordinate out of bounds")
)
