// SPDX-License-Identifier: MIT
// Package topology: sentinel errors and typed failures.
// Every typed failure unwraps to its sentinel; match with errors.Is and read
// the offending labels and coordinates with errors.As.

package topology

import (
	"errors"
	"fmt"

	"github.com/Panjichuan/gempy/label"
	"github.com/Panjichuan/gempy/voxel"
)

var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("topology: invalid option supplied")

	// ErrBadShift indicates a shift distance below one voxel.
	ErrBadShift = errors.New("topology: shift must be at least 1")

	// ErrShiftTooLarge indicates a shift that leaves no voxel pair on any axis.
	ErrShiftTooLarge = errors.New("topology: shift exceeds grid")

	// ErrBlockMismatch indicates a block built from a different field.
	ErrBlockMismatch = errors.New("topology: block does not match field")

	// ErrAmbiguousBoundary indicates a contact signature produced by more than
	// one label pair.
	ErrAmbiguousBoundary = errors.New("topology: ambiguous boundary")

	// ErrLabelNotInSpace indicates an observed label missing from the
	// canonical label space.
	ErrLabelNotInSpace = errors.New("topology: label not in canonical space")

	// ErrUnknownNode indicates a label that is not a node of the graph.
	ErrUnknownNode = errors.New("topology: unknown node")
)

// AmbiguousBoundaryError reports one signature on one axis that resolves to
// two different label pairs.
type AmbiguousBoundaryError struct {
	Axis      voxel.Axis
	Signature int64
	// First is the pair seen at FirstAt, Second the conflicting pair at SecondAt.
	First, Second     label.Pair
	FirstAt, SecondAt voxel.Coord
}

// Error implements error.
func (e *AmbiguousBoundaryError) Error() string {
	return fmt.Sprintf("%v: axis %s signature %d is %d+%d at %s and %d+%d at %s",
		ErrAmbiguousBoundary, e.Axis, e.Signature,
		e.First.A, e.First.B, e.FirstAt, e.Second.A, e.Second.B, e.SecondAt)
}

// Unwrap returns ErrAmbiguousBoundary.
func (e *AmbiguousBoundaryError) Unwrap() error { return ErrAmbiguousBoundary }

// LabelNotInSpaceError reports a label that has no canonical index.
type LabelNotInSpaceError struct {
	Label  label.Label
	Binary string
	Layout label.Layout
}

// Error implements error.
func (e *LabelNotInSpaceError) Error() string {
	return fmt.Sprintf("%v: label %d (%s) under %s", ErrLabelNotInSpace, uint64(e.Label), e.Binary, e.Layout)
}

// Unwrap returns ErrLabelNotInSpace.
func (e *LabelNotInSpaceError) Unwrap() error { return ErrLabelNotInSpace }
