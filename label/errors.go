// SPDX-License-Identifier: MIT
// Package label: sentinel errors and typed failures.
// The typed errors carry the offending labels and voxel coordinates; each
// unwraps to its sentinel so callers branch with errors.Is and read details
// with errors.As.

package label

import (
	"errors"
	"fmt"

	"github.com/Panjichuan/gempy/voxel"
)

var (
	// ErrBadCardinality indicates a negative fault count or a layer count below one.
	ErrBadCardinality = errors.New("label: invalid fault or layer count")

	// ErrLayoutTooWide indicates a layout needing more bits than MaxWidth.
	ErrLayoutTooWide = errors.New("label: layout exceeds maximum bit width")

	// ErrFaultCountMismatch indicates a fault-block stack whose layer count
	// differs from the layout's fault count.
	ErrFaultCountMismatch = errors.New("label: fault block count does not match layout")

	// ErrFaultSide indicates a fault-block value outside {1, 2}.
	ErrFaultSide = errors.New("label: fault block value must be 1 or 2")

	// ErrLithologyRange indicates a lithology id outside [base, base+nLayers).
	ErrLithologyRange = errors.New("label: lithology id out of range")

	// ErrEncodingCollision indicates that two distinct flags share a bit, so the
	// label no longer has nFaults+1 bits set or two tuples share one label.
	ErrEncodingCollision = errors.New("label: encoding collision")

	// ErrUnresolvedLithology indicates a label whose lithology bits match zero
	// or several lithology patterns.
	ErrUnresolvedLithology = errors.New("label: unresolved lithology")

	// ErrSignatureCollision indicates two label pairs with the same sum.
	ErrSignatureCollision = errors.New("label: signature collision")

	// ErrBadFaultPairs indicates fault id pairs that cannot form a bit string.
	ErrBadFaultPairs = errors.New("label: invalid fault id pairs")

	// ErrUndecodable indicates a label that does not decode under a layout.
	ErrUndecodable = errors.New("label: label does not decode under layout")
)

// EncodingCollisionError reports a label that lost its one-flag-per-bit
// property, or a label produced by two different tuples.
type EncodingCollisionError struct {
	Label     Label
	Lithology int   // lithology index (0-based) of the tuple
	Sides     []int // fault sides (0 or 1) of the tuple
	Bits      int   // bits set in Label
	Want      int   // nFaults+1
	// Coord is the first voxel carrying the label; nil for collisions found
	// while enumerating the canonical space.
	Coord *voxel.Coord
	// Other is the earlier label-space entry with the same value, if any.
	Other *Tuple
}

// Error implements error.
func (e *EncodingCollisionError) Error() string {
	msg := fmt.Sprintf("%v: label %d (%b) from lithology %d sides %v has %d bits set, want %d",
		ErrEncodingCollision, uint64(e.Label), uint64(e.Label), e.Lithology, e.Sides, e.Bits, e.Want)
	if e.Coord != nil {
		msg += " at " + e.Coord.String()
	}
	if e.Other != nil {
		msg += fmt.Sprintf("; same label as lithology %d sides %v", e.Other.Lithology, e.Other.Sides)
	}
	return msg
}

// Unwrap returns ErrEncodingCollision.
func (e *EncodingCollisionError) Unwrap() error { return ErrEncodingCollision }

// UnresolvedLithologyError reports a label whose fault-free bit pattern is not
// exactly one known lithology pattern.
type UnresolvedLithologyError struct {
	Label Label
	// Remaining is the label with the fault bits cleared.
	Remaining Label
	// Matches is the number of lithology bits left in Remaining.
	Matches int
}

// Error implements error.
func (e *UnresolvedLithologyError) Error() string {
	return fmt.Sprintf("%v: label %d (%b) leaves %b after masking faults, %d lithology bits",
		ErrUnresolvedLithology, uint64(e.Label), uint64(e.Label), uint64(e.Remaining), e.Matches)
}

// Unwrap returns ErrUnresolvedLithology.
func (e *UnresolvedLithologyError) Unwrap() error { return ErrUnresolvedLithology }

// SignatureCollisionError reports two label pairs sharing one sum.
type SignatureCollisionError struct {
	Sum           int64
	First, Second Pair
}

// Error implements error.
func (e *SignatureCollisionError) Error() string {
	return fmt.Sprintf("%v: %d = %d + %d = %d + %d", ErrSignatureCollision,
		e.Sum, e.First.A, e.First.B, e.Second.A, e.Second.B)
}

// Unwrap returns ErrSignatureCollision.
func (e *SignatureCollisionError) Unwrap() error { return ErrSignatureCollision }
