// SPDX-License-Identifier: MIT

// Package label defines the Label bitset, label pairs and the Layout that
// assigns bit positions to fault sides and lithologies.
package label

import (
	"fmt"
	"math/bits"
	"strings"
)

// MaxWidth is the largest layout width. Two labels of this width still sum
// without overflowing an int64 contact signature.
const MaxWidth = 62

// Label is a bit-packed geobody identifier: one lithology bit plus one bit per
// fault. The node identity of a geobody IS its label.
type Label uint64

// OnesCount returns the number of set bits.
func (l Label) OnesCount() int {
	return bits.OnesCount64(uint64(l))
}

// Has reports whether bit is set.
func (l Label) Has(bit int) bool {
	return bit >= 0 && bit < 64 && l&(1<<uint(bit)) != 0
}

// Bits returns the positions of the set bits in ascending order.
func (l Label) Bits() []int {
	out := make([]int, 0, l.OnesCount())
	for x := uint64(l); x != 0; x &= x - 1 {
		out = append(out, bits.TrailingZeros64(x))
	}
	return out
}

// Binary renders l most-significant bit first, zero-padded to width.
// A label wider than width is rendered in full.
func (l Label) Binary(width int) string {
	s := fmt.Sprintf("%b", uint64(l))
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

// ParseBinary parses a string of '0' and '1' into a Label.
func ParseBinary(s string) (Label, error) {
	if s == "" || len(s) > 64 {
		return 0, fmt.Errorf("%w: %q", ErrUndecodable, s)
	}
	var l Label
	for _, r := range s {
		l <<= 1
		switch r {
		case '1':
			l |= 1
		case '0':
		default:
			return 0, fmt.Errorf("%w: %q", ErrUndecodable, s)
		}
	}
	return l, nil
}

// Pair is an unordered pair of labels stored with A <= B.
type Pair struct {
	A, B Label
}

// MakePair orders a and b into a Pair.
func MakePair(a, b Label) Pair {
	if b < a {
		a, b = b, a
	}
	return Pair{A: a, B: b}
}

// Self reports whether both sides are the same label.
func (p Pair) Self() bool {
	return p.A == p.B
}

// Sum returns the contact signature of the pair.
func (p Pair) Sum() int64 {
	return int64(p.A) + int64(p.B)
}

// Tuple is the decoded identity of a label: a 0-based lithology index and the
// side (0 or 1) of every fault.
type Tuple struct {
	Lithology int
	Sides     []int
}

// LayoutKind selects how fault sides and lithologies are mapped to bits.
type LayoutKind int

const (
	// Disjoint gives fault i the bits {2i, 2i+1} and lithology k the bit
	// 2·nFaults+k. It is collision-free and matches the canonical Space.
	Disjoint LayoutKind = iota
	// Overlapping gives fault i the bits {i, i+1} and lithology k the bit
	// nFaults+2+k. Consecutive faults share a bit, so for nFaults >= 2
	// some side combinations collide; Encode reports them.
	Overlapping
)

// String returns "disjoint" or "overlapping".
func (k LayoutKind) String() string {
	switch k {
	case Disjoint:
		return "disjoint"
	case Overlapping:
		return "overlapping"
	default:
		return fmt.Sprintf("layout(%d)", int(k))
	}
}

// ParseLayoutKind parses the String form of a LayoutKind.
func ParseLayoutKind(s string) (LayoutKind, error) {
	switch strings.ToLower(s) {
	case "", "disjoint":
		return Disjoint, nil
	case "overlapping":
		return Overlapping, nil
	default:
		return 0, fmt.Errorf("label: unknown layout %q", s)
	}
}

// Layout is an immutable bit assignment for one (nFaults, nLayers)
// configuration. Build it with NewLayout.
type Layout struct {
	kind    LayoutKind
	nFaults int
	nLayers int
}
