// SPDX-License-Identifier: MIT

package label

import (
	"fmt"
	"sort"
)

// FaultPairs returns the base-10 bit id pair of each fault block. For two
// faults this looks like:
//
//	[[0 1]
//	 [2 3]]
//
// Complexity: O(nFaults).
func FaultPairs(nFaults int) [][2]int {
	out := make([][2]int, nFaults)
	for i := range out {
		out[i] = [2]int{2 * i, 2*i + 1}
	}
	return out
}

// FaultCombinations returns the binary strings of every selection of exactly
// one id per fault block, width 2·len(pairs). Selections that take both ids
// of one block are never produced. Strings are ordered by the sorted id tuple,
// which for two faults gives ['0101', '1001', '0110', '1010'].
// Zero pairs yield a single empty combination.
// Returns ErrBadFaultPairs if an id is outside [0, 2·len(pairs)) or used twice.
// Complexity: O(2^n · n).
func FaultCombinations(pairs [][2]int) ([]string, error) {
	width := 2 * len(pairs)
	seen := make(map[int]bool, width)
	for _, p := range pairs {
		for _, id := range p {
			if id < 0 || id >= width || seen[id] {
				return nil, fmt.Errorf("%w: %v", ErrBadFaultPairs, pairs)
			}
			seen[id] = true
		}
	}

	combos := [][]int{{}}
	for _, p := range pairs {
		next := make([][]int, 0, 2*len(combos))
		for _, c := range combos {
			for _, id := range p {
				sel := append(append(make([]int, 0, len(c)+1), c...), id)
				next = append(next, sel)
			}
		}
		combos = next
	}
	for _, c := range combos {
		sort.Ints(c)
	}
	sort.Slice(combos, func(i, j int) bool {
		a, b := combos[i], combos[j]
		for k := range a {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return false
	})

	out := make([]string, len(combos))
	for i, c := range combos {
		var l Label
		for _, id := range c {
			l |= 1 << uint(id)
		}
		if width == 0 {
			out[i] = ""
			continue
		}
		out[i] = l.Binary(width)
	}

	return out, nil
}

// LithologyPatterns returns the one-hot binary string of every lithology.
// For five layers this looks like ['00001', '00010', '00100', '01000', '10000'].
func LithologyPatterns(nLayers int) []string {
	out := make([]string, nLayers)
	for k := range out {
		out[k] = (Label(1) << uint(k)).Binary(nLayers)
	}
	return out
}

// Space is the canonical label space of a layout: every combination of one
// lithology and one side per fault, in a fixed order. Build it once with
// NewSpace and pass it explicitly; it is immutable.
type Space struct {
	layout  Layout
	labels  []Label
	strings []string
	index   map[Label]int
}

// NewSpace enumerates the label space of layout. Entries are ordered by
// lithology index, then by fault selection as in FaultCombinations, so under
// the Disjoint layout entry i is LithologyPatterns[k] + FaultCombinations[j].
// Returns *EncodingCollisionError if two tuples share a label or a tuple
// loses a bit (Overlapping layout with nFaults >= 2).
// Complexity: O(nLayers · 2^nFaults · nFaults).
func NewSpace(layout Layout) (*Space, error) {
	nFaults := layout.Faults()
	n := layout.Layers() << uint(nFaults)
	s := &Space{
		layout:  layout,
		labels:  make([]Label, 0, n),
		strings: make([]string, 0, n),
		index:   make(map[Label]int, n),
	}
	tuples := make(map[Label]Tuple, n)

	for k := 0; k < layout.Layers(); k++ {
		for c := 0; c < 1<<uint(nFaults); c++ {
			// fault 0 varies slowest, matching the sorted id tuples
			sides := make([]int, nFaults)
			for i := range sides {
				sides[i] = (c >> uint(nFaults-1-i)) & 1
			}
			lab, err := layout.Encode(k, sides)
			if err != nil {
				return nil, err
			}
			if prev, dup := tuples[lab]; dup {
				return nil, &EncodingCollisionError{
					Label:     lab,
					Lithology: k,
					Sides:     sides,
					Bits:      lab.OnesCount(),
					Want:      nFaults + 1,
					Other:     &prev,
				}
			}
			tuples[lab] = Tuple{Lithology: k, Sides: sides}
			s.index[lab] = len(s.labels)
			s.labels = append(s.labels, lab)
			s.strings = append(s.strings, lab.Binary(layout.Width()))
		}
	}

	return s, nil
}

// Layout returns the layout the space was built for.
func (s *Space) Layout() Layout { return s.layout }

// Len returns the number of canonical labels.
func (s *Space) Len() int { return len(s.labels) }

// Labels returns the canonical labels in order.
func (s *Space) Labels() []Label {
	out := make([]Label, len(s.labels))
	copy(out, s.labels)
	return out
}

// Strings returns the canonical fixed-width binary strings in order.
func (s *Space) Strings() []string {
	out := make([]string, len(s.strings))
	copy(out, s.strings)
	return out
}

// Index returns the position of lab in the canonical order.
func (s *Space) Index(lab Label) (int, bool) {
	i, ok := s.index[lab]
	return i, ok
}

// At returns the canonical label at position i.
func (s *Space) At(i int) Label { return s.labels[i] }
