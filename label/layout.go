package label

import "fmt"

// NewLayout validates the cardinalities and returns the Layout.
// Returns ErrBadCardinality if nFaults < 0 or nLayers < 1 and
// ErrLayoutTooWide if the layout needs more than MaxWidth bits.
// Complexity: O(1).
func NewLayout(kind LayoutKind, nFaults, nLayers int) (Layout, error) {
	if nFaults < 0 || nLayers < 1 {
		return Layout{}, fmt.Errorf("%w: faults=%d layers=%d", ErrBadCardinality, nFaults, nLayers)
	}
	if kind != Disjoint && kind != Overlapping {
		return Layout{}, fmt.Errorf("label: unknown layout kind %d", int(kind))
	}
	l := Layout{kind: kind, nFaults: nFaults, nLayers: nLayers}
	if w := l.Width(); w > MaxWidth {
		return Layout{}, fmt.Errorf("%w: %d bits > %d", ErrLayoutTooWide, w, MaxWidth)
	}

	return l, nil
}

// Kind returns the bit assignment scheme.
func (l Layout) Kind() LayoutKind { return l.kind }

// Faults returns the number of fault blocks.
func (l Layout) Faults() int { return l.nFaults }

// Layers returns the number of lithologies.
func (l Layout) Layers() int { return l.nLayers }

// FaultBit returns the bit position of side (0 or 1) of fault i.
func (l Layout) FaultBit(i, side int) int {
	if l.kind == Overlapping {
		return i + side
	}
	return 2*i + side
}

// LithologyOffset returns the bit position of lithology index 0.
func (l Layout) LithologyOffset() int {
	if l.kind == Overlapping {
		return l.nFaults + 2
	}
	return 2 * l.nFaults
}

// LithologyBit returns the bit position of lithology index k.
func (l Layout) LithologyBit(k int) int {
	return l.LithologyOffset() + k
}

// Width returns the fixed binary width of labels under this layout:
// 2·nFaults+nLayers, widened for Overlapping when the lithology bits need
// more room.
func (l Layout) Width() int {
	w := 2*l.nFaults + l.nLayers
	if top := l.LithologyOffset() + l.nLayers; top > w {
		w = top
	}
	return w
}

// FaultMask returns a label with every fault bit set.
func (l Layout) FaultMask() Label {
	var m Label
	for i := 0; i < l.nFaults; i++ {
		m |= 1<<uint(l.FaultBit(i, 0)) | 1<<uint(l.FaultBit(i, 1))
	}
	return m
}

// LithologyMask returns a label with every lithology bit set.
func (l Layout) LithologyMask() Label {
	var m Label
	for k := 0; k < l.nLayers; k++ {
		m |= 1 << uint(l.LithologyBit(k))
	}
	return m
}

// Encode returns the label of lithology index k and the given fault sides.
// Flags are summed, not OR-ed, so a shared bit carries into the next position
// exactly as the array arithmetic does; the result is then required to have
// nFaults+1 bits set.
// Returns ErrFaultCountMismatch, ErrFaultSide, ErrLithologyRange for bad
// arguments and *EncodingCollisionError when flags collide.
// Complexity: O(nFaults).
func (l Layout) Encode(k int, sides []int) (Label, error) {
	if len(sides) != l.nFaults {
		return 0, fmt.Errorf("%w: %d sides for %d faults", ErrFaultCountMismatch, len(sides), l.nFaults)
	}
	if k < 0 || k >= l.nLayers {
		return 0, fmt.Errorf("%w: index %d of %d", ErrLithologyRange, k, l.nLayers)
	}
	lab := Label(1) << uint(l.LithologyBit(k))
	for i, s := range sides {
		if s != 0 && s != 1 {
			return 0, fmt.Errorf("%w: fault %d side %d", ErrFaultSide, i, s)
		}
		lab += Label(1) << uint(l.FaultBit(i, s))
	}
	if n := lab.OnesCount(); n != l.nFaults+1 {
		return 0, &EncodingCollisionError{
			Label:     lab,
			Lithology: k,
			Sides:     append([]int(nil), sides...),
			Bits:      n,
			Want:      l.nFaults + 1,
		}
	}

	return lab, nil
}

// Decode recovers the tuple encoded in lab.
// Returns ErrUndecodable when lab is not a valid label of this layout.
// Complexity: O(nFaults).
func (l Layout) Decode(lab Label) (Tuple, error) {
	if lab.OnesCount() != l.nFaults+1 || lab&^(l.FaultMask()|l.LithologyMask()) != 0 {
		return Tuple{}, fmt.Errorf("%w: %b", ErrUndecodable, uint64(lab))
	}
	lith := -1
	for k := 0; k < l.nLayers; k++ {
		if lab.Has(l.LithologyBit(k)) {
			lith = k
			break
		}
	}
	if lith < 0 {
		return Tuple{}, fmt.Errorf("%w: no lithology bit in %b", ErrUndecodable, uint64(lab))
	}
	// Faults are decoded in order; under Overlapping the low bit of fault i is
	// taken by fault i-1 when that fault chose its high side.
	sides := make([]int, l.nFaults)
	used := Label(0)
	for i := 0; i < l.nFaults; i++ {
		lo, hi := Label(1)<<uint(l.FaultBit(i, 0)), Label(1)<<uint(l.FaultBit(i, 1))
		switch {
		case lab&lo != 0 && used&lo == 0:
			sides[i] = 0
			used |= lo
		case lab&hi != 0 && used&hi == 0:
			sides[i] = 1
			used |= hi
		default:
			return Tuple{}, fmt.Errorf("%w: fault %d has no side in %b", ErrUndecodable, i, uint64(lab))
		}
	}

	return Tuple{Lithology: lith, Sides: sides}, nil
}

// String formats the layout for logs.
func (l Layout) String() string {
	return fmt.Sprintf("%s(faults=%d, layers=%d, width=%d)", l.kind, l.nFaults, l.nLayers, l.Width())
}
