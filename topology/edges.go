// SPDX-License-Identifier: MIT

package topology

import (
	"fmt"
	"sort"

	"github.com/Panjichuan/gempy/label"
	"github.com/Panjichuan/gempy/voxel"
)

// sighting is the first pair observed for one signature.
type sighting struct {
	pair label.Pair
	at   voxel.Coord
}

// Edges resolves every signature of block to the label pair producing it and
// returns the distinct non-self pairs, sorted by (A, B).
//
// Per axis, the two voxels behind each signature cell are read from field at
// the same offsets the block was built with. All cells sharing one signature
// must name the same unordered pair; otherwise *AmbiguousBoundaryError is
// returned. Self pairs (s == 2·label, the interior of one body) take part in
// that check but are not edges.
// Returns ErrBlockMismatch if block was built from a field of another shape.
// Complexity: O(V) per axis, O(E log E) to sort.
func Edges(block *Block, field *label.Field) ([]Edge, error) {
	if block.FieldShape() != field.Shape() {
		return nil, fmt.Errorf("%w: block for %s, field %s", ErrBlockMismatch, block.FieldShape(), field.Shape())
	}

	vol := field.Volume()
	axes := make(map[label.Pair]uint8)
	for _, ab := range block.Axes() {
		if ab.Empty() {
			continue
		}
		seen := make(map[int64]sighting)
		sig := ab.Signatures
		for i := 0; i < sig.Len(); i++ {
			p := ab.Origin.Add(sig.Coordinate(i))
			q := p.Step(ab.Axis, block.Shift())
			pair := label.MakePair(field.At(vol.Index(p)), field.At(vol.Index(q)))
			s := sig.Value(i)

			prev, ok := seen[s]
			switch {
			case !ok:
				seen[s] = sighting{pair: pair, at: p}
			case prev.pair != pair:
				return nil, &AmbiguousBoundaryError{
					Axis:      ab.Axis,
					Signature: s,
					First:     prev.pair,
					Second:    pair,
					FirstAt:   prev.at,
					SecondAt:  p,
				}
			default:
				continue
			}
			if !pair.Self() {
				axes[pair] |= 1 << uint(ab.Axis)
			}
		}
	}

	out := make([]Edge, 0, len(axes))
	for p, mask := range axes {
		e := Edge{A: p.A, B: p.B}
		for _, a := range voxel.Axes {
			if mask&(1<<uint(a)) != 0 {
				e.Axes = append(e.Axes, a)
			}
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})

	return out, nil
}
