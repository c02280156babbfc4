package label

// LithologyTable maps lithology-only bit patterns to lithology ids.
// It is built once per layout and compared by exact key, never by substring.
type LithologyTable struct {
	layout Layout
	ids    map[Label]int64
}

// NewLithologyTable builds the table for layout. Lithology index k maps to
// id base+k.
// Complexity: O(nLayers).
func NewLithologyTable(layout Layout, base int64) *LithologyTable {
	ids := make(map[Label]int64, layout.Layers())
	for k := 0; k < layout.Layers(); k++ {
		ids[Label(1)<<uint(layout.LithologyBit(k))] = base + int64(k)
	}
	return &LithologyTable{layout: layout, ids: ids}
}

// Len returns the number of lithology patterns.
func (t *LithologyTable) Len() int { return len(t.ids) }

// Lookup clears the fault bits of lab and returns the lithology id of the
// remaining pattern. Returns *UnresolvedLithologyError when the remainder is
// not exactly one known lithology pattern.
// Complexity: O(1).
func (t *LithologyTable) Lookup(lab Label) (int64, error) {
	rest := lab &^ t.layout.FaultMask()
	if id, ok := t.ids[rest]; ok {
		return id, nil
	}
	return 0, &UnresolvedLithologyError{
		Label:     lab,
		Remaining: rest,
		Matches:   (rest & t.layout.LithologyMask()).OnesCount(),
	}
}
