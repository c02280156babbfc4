package label

// PairSums returns a look-up table from contact signature (the sum of two
// labels) to the unordered pair producing it, for every pair of the given
// labels including self pairs (a, a), which interior voxels produce.
// Returns *SignatureCollisionError for the first two pairs sharing a sum.
// Duplicate input labels are ignored.
// Complexity: O(k²) for k labels.
func PairSums(labels []Label) (map[int64]Pair, error) {
	uniq := make([]Label, 0, len(labels))
	seen := make(map[Label]bool, len(labels))
	for _, l := range labels {
		if !seen[l] {
			seen[l] = true
			uniq = append(uniq, l)
		}
	}

	out := make(map[int64]Pair, len(uniq)*(len(uniq)+1)/2)
	for i, a := range uniq {
		for _, b := range uniq[i:] {
			p := MakePair(a, b)
			s := p.Sum()
			if prev, ok := out[s]; ok {
				return nil, &SignatureCollisionError{Sum: s, First: prev, Second: p}
			}
			out[s] = p
		}
	}

	return out, nil
}
