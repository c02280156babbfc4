package topology

import (
	"github.com/Panjichuan/gempy/label"
	"github.com/Panjichuan/gempy/matrix"
)

// AdjacencyMatrix builds the boolean adjacency matrix over the canonical
// label space:
//   - both [a,b] and [b,a] are set for every edge;
//   - [l,l] is set for every label in present, edge or not.
//
// Rows and columns are named by space.Strings(), so matrices of models with
// the same layout line up regardless of which labels occur.
// Returns *LabelNotInSpaceError for any label without a canonical index.
// Complexity: O(K² + E + P) for K canonical labels.
func AdjacencyMatrix(space *label.Space, edges []Edge, present []label.Label) (*matrix.Adjacency, error) {
	m, err := matrix.NewAdjacency(space.Strings())
	if err != nil {
		return nil, err
	}
	index := func(l label.Label) (int, error) {
		i, ok := space.Index(l)
		if !ok {
			lay := space.Layout()
			return 0, &LabelNotInSpaceError{Label: l, Binary: l.Binary(lay.Width()), Layout: lay}
		}
		return i, nil
	}

	for _, e := range edges {
		i, err := index(e.A)
		if err != nil {
			return nil, err
		}
		j, err := index(e.B)
		if err != nil {
			return nil, err
		}
		if err := m.Set(i, j); err != nil {
			return nil, err
		}
		if err := m.Set(j, i); err != nil {
			return nil, err
		}
	}
	for _, l := range present {
		i, err := index(l)
		if err != nil {
			return nil, err
		}
		if err := m.Set(i, i); err != nil {
			return nil, err
		}
	}

	return m, nil
}
