// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"
)

// Adjacency is a square boolean matrix with named rows and columns.
// Keys[i] names row and column i; Index is its inverse.
// data holds K*K cells in row-major order.
type Adjacency struct {
	Keys  []string
	Index map[string]int
	data  []bool
}

// NewAdjacency creates an all-false matrix over keys.
// Stage 1 (Validate): keys are non-empty and unique.
// Stage 2 (Prepare): copy keys and build the index.
// Stage 3 (Finalize): allocate K*K cells.
// Returns ErrBadShape on empty or duplicate keys.
// Complexity: O(K²) time and memory.
func NewAdjacency(keys []string) (*Adjacency, error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("NewAdjacency: no keys: %w", ErrBadShape)
	}
	idx := make(map[string]int, len(keys))
	for i, k := range keys {
		if _, dup := idx[k]; dup {
			return nil, fmt.Errorf("NewAdjacency: duplicate key %q: %w", k, ErrBadShape)
		}
		idx[k] = i
	}

	return &Adjacency{
		Keys:  append([]string(nil), keys...),
		Index: idx,
		data:  make([]bool, len(keys)*len(keys)),
	}, nil
}

// Len returns the number of keys (the matrix dimension).
func (a *Adjacency) Len() int {
	return len(a.Keys)
}

func (a *Adjacency) offset(method string, i, j int) (int, error) {
	n := len(a.Keys)
	if i < 0 || i >= n || j < 0 || j >= n {
		return 0, fmt.Errorf("Adjacency.%s(%d,%d): %w", method, i, j, ErrOutOfRange)
	}
	return i*n + j, nil
}

// Set marks cell (i, j) true. It does not mirror the entry; callers that
// need symmetry set both (i, j) and (j, i).
// Complexity: O(1).
func (a *Adjacency) Set(i, j int) error {
	off, err := a.offset("Set", i, j)
	if err != nil {
		return err
	}
	a.data[off] = true
	return nil
}

// At reports the value of cell (i, j).
// Complexity: O(1).
func (a *Adjacency) At(i, j int) (bool, error) {
	off, err := a.offset("At", i, j)
	if err != nil {
		return false, err
	}
	return a.data[off], nil
}

// Lookup reports the value of the cell named by two keys.
// Complexity: O(1).
func (a *Adjacency) Lookup(u, v string) (bool, error) {
	i, ok := a.Index[u]
	if !ok {
		return false, fmt.Errorf("Adjacency.Lookup: %q: %w", u, ErrUnknownKey)
	}
	j, ok := a.Index[v]
	if !ok {
		return false, fmt.Errorf("Adjacency.Lookup: %q: %w", v, ErrUnknownKey)
	}
	return a.data[i*len(a.Keys)+j], nil
}

// Neighbors returns the keys of the true cells in the row of key, in key
// order. The diagonal is included when set.
// Complexity: O(K).
func (a *Adjacency) Neighbors(key string) ([]string, error) {
	i, ok := a.Index[key]
	if !ok {
		return nil, fmt.Errorf("Adjacency.Neighbors: %q: %w", key, ErrUnknownKey)
	}
	n := len(a.Keys)
	out := make([]string, 0, 8)
	for j, v := range a.data[i*n : (i+1)*n] {
		if v {
			out = append(out, a.Keys[j])
		}
	}
	return out, nil
}

// Row returns a copy of row i.
func (a *Adjacency) Row(i int) ([]bool, error) {
	if _, err := a.offset("Row", i, 0); err != nil {
		return nil, err
	}
	n := len(a.Keys)
	return append([]bool(nil), a.data[i*n:(i+1)*n]...), nil
}

// Symmetric reports whether cell (i, j) equals cell (j, i) for all i, j.
// Complexity: O(K²).
func (a *Adjacency) Symmetric() bool {
	n := len(a.Keys)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if a.data[i*n+j] != a.data[j*n+i] {
				return false
			}
		}
	}
	return true
}

// Count returns the number of true cells.
func (a *Adjacency) Count() int {
	c := 0
	for _, v := range a.data {
		if v {
			c++
		}
	}
	return c
}

// String renders the matrix one row per line, 1 for true and . for false.
func (a *Adjacency) String() string {
	var sb strings.Builder
	n := len(a.Keys)
	for i := 0; i < n; i++ {
		sb.WriteString(a.Keys[i])
		sb.WriteByte(' ')
		for j := 0; j < n; j++ {
			if a.data[i*n+j] {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
