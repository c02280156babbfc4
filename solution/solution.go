// SPDX-License-Identifier: MIT

package solution

import (
	"fmt"
	"math"

	"github.com/Panjichuan/gempy/voxel"
)

// NewBlockMatrix deep-copies data into a BlockMatrix.
// Returns ErrEmptyBlockMatrix if there are no blocks or no realizations and
// ErrRaggedBlockMatrix if realizations or voxel rows differ in length.
// Complexity: O(B·R·V).
func NewBlockMatrix(data [][][]float64) (*BlockMatrix, error) {
	if len(data) == 0 || len(data[0]) == 0 {
		return nil, ErrEmptyBlockMatrix
	}
	nr, nv := len(data[0]), len(data[0][0])
	out := make([][][]float64, len(data))
	for b, block := range data {
		if len(block) != nr {
			return nil, fmt.Errorf("%w: block %d has %d realizations, want %d", ErrRaggedBlockMatrix, b, len(block), nr)
		}
		out[b] = make([][]float64, nr)
		for r, row := range block {
			if len(row) != nv {
				return nil, fmt.Errorf("%w: block %d realization %d has %d voxels, want %d",
					ErrRaggedBlockMatrix, b, r, len(row), nv)
			}
			out[b][r] = append([]float64(nil), row...)
		}
	}

	return &BlockMatrix{data: out}, nil
}

// Blocks returns the number of block rows (faults + 1).
func (m *BlockMatrix) Blocks() int { return len(m.data) }

// Realizations returns the number of realizations per block.
func (m *BlockMatrix) Realizations() int { return len(m.data[0]) }

// Voxels returns the length of the flat voxel axis.
func (m *BlockMatrix) Voxels() int { return len(m.data[0][0]) }

// Row returns block b of realization r. The slice must not be modified.
func (m *BlockMatrix) Row(b, r int) []float64 { return m.data[b][r] }

// Faults returns the number of fault block rows.
func (m *BlockMatrix) Faults() int { return len(m.data) - 1 }

// Extract serves the lithology volume and fault-block stack of realization 0.
// The last block row is the lithology block and the preceding rows are the
// fault blocks, in order. Values are rounded half to even before conversion.
// Returns ErrVoxelCount if the voxel axis length differs from shape.Len() and
// ErrNonFinite for NaN or infinite values.
// Complexity: O(B·V).
func Extract(m *BlockMatrix, shape voxel.Shape) (*voxel.Volume, *voxel.Stack, error) {
	if !shape.Valid() {
		return nil, nil, fmt.Errorf("%w: %s", voxel.ErrEmptyShape, shape)
	}
	if m.Voxels() != shape.Len() {
		return nil, nil, fmt.Errorf("%w: %d voxels, grid %s has %d", ErrVoxelCount, m.Voxels(), shape, shape.Len())
	}

	lb, err := rounded(m.Row(m.Blocks()-1, 0), shape, m.Blocks()-1)
	if err != nil {
		return nil, nil, err
	}
	faults := make([]*voxel.Volume, m.Faults())
	for b := range faults {
		if faults[b], err = rounded(m.Row(b, 0), shape, b); err != nil {
			return nil, nil, err
		}
	}
	fb, err := voxel.NewStack(shape, faults...)
	if err != nil {
		return nil, nil, err
	}

	return lb, fb, nil
}

func rounded(row []float64, shape voxel.Shape, block int) (*voxel.Volume, error) {
	vals := make([]int64, len(row))
	for i, f := range row {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("%w: block %d voxel %d is %v", ErrNonFinite, block, i, f)
		}
		vals[i] = int64(math.RoundToEven(f))
	}
	return voxel.NewVolume(shape, vals)
}

// FaultIDs returns the ids of the surfaces whose series is a fault series,
// in catalog order.
func (c Catalog) FaultIDs() []int64 {
	fault := make(map[string]bool, len(c.Series))
	for _, s := range c.Series {
		if s.IsFault {
			fault[s.Name] = true
		}
	}
	out := make([]int64, 0, len(c.Surfaces))
	for _, s := range c.Surfaces {
		if fault[s.Series] {
			out = append(out, s.ID)
		}
	}
	return out
}
