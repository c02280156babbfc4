package solution

import "errors"

var (
	// ErrEmptyBlockMatrix indicates a block matrix without rows or realizations.
	ErrEmptyBlockMatrix = errors.New("solution: empty block matrix")

	// ErrRaggedBlockMatrix indicates rows of unequal length.
	ErrRaggedBlockMatrix = errors.New("solution: ragged block matrix")

	// ErrVoxelCount indicates a voxel axis that does not match the grid shape.
	ErrVoxelCount = errors.New("solution: voxel count does not match grid")

	// ErrNonFinite indicates a NaN or infinite block value.
	ErrNonFinite = errors.New("solution: non-finite block value")
)
