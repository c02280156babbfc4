// Package solution reads the block matrix of a computed geomodel and serves
// the rounded lithology volume and fault-block stack used for topology
// analysis.
//
// What:
//
//   - BlockMatrix holds the per-voxel block values of a model solution, shaped
//     [block][realization][voxel]. The last block row is the lithology id
//     block; the preceding rows are one fault block each.
//   - Extract takes realization 0 of every row, rounds half to even and
//     reshapes the flat voxel axis onto the grid.
//   - Catalog describes surfaces and their series, and FaultIDs returns the
//     surface ids that belong to a fault series.
//
// Errors:
//
//   - ErrEmptyBlockMatrix: no block rows or no realizations.
//   - ErrRaggedBlockMatrix: rows of differing length.
//   - ErrVoxelCount: the voxel axis does not match the grid.
//   - ErrNonFinite: a NaN or infinite value that cannot be rounded to an id.
package solution
