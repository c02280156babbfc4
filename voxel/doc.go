// Package voxel treats a regular 3D grid of integer cells as the common
// substrate of the topology pipeline.
//
// What:
//
//   - Shape describes an (NX, NY, NZ) grid; Coord addresses one voxel.
//   - Volume stores one int64 per voxel in flat C order: (x*NY+y)*NZ+z,
//     the same order numpy uses for a (nx, ny, nz) array.
//   - Stack holds several volumes of one Shape along a leading layer axis
//     (one layer per fault plane, for instance).
//   - Window is a read-only view of a Volume at an offset; the topology
//     package uses two windows shifted by n voxels to compare neighbours.
//   - Regions splits the voxels carrying one value into connected pieces.
//
// Why:
//
//   - All pipeline stages agree on one addressing scheme, so a flat index
//     computed in one stage is valid in every other.
//   - Volumes are deep-copied on construction and never mutated, which keeps
//     every derived structure reproducible from its inputs.
//
// Complexity:
//
//   - NewVolume, Unique, Min/Max: O(V) time, O(V) memory (V = NX·NY·NZ).
//   - At, Index, Coordinate, Window.At: O(1).
//   - Regions: O(V·d) time, O(V) memory (d = 6 or 26 neighbours).
//
// Errors:
//
//   - ErrEmptyShape: a dimension is not positive.
//   - ErrShapeMismatch: value count or layer shapes disagree with the Shape.
//   - ErrOutOfBounds: a coordinate or window lies outside the grid.
package voxel
