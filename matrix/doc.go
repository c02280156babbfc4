// Package matrix offers the boolean adjacency matrix of a topology graph
// over a fixed, externally supplied key order.
//
// The matrix package provides:
//
//   - Adjacency, a square row-major boolean matrix whose rows and columns are
//     named by string keys (the canonical binary label strings).
//   - O(1) Set/At by index or key, row scans via Neighbors, and structural
//     checks (Symmetric, Count).
//
// Keys are fixed at construction, so matrices built for models with the same
// cardinalities are comparable cell by cell even when one model lacks some
// geobodies. Memory is O(K²) for K keys.
//
// Errors:
//
//   - ErrBadShape: empty or duplicate key list.
//   - ErrOutOfRange: row or column index outside [0, K).
//   - ErrUnknownKey: a key not present in the index.
package matrix
