// Package label encodes lithology and fault-block volumes into one bit-packed
// integer field whose values identify geobodies.
//
// What:
//
//   - Label is a uint64 bitset. One bit marks the lithology of a voxel and one
//     bit per fault marks the side of that fault the voxel lies on, so every
//     valid label has exactly nFaults+1 bits set.
//   - Layout fixes the bit positions for a (nFaults, nLayers) configuration.
//     Disjoint (default) gives fault i the bits {2i, 2i+1} and the lithologies
//     the bits from 2·nFaults upwards; Overlapping reproduces the compact scheme
//     where fault i uses {i, i+1} and lithologies start at nFaults+2.
//   - Encode turns a lithology volume and a fault-block stack into a Field.
//   - Space enumerates every structurally valid label of a Layout in a
//     canonical order, independent of which labels occur in one model, so
//     adjacency matrices of different models with the same cardinalities line up.
//   - LithologyTable maps a label back to its lithology id by exact comparison
//     of the lithology bit range.
//   - PairSums checks in advance that no two label pairs share a contact sum.
//
// Encoding (Disjoint, nFaults=2, nLayers=3, width 7):
//
//	bit:   6 5 4 | 3 2 | 1 0
//	       lith  | f1  | f0
//	lith 0, f0 side 1, f1 side 0  →  0010110  (22)
//
// The two layouts give different label values for the same voxel. With one
// fault and two lithologies, the low-side lithology 1 and high-side
// lithology 2 bodies are 5 and 10 under Disjoint but 9 and 18 under
// Overlapping. Labels from other tools that use the compact scheme compare
// only against an Overlapping layout, and each layout has its own Space.
//
// Errors:
//
//   - ErrBadCardinality, ErrLayoutTooWide: invalid Layout parameters.
//   - ErrFaultCountMismatch, ErrFaultSide, ErrLithologyRange: input volumes
//     disagree with the Layout.
//   - ErrEncodingCollision (*EncodingCollisionError): two bit flags landed on
//     the same position, so the label no longer identifies its tuple.
//   - ErrUnresolvedLithology (*UnresolvedLithologyError): a label's lithology
//     bits match no single lithology.
//   - ErrSignatureCollision (*SignatureCollisionError): two label pairs sum to
//     the same contact signature.
package label
