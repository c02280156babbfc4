// Package topology derives the topology graph of a labelled voxel model:
// which geobodies touch, where their centres lie and which lithology each
// one belongs to.
//
// What:
//
//   - BuildBlock shifts the label field by Shift voxels along every axis and
//     sums the two halves. Each sum is a contact signature; a face between
//     bodies a and b yields a+b, an interior face of body a yields 2a.
//   - Edges resolves every signature to its label pair, verifies that no
//     signature is claimed by two pairs and returns the distinct non-self
//     pairs.
//   - Centroids and Lithologies resolve per-node attributes.
//   - AdjacencyMatrix lays edges and self-adjacency onto the canonical label
//     space of label.NewSpace.
//   - Analyze runs the full pipeline and also assembles a Graph with
//     neighbour queries and breadth-first hop distances.
//
// Why:
//
//   - Signature arithmetic turns adjacency detection into a few bulk passes
//     over the grid, with no per-region bookkeeping.
//   - Matrices over the canonical space, not over the observed labels, make
//     models with equal fault and layer counts directly comparable.
//
// Options:
//
//	WithShift(n)          shift distance (default 1)
//	WithoutCrop()         keep every face on the non-shifted axes
//	WithLayout(kind)      label bit assignment (default label.Disjoint)
//	WithLithologyBase(b)  lithology id of index 0 (default min(lb))
//	WithSignatureCheck()  reject fields whose label sums are not unique
//	WithConnectivity(c)   neighbourhood for region counts (default Conn6)
//	WithLogger(l)         debug logger (default discards)
//
// Complexity:
//
//   - BuildBlock, Edges, Centroids: O(V) each.
//   - AdjacencyMatrix: O(K²) for K canonical labels.
//   - Graph.Hops: O(N + E).
//
// Errors:
//
//   - ErrOptionViolation, ErrBadShift, ErrShiftTooLarge: bad parameters.
//   - ErrAmbiguousBoundary (*AmbiguousBoundaryError): one signature on one
//     axis produced by two label pairs.
//   - ErrLabelNotInSpace (*LabelNotInSpaceError): an observed label with no
//     canonical index.
//   - label errors (encoding collisions, unresolved lithologies) pass through
//     unchanged.
package topology
