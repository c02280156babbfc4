// SPDX-License-Identifier: MIT

package topology

import (
	"fmt"
	"sort"

	"github.com/Panjichuan/gempy/label"
)

// Graph is the topology graph of one field: one Node per present label and
// one undirected edge per Edge. It is immutable once built.
type Graph struct {
	nodes []Node
	index map[label.Label]int
	adj   map[label.Label][]label.Label
	edges []Edge
}

// NewGraph assembles the graph of field from its edges, resolving centroids,
// lithologies and region counts.
// Returns ErrOptionViolation for bad options, *label.UnresolvedLithologyError
// for an unresolvable label and ErrUnknownNode for an edge endpoint missing
// from field.
// Complexity: O(V·d + E log E).
func NewGraph(field *label.Field, edges []Edge, opts ...Option) (*Graph, error) {
	o, err := gather(opts)
	if err != nil {
		return nil, err
	}
	liths, err := Lithologies(field)
	if err != nil {
		return nil, err
	}
	return newGraph(field, edges, Centroids(field), liths, o)
}

func newGraph(field *label.Field, edges []Edge, cent map[label.Label]Point, liths map[label.Label]int64, o Options) (*Graph, error) {
	layout := field.Layout()
	counts := field.Counts()
	regions := field.Volume().RegionCounts(o.Connectivity)
	labels := field.Labels()

	g := &Graph{
		nodes: make([]Node, 0, len(labels)),
		index: make(map[label.Label]int, len(labels)),
		adj:   make(map[label.Label][]label.Label, len(labels)),
		edges: append([]Edge(nil), edges...),
	}
	for _, lab := range labels {
		tup, err := layout.Decode(lab)
		if err != nil {
			return nil, err
		}
		g.index[lab] = len(g.nodes)
		g.nodes = append(g.nodes, Node{
			Label:     lab,
			Key:       lab.Binary(layout.Width()),
			Lithology: liths[lab],
			Sides:     tup.Sides,
			Centroid:  cent[lab],
			Voxels:    counts[lab],
			Regions:   regions[int64(lab)],
		})
		g.adj[lab] = nil
	}
	for _, e := range edges {
		if _, ok := g.index[e.A]; !ok {
			return nil, fmt.Errorf("%w: edge endpoint %d", ErrUnknownNode, uint64(e.A))
		}
		if _, ok := g.index[e.B]; !ok {
			return nil, fmt.Errorf("%w: edge endpoint %d", ErrUnknownNode, uint64(e.B))
		}
		g.adj[e.A] = append(g.adj[e.A], e.B)
		g.adj[e.B] = append(g.adj[e.B], e.A)
	}
	for _, nbrs := range g.adj {
		sort.Slice(nbrs, func(i, j int) bool { return nbrs[i] < nbrs[j] })
	}

	return g, nil
}

// Nodes returns the nodes in ascending label order.
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Node returns the node of lab.
func (g *Graph) Node(lab label.Label) (Node, bool) {
	i, ok := g.index[lab]
	if !ok {
		return Node{}, false
	}
	return g.nodes[i], true
}

// Edges returns the edges sorted by (A, B).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// Neighbors returns the labels adjacent to lab, ascending.
// Returns ErrUnknownNode if lab is not a node.
func (g *Graph) Neighbors(lab label.Label) ([]label.Label, error) {
	nbrs, ok := g.adj[lab]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownNode, uint64(lab))
	}
	return append([]label.Label(nil), nbrs...), nil
}

// HasEdge reports whether a and b are adjacent. Self pairs are never edges.
func (g *Graph) HasEdge(a, b label.Label) bool {
	nbrs := g.adj[a]
	i := sort.Search(len(nbrs), func(i int) bool { return nbrs[i] >= b })
	return i < len(nbrs) && nbrs[i] == b
}

// Degree returns the number of neighbours of lab.
// Returns ErrUnknownNode if lab is not a node.
func (g *Graph) Degree(lab label.Label) (int, error) {
	nbrs, ok := g.adj[lab]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownNode, uint64(lab))
	}
	return len(nbrs), nil
}

// HopResult holds the outcome of a breadth-first walk:
//   - Order: nodes in visit sequence.
//   - Depth: hop distance of every reached node from the start.
//   - Parent: predecessor of every reached node except the start.
type HopResult struct {
	Order  []label.Label
	Depth  map[label.Label]int
	Parent map[label.Label]label.Label
}

// Hops walks the graph breadth-first from start, visiting neighbours in
// ascending label order.
// Returns ErrUnknownNode if start is not a node.
// Complexity: O(N + E).
func (g *Graph) Hops(start label.Label) (*HopResult, error) {
	if _, ok := g.index[start]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownNode, uint64(start))
	}
	res := &HopResult{
		Order:  make([]label.Label, 0, len(g.nodes)),
		Depth:  map[label.Label]int{start: 0},
		Parent: make(map[label.Label]label.Label),
	}
	queue := []label.Label{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, cur)
		for _, nbr := range g.adj[cur] {
			if _, seen := res.Depth[nbr]; seen {
				continue
			}
			res.Depth[nbr] = res.Depth[cur] + 1
			res.Parent[nbr] = cur
			queue = append(queue, nbr)
		}
	}
	return res, nil
}

// PathTo reconstructs the path from the start of the walk to dest.
// Returns ErrUnknownNode if dest was not reached.
func (r *HopResult) PathTo(dest label.Label) ([]label.Label, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: no path to %d", ErrUnknownNode, uint64(dest))
	}
	path := []label.Label{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
