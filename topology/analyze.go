// SPDX-License-Identifier: MIT

package topology

import (
	"context"
	"log/slog"

	"github.com/Panjichuan/gempy/label"
	"github.com/Panjichuan/gempy/voxel"
)

// Analyze runs the whole pipeline on a lithology volume and fault-block
// stack: encode, build the signature block, extract edges, resolve centroids
// and lithologies, enumerate the label space and build the adjacency matrix.
//
// The fault count is fb.Layers(); nLayers is the number of lithologies.
// Analyze is deterministic: identical inputs and options give identical
// results.
// Returns ErrOptionViolation for bad options and the typed failure of the
// first stage that rejects the data.
// Complexity: O(V·(nFaults + d) + K²).
func Analyze(lb *voxel.Volume, fb *voxel.Stack, nLayers int, opts ...Option) (*Result, error) {
	o, err := gather(opts)
	if err != nil {
		return nil, err
	}
	log := o.Logger
	debug := log.Enabled(context.Background(), slog.LevelDebug)

	layout, err := label.NewLayout(o.Layout, fb.Layers(), nLayers)
	if err != nil {
		return nil, err
	}
	var encOpts []label.EncodeOption
	if o.HasBase {
		encOpts = append(encOpts, label.WithLithologyBase(o.LithologyBase))
	}
	field, err := label.Encode(lb, fb, layout, encOpts...)
	if err != nil {
		return nil, err
	}
	present := field.Labels()
	if debug {
		keys := make([]string, len(present))
		for i, l := range present {
			keys[i] = l.Binary(layout.Width())
		}
		log.Debug("label field",
			slog.String("layout", layout.String()),
			slog.Int("labels", len(present)),
			slog.Any("binary", keys))
	}

	if o.SignatureCheck {
		if _, err := label.PairSums(present); err != nil {
			return nil, err
		}
	}

	block, err := buildBlock(field, o)
	if err != nil {
		return nil, err
	}
	edges, err := Edges(block, field)
	if err != nil {
		return nil, err
	}
	log.Debug("edges", slog.Int("count", len(edges)))

	cent := Centroids(field)
	liths, err := Lithologies(field)
	if err != nil {
		return nil, err
	}
	space, err := label.NewSpace(layout)
	if err != nil {
		return nil, err
	}
	m, err := AdjacencyMatrix(space, edges, present)
	if err != nil {
		return nil, err
	}
	g, err := newGraph(field, edges, cent, liths, o)
	if err != nil {
		return nil, err
	}
	log.Debug("adjacency matrix", slog.Int("keys", m.Len()), slog.Int("set", m.Count()))

	return &Result{
		Field:     field,
		Block:     block,
		Edges:     edges,
		Centroids: cent,
		Lithology: liths,
		Space:     space,
		Matrix:    m,
		Graph:     g,
	}, nil
}
