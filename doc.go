// Package gempy analyses the contact topology of voxel geomodels.
//
// A geomodel is a regular grid whose voxels carry a lithology id and, for
// every fault, the side of the fault they lie on. Each distinct combination
// is a geobody. Two geobodies are adjacent when they touch across a voxel
// face. The packages below turn the grids into a topology graph and an
// adjacency matrix over every label the configuration can produce.
//
//	voxel/     3-D integer grids, windows, stacks and connected regions
//	label/     bit layouts, label encoding, the canonical label space
//	topology/  shift-and-sum signature blocks, edges, centroids, Analyze
//	matrix/    square boolean adjacency matrix keyed by binary labels
//	solution/  block matrices of a computed model and their extraction
//	volio/     model container files and surface catalogs
//	config/    YAML/TOML run configuration and logging
//	metrics/   Prometheus metrics of analysis runs
//
// Quick example, one fault splitting two layers:
//
//	  x=0     x=1
//	┌───────┬───────┐
//	│ 0101  │ 1010  │   lithology 1, low side │ lithology 2, high side
//	└───────┴───────┘
//
//	res, _ := topology.Analyze(lb, fb, 2)
//	res.Edges        // [{5 10 [x]}]
//	fmt.Print(res.Matrix)
//	// 0101 1..1
//	// 0110 ....
//	// 1001 ....
//	// 1010 1..1
//
// The command geotopo (cmd/geotopo) runs the same pipeline on a model file.
package gempy
