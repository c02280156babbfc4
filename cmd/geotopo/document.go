package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Panjichuan/gempy/solution"
	"github.com/Panjichuan/gempy/topology"
)

// Document is the serialized result of one run.
type Document struct {
	RunID  string     `json:"run_id" yaml:"run_id"`
	Layout string     `json:"layout" yaml:"layout"`
	Shape  [3]int     `json:"shape" yaml:"shape,flow"`
	Nodes  []NodeDoc  `json:"nodes" yaml:"nodes"`
	Edges  []EdgeDoc  `json:"edges" yaml:"edges"`
	Keys   []string   `json:"keys" yaml:"keys"`
	Matrix []string   `json:"matrix" yaml:"matrix"`
	Faults []FaultDoc `json:"faults,omitempty" yaml:"faults,omitempty"`
}

// NodeDoc describes one geobody.
type NodeDoc struct {
	Label     int64      `json:"label" yaml:"label"`
	Key       string     `json:"key" yaml:"key"`
	Lithology int64      `json:"lithology" yaml:"lithology"`
	Surface   string     `json:"surface,omitempty" yaml:"surface,omitempty"`
	Sides     []int      `json:"sides" yaml:"sides,flow"`
	Centroid  [3]float64 `json:"centroid" yaml:"centroid,flow"`
	Voxels    int        `json:"voxels" yaml:"voxels"`
	Regions   int        `json:"regions" yaml:"regions"`
}

// EdgeDoc is one contact, by node key.
type EdgeDoc struct {
	A    string   `json:"a" yaml:"a"`
	B    string   `json:"b" yaml:"b"`
	Axes []string `json:"axes" yaml:"axes,flow"`
}

// FaultDoc names the fault surface of each fault block.
type FaultDoc struct {
	Index   int    `json:"index" yaml:"index"`
	Surface string `json:"surface" yaml:"surface"`
}

func newDocument(res *topology.Result, catalog *solution.Catalog) (*Document, error) {
	layout := res.Field.Layout()
	shape := res.Field.Shape()
	doc := &Document{
		Layout: layout.Kind().String(),
		Shape:  [3]int{shape.NX, shape.NY, shape.NZ},
		Keys:   res.Matrix.Keys,
	}

	names := map[int64]string{}
	if catalog != nil {
		for _, s := range catalog.Surfaces {
			names[s.ID] = s.Name
		}
		for i, id := range catalog.FaultIDs() {
			doc.Faults = append(doc.Faults, FaultDoc{Index: i, Surface: names[id]})
		}
	}

	for _, n := range res.Graph.Nodes() {
		doc.Nodes = append(doc.Nodes, NodeDoc{
			Label:     int64(n.Label),
			Key:       n.Key,
			Lithology: n.Lithology,
			Surface:   names[n.Lithology],
			Sides:     n.Sides,
			Centroid:  [3]float64{n.Centroid.X, n.Centroid.Y, n.Centroid.Z},
			Voxels:    n.Voxels,
			Regions:   n.Regions,
		})
	}

	width := layout.Width()
	for _, e := range res.Edges {
		axes := make([]string, len(e.Axes))
		for i, a := range e.Axes {
			axes[i] = a.String()
		}
		doc.Edges = append(doc.Edges, EdgeDoc{A: e.A.Binary(width), B: e.B.Binary(width), Axes: axes})
	}

	for i := 0; i < res.Matrix.Len(); i++ {
		row, err := res.Matrix.Row(i)
		if err != nil {
			return nil, err
		}
		var sb strings.Builder
		for _, v := range row {
			if v {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		doc.Matrix = append(doc.Matrix, sb.String())
	}
	return doc, nil
}

// Encode writes the document as JSON or YAML.
func (d *Document) Encode(w io.Writer, format string) error {
	switch format {
	case "", "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("geotopo: unknown format %q", format)
	}
}
