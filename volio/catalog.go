package volio

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Panjichuan/gempy/solution"
)

// ParseCatalog decodes a YAML surface catalog:
//
//	series:
//	  - {name: Fault_Series, is_fault: true}
//	  - {name: Strat_Series}
//	surfaces:
//	  - {id: 1, name: main_fault, series: Fault_Series}
//	  - {id: 2, name: rock1, series: Strat_Series}
//
// Surfaces naming an undeclared series are rejected.
func ParseCatalog(r io.Reader) (*solution.Catalog, error) {
	var c solution.Catalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && err != io.EOF {
		return nil, fmt.Errorf("volio: catalog: %w", err)
	}
	declared := make(map[string]bool, len(c.Series))
	for _, s := range c.Series {
		declared[s.Name] = true
	}
	for _, s := range c.Surfaces {
		if !declared[s.Series] {
			return nil, fmt.Errorf("volio: catalog: surface %q names unknown series %q", s.Name, s.Series)
		}
	}
	return &c, nil
}

// LoadCatalog reads the YAML surface catalog at path.
func LoadCatalog(path string) (*solution.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseCatalog(f)
}
