// Command geotopo computes the contact topology of a voxel geomodel.
//
// Usage:
//
//	geotopo -model model.gtv -layers 3 [-faults 1] [-out result.json] [-format json|yaml]
//	geotopo -config run.yaml
//
// Flags given on the command line override the values of the config file.
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
