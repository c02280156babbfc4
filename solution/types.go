package solution

// BlockMatrix is a [block][realization][voxel] array of block values.
// Build it with NewBlockMatrix; it is not modified afterwards.
type BlockMatrix struct {
	data [][][]float64
}

// Surface is one interface of the model.
type Surface struct {
	ID     int64  `yaml:"id" json:"id"`
	Name   string `yaml:"name" json:"name"`
	Series string `yaml:"series" json:"series"`
}

// Series groups surfaces; fault series carry fault surfaces.
type Series struct {
	Name    string `yaml:"name" json:"name"`
	IsFault bool   `yaml:"is_fault" json:"is_fault"`
}

// Catalog lists the surfaces and series of a model.
type Catalog struct {
	Surfaces []Surface `yaml:"surfaces" json:"surfaces"`
	Series   []Series  `yaml:"series" json:"series"`
}
