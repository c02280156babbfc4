package volio

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Panjichuan/gempy/solution"
	"github.com/Panjichuan/gempy/voxel"
)

// pieceReader records the largest single read.
type pieceReader struct {
	r       *bytes.Reader
	largest int
}

func (p *pieceReader) ReadAt(b []byte, off int64) (int, error) {
	if len(b) > p.largest {
		p.largest = len(b)
	}
	return p.r.ReadAt(b, off)
}

func largeModel(t *testing.T) *Model {
	t.Helper()
	shape := voxel.Shape{NX: 20, NY: 20, NZ: 20}
	rows := make([][][]float64, 2)
	for b := range rows {
		row := make([]float64, shape.Len())
		for i := range row {
			row[i] = float64((i + b) % 3)
		}
		rows[b] = [][]float64{row}
	}
	bm, err := solution.NewBlockMatrix(rows)
	require.NoError(t, err)
	return &Model{Shape: shape, Blocks: bm}
}

// TestDecodeAt_ReadsInPieces decodes an uncompressed file without reading it
// in one call.
func TestDecodeAt_ReadsInPieces(t *testing.T) {
	m := largeModel(t)
	data, err := Encode(m, Uncompressed, CRC32)
	require.NoError(t, err)

	pr := &pieceReader{r: bytes.NewReader(data)}
	got, err := decodeAt(pr, int64(len(data)))
	require.NoError(t, err)
	assert.Equal(t, m.Blocks, got.Blocks)
	assert.LessOrEqual(t, pr.largest, 8*m.Shape.Len(), "at most one row per read")
	assert.Less(t, pr.largest, len(data))
}

func TestOpen_AllCompressions(t *testing.T) {
	m := largeModel(t)
	dir := t.TempDir()
	for _, c := range []Compression{Uncompressed, Snappy, Zstd} {
		path := filepath.Join(dir, c.String()+".gtv")
		require.NoError(t, Save(path, m, c, CRC32))
		got, err := Open(path)
		require.NoError(t, err, c.String())
		assert.Equal(t, m.Blocks, got.Blocks, c.String())
	}

	data, err := Encode(m, Zstd, NoChecksum)
	require.NoError(t, err)
	path := filepath.Join(dir, "short.gtv")
	require.NoError(t, os.WriteFile(path, data[:len(data)/2], 0o644))
	_, err = Open(path)
	assert.Error(t, err)
}
