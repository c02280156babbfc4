// Package volio reads and writes model volume files: the block matrix of
// one solved geomodel and its grid shape.
//
// File layout:
//
//	"GTV1" | format byte | [CRC32 of payload, LE] | payload
//
// The format byte packs compression (bits 5-7) and checksum (bits 3-4). The
// payload, after decompression, is six little-endian uint32 (blocks,
// realizations, voxels, nx, ny, nz) followed by blocks·realizations·voxels
// little-endian float64 in [block][realization][voxel] order.
package volio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
	"math"
	"os"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/exp/mmap"

	"github.com/Panjichuan/gempy/solution"
	"github.com/Panjichuan/gempy/voxel"
)

// Magic starts every model volume file.
const Magic = "GTV1"

const headerFields = 6

// Model is the content of one file.
type Model struct {
	Shape  voxel.Shape
	Blocks *solution.BlockMatrix
}

// Encode serializes m with the requested compression and checksum.
func Encode(m *Model, compress Compression, checksum Checksum) ([]byte, error) {
	if m.Blocks.Voxels() != m.Shape.Len() {
		return nil, fmt.Errorf("%w: %d voxels for grid %s", ErrHeader, m.Blocks.Voxels(), m.Shape)
	}
	raw := payload(m)

	var data []byte
	switch compress {
	case Uncompressed:
		data = raw
	case Snappy:
		data = snappy.Encode(nil, raw)
	case Zstd:
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, err
		}
		data = enc.EncodeAll(raw, nil)
		if err := enc.Close(); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCompression, uint8(compress))
	}

	var buf bytes.Buffer
	buf.WriteString(Magic)
	buf.WriteByte(byte(EncodeSerializationFormat(compress, checksum)))
	switch checksum {
	case NoChecksum:
	case CRC32:
		var crc [4]byte
		binary.LittleEndian.PutUint32(crc[:], crc32.ChecksumIEEE(data))
		buf.Write(crc[:])
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownChecksum, uint8(checksum))
	}
	buf.Write(data)

	return buf.Bytes(), nil
}

func payload(m *Model) []byte {
	b := m.Blocks
	n := b.Blocks() * b.Realizations() * b.Voxels()
	out := make([]byte, 4*headerFields+8*n)
	for i, v := range []int{b.Blocks(), b.Realizations(), b.Voxels(), m.Shape.NX, m.Shape.NY, m.Shape.NZ} {
		binary.LittleEndian.PutUint32(out[4*i:], uint32(v))
	}
	off := 4 * headerFields
	for bi := 0; bi < b.Blocks(); bi++ {
		for r := 0; r < b.Realizations(); r++ {
			for _, v := range b.Row(bi, r) {
				binary.LittleEndian.PutUint64(out[off:], math.Float64bits(v))
				off += 8
			}
		}
	}
	return out
}

// Decode parses a serialized model.
// Returns ErrBadMagic, ErrUnknownCompression, ErrUnknownChecksum,
// ErrBadChecksum, ErrTruncated or ErrHeader for malformed data.
func Decode(s []byte) (*Model, error) {
	return decodeAt(bytes.NewReader(s), int64(len(s)))
}

// decodeAt parses the size bytes held by ra. The frame is read in pieces:
// the checksum streams over the payload and the values are read row by row.
// Only the snappy block format needs its compressed payload in memory.
func decodeAt(ra io.ReaderAt, size int64) (*Model, error) {
	var head [len(Magic) + 1]byte
	if size < int64(len(head)) {
		return nil, ErrBadMagic
	}
	if _, err := ra.ReadAt(head[:], 0); err != nil {
		return nil, fmt.Errorf("volio: read header: %w", err)
	}
	if string(head[:len(Magic)]) != Magic {
		return nil, ErrBadMagic
	}
	compress, checksum := DecodeSerializationFormat(SerializationFormat(head[len(Magic)]))
	off := int64(len(head))

	switch checksum {
	case NoChecksum:
	case CRC32:
		var crc [4]byte
		if size-off < int64(len(crc)) {
			return nil, fmt.Errorf("%w: missing checksum", ErrTruncated)
		}
		if _, err := ra.ReadAt(crc[:], off); err != nil {
			return nil, fmt.Errorf("volio: read checksum: %w", err)
		}
		off += int64(len(crc))
		h := crc32.NewIEEE()
		if _, err := io.Copy(h, io.NewSectionReader(ra, off, size-off)); err != nil {
			return nil, fmt.Errorf("volio: checksum: %w", err)
		}
		if stored, got := binary.LittleEndian.Uint32(crc[:]), h.Sum32(); got != stored {
			return nil, fmt.Errorf("%w: stored %x got %x", ErrBadChecksum, stored, got)
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownChecksum, uint8(checksum))
	}

	body := io.NewSectionReader(ra, off, size-off)
	switch compress {
	case Uncompressed:
		return readPayload(body, body.Size())
	case Snappy:
		src := make([]byte, body.Size())
		if _, err := body.ReadAt(src, 0); err != nil && err != io.EOF {
			return nil, fmt.Errorf("volio: read payload: %w", err)
		}
		raw, err := snappy.Decode(nil, src)
		if err != nil {
			return nil, fmt.Errorf("volio: snappy: %w", err)
		}
		return readPayload(bytes.NewReader(raw), int64(len(raw)))
	case Zstd:
		dec, err := zstd.NewReader(body)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		m, err := readPayload(dec, -1)
		if err != nil {
			return nil, fmt.Errorf("volio: zstd: %w", err)
		}
		return m, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCompression, uint8(compress))
	}
}

// readPayload parses the decompressed payload from r. size is its length in
// bytes, or -1 when unknown.
func readPayload(r io.Reader, size int64) (*Model, error) {
	var h [headerFields]uint32
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("%w: header: %w", ErrTruncated, err)
	}
	nb, nr, nv := int(h[0]), int(h[1]), int(h[2])
	shape := voxel.Shape{NX: int(h[3]), NY: int(h[4]), NZ: int(h[5])}
	if !shape.Valid() || nv != shape.Len() || nb == 0 || nr == 0 {
		return nil, fmt.Errorf("%w: blocks=%d realizations=%d voxels=%d grid %s", ErrHeader, nb, nr, nv, shape)
	}
	if want := int64(4*headerFields) + 8*int64(nb)*int64(nr)*int64(nv); size >= 0 && size != want {
		return nil, fmt.Errorf("%w: %d payload bytes, want %d", ErrTruncated, size, want)
	}

	data := make([][][]float64, nb)
	for b := range data {
		data[b] = make([][]float64, nr)
		for ri := range data[b] {
			row := make([]float64, nv)
			if err := binary.Read(r, binary.LittleEndian, row); err != nil {
				return nil, fmt.Errorf("%w: block %d realization %d: %w", ErrTruncated, b, ri, err)
			}
			data[b][ri] = row
		}
	}
	var extra [1]byte
	if n, _ := io.ReadFull(r, extra[:]); n > 0 {
		return nil, fmt.Errorf("%w: trailing bytes after values", ErrTruncated)
	}
	bm, err := solution.NewBlockMatrix(data)
	if err != nil {
		return nil, err
	}

	return &Model{Shape: shape, Blocks: bm}, nil
}

// Write serializes m to w.
func Write(w io.Writer, m *Model, compress Compression, checksum Checksum) error {
	data, err := Encode(m, compress, checksum)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Read parses a model from r.
func Read(r io.Reader) (*Model, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// Save writes m to path, replacing any existing file.
func Save(path string, m *Model, compress Compression, checksum Checksum) error {
	data, err := Encode(m, compress, checksum)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Open reads the model file at path through a read-only memory map. The
// frame is decoded straight from the mapping, so the file is never copied
// to the heap as a whole.
func Open(path string) (*Model, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	m, err := decodeAt(r, int64(r.Len()))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}
