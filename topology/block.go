// SPDX-License-Identifier: MIT

package topology

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Panjichuan/gempy/label"
	"github.com/Panjichuan/gempy/voxel"
)

// BuildBlock computes the contact signatures of field along every axis:
//
//	sig[c] = |L[o+c] + L[o+c+shift·axis]|
//
// where o is the origin of the axis block. With cropping (the default) the
// non-shifted axes are trimmed to [shift/2, N-ceil(shift/2)), so every axis
// block has shape (NX-shift, NY-shift, NZ-shift). WithoutCrop keeps the full
// extent of the non-shifted axes.
//
// An axis whose extent is not larger than shift, or whose window is cropped
// to nothing, gets an empty AxisBlock and contributes no edges. A section
// model (NY = 1) therefore keeps its X and Z contacts under WithoutCrop.
// Returns ErrOptionViolation for bad options and ErrShiftTooLarge when shift
// is not smaller than any grid dimension.
// Complexity: O(V) time and memory per axis.
func BuildBlock(field *label.Field, opts ...Option) (*Block, error) {
	o, err := gather(opts)
	if err != nil {
		return nil, err
	}
	return buildBlock(field, o)
}

func buildBlock(field *label.Field, o Options) (*Block, error) {
	shape := field.Shape()
	s := o.Shift
	if s >= shape.NX && s >= shape.NY && s >= shape.NZ {
		return nil, fmt.Errorf("%w: shift %d on every axis of %s", ErrShiftTooLarge, s, shape)
	}

	b := &Block{field: shape, shift: s, crop: o.Crop}
	vol := field.Volume()
	for _, a := range voxel.Axes {
		origin, ext := axisWindow(shape, a, s, o.Crop)
		if !ext.Valid() {
			b.axes[a] = AxisBlock{Axis: a, Origin: origin}
			o.Logger.Debug("signature block",
				slog.String("axis", a.String()),
				slog.String("origin", origin.String()),
				slog.Bool("empty", true))
			continue
		}
		lo, err := vol.Window(origin, ext)
		if err != nil {
			return nil, err
		}
		hi, err := vol.Window(origin.Step(a, s), ext)
		if err != nil {
			return nil, err
		}
		sig, err := voxel.FromFunc(ext, func(c voxel.Coord) int64 {
			v := lo.At(c) + hi.At(c)
			if v < 0 {
				return -v
			}
			return v
		})
		if err != nil {
			return nil, err
		}
		b.axes[a] = AxisBlock{Axis: a, Origin: origin, Signatures: sig}
		if o.Logger.Enabled(context.Background(), slog.LevelDebug) {
			o.Logger.Debug("signature block",
				slog.String("axis", a.String()),
				slog.String("origin", origin.String()),
				slog.String("shape", ext.String()),
				slog.Int("distinct", len(sig.Unique())))
		}
	}

	return b, nil
}

// axisWindow returns the origin and extent of the low half of axis a.
func axisWindow(shape voxel.Shape, a voxel.Axis, s int, crop bool) (voxel.Coord, voxel.Shape) {
	var origin voxel.Coord
	ext := shape.With(a, shape.Dim(a)-s)
	if !crop {
		return origin, ext
	}
	for _, other := range voxel.Axes {
		if other == a {
			continue
		}
		origin = origin.Step(other, s/2)
		ext = ext.With(other, shape.Dim(other)-s)
	}
	return origin, ext
}

// FieldShape returns the shape of the label field the block was built from.
func (b *Block) FieldShape() voxel.Shape { return b.field }

// Shift returns the shift distance.
func (b *Block) Shift() int { return b.shift }

// Cropped reports whether the non-shifted axes were trimmed.
func (b *Block) Cropped() bool { return b.crop }

// Axis returns the signature block of axis a.
func (b *Block) Axis(a voxel.Axis) AxisBlock { return b.axes[a] }

// Axes returns the X, Y and Z signature blocks.
func (b *Block) Axes() [3]AxisBlock { return b.axes }

// Stack returns the three signature volumes stacked along a leading axis,
// shape (3, NX-shift, NY-shift, NZ-shift).
// Returns voxel.ErrShapeMismatch for an uncropped block and
// voxel.ErrEmptyShape when an axis holds no signatures.
func (b *Block) Stack() (*voxel.Stack, error) {
	for _, ab := range b.axes {
		if ab.Empty() {
			return nil, fmt.Errorf("%w: axis %s has no signatures", voxel.ErrEmptyShape, ab.Axis)
		}
	}
	return voxel.NewStack(b.axes[voxel.X].Shape(),
		b.axes[voxel.X].Signatures, b.axes[voxel.Y].Signatures, b.axes[voxel.Z].Signatures)
}
