package topology

import (
	"fmt"
	"log/slog"

	"github.com/Panjichuan/gempy/label"
	"github.com/Panjichuan/gempy/voxel"
)

// Option configures the topology pipeline via functional arguments.
// If an Option is invalid (e.g. a zero shift), it is recorded internally and
// surfaced as ErrOptionViolation by the function it was passed to.
type Option func(*Options)

// Options holds the parameters of one analysis.
type Options struct {
	// Shift is the distance in voxels between the two halves of a contact
	// signature.
	Shift int

	// Crop trims the non-shifted axes so all three signature blocks share one
	// shape and can be stacked.
	Crop bool

	// Layout selects the label bit assignment used by Analyze.
	Layout label.LayoutKind

	// LithologyBase, if HasBase, maps lithology id LithologyBase to index 0.
	LithologyBase int64
	HasBase       bool

	// SignatureCheck rejects fields whose present labels are not
	// signature-unique before edges are extracted.
	SignatureCheck bool

	// Connectivity is used to count the disjoint regions of every node.
	Connectivity voxel.Connectivity

	// Logger receives debug records; never nil.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns Options with:
//   - Shift 1 and Crop enabled
//   - the Disjoint layout and min(lb) as lithology base
//   - no signature pre-check
//   - 6-connectivity for region counts
//   - a logger that discards everything.
func DefaultOptions() Options {
	return Options{
		Shift:        1,
		Crop:         true,
		Layout:       label.Disjoint,
		Connectivity: voxel.Conn6,
		Logger:       slog.New(slog.DiscardHandler),
	}
}

func gather(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

// WithShift sets the shift distance.
//
//	n >= 1: compare voxels n apart
//	n < 1: invalid option → ErrOptionViolation (and ErrBadShift)
func WithShift(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: %w (%d)", ErrOptionViolation, ErrBadShift, n)
			return
		}
		o.Shift = n
	}
}

// WithoutCrop keeps every face of every axis. Signature blocks then differ in
// shape and Block.Stack is unavailable.
func WithoutCrop() Option {
	return func(o *Options) { o.Crop = false }
}

// WithLayout selects the label bit assignment.
func WithLayout(kind label.LayoutKind) Option {
	return func(o *Options) {
		if kind != label.Disjoint && kind != label.Overlapping {
			o.err = fmt.Errorf("%w: layout %s", ErrOptionViolation, kind)
			return
		}
		o.Layout = kind
	}
}

// WithLithologyBase fixes the lithology id of index 0.
func WithLithologyBase(base int64) Option {
	return func(o *Options) {
		o.LithologyBase = base
		o.HasBase = true
	}
}

// WithSignatureCheck verifies with label.PairSums that no two pairs of
// present labels share a signature.
func WithSignatureCheck() Option {
	return func(o *Options) { o.SignatureCheck = true }
}

// WithConnectivity sets the neighbourhood used for region counts.
func WithConnectivity(conn voxel.Connectivity) Option {
	return func(o *Options) {
		if conn != voxel.Conn6 && conn != voxel.Conn26 {
			o.err = fmt.Errorf("%w: connectivity %d", ErrOptionViolation, int(conn))
			return
		}
		o.Connectivity = conn
	}
}

// WithLogger sets the debug logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
