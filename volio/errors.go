package volio

import "errors"

var (
	// ErrBadMagic indicates data that does not start with the file magic.
	ErrBadMagic = errors.New("volio: not a model volume file")

	// ErrUnknownCompression indicates an unsupported compression code.
	ErrUnknownCompression = errors.New("volio: unknown compression")

	// ErrUnknownChecksum indicates an unsupported checksum code.
	ErrUnknownChecksum = errors.New("volio: unknown checksum")

	// ErrBadChecksum indicates a payload whose CRC32 does not match.
	ErrBadChecksum = errors.New("volio: bad checksum")

	// ErrTruncated indicates data shorter than its header announces.
	ErrTruncated = errors.New("volio: truncated data")

	// ErrHeader indicates header fields that contradict each other.
	ErrHeader = errors.New("volio: inconsistent header")
)
