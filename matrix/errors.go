// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Public indexers return these sentinels, wrapped with fmt.Errorf for context,
// and never panic on user input.

package matrix

import "errors"

var (
	// ErrBadShape is returned when the key list is empty or contains duplicates.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrUnknownKey indicates that a referenced key is not in the index.
	ErrUnknownKey = errors.New("matrix: unknown key")
)
