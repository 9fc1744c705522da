package lattice

import "errors"

var (
	// ErrInvalidExtent indicates a mesh half-extent below 1.
	ErrInvalidExtent = errors.New("lattice: extent must be >= 1")
	// ErrInvalidSpacing indicates a non-positive or non-finite lattice spacing.
	ErrInvalidSpacing = errors.New("lattice: spacing must be finite and > 0")
)
