package xyz

import "errors"

var (
	// ErrMalformed indicates input that does not follow the XYZ/TXT layout.
	ErrMalformed = errors.New("xyz: malformed input")
	// ErrInvalidElement indicates an empty element label or one containing whitespace.
	ErrInvalidElement = errors.New("xyz: invalid element label")
	// ErrInvalidComment indicates a comment spanning more than one line.
	ErrInvalidComment = errors.New("xyz: comment must be a single line")
)
