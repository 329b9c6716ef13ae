package model

import "github.com/pkg/errors"

var (
	// ErrInvalidDimension signals a zero or negative width or height at
	// construction. Zero-sized grids are disallowed.
	ErrInvalidDimension = errors.New("invalid grid dimension")

	// ErrOutOfBounds signals a coordinate query outside the grid extent.
	ErrOutOfBounds = errors.New("coordinates out of bounds")
)
