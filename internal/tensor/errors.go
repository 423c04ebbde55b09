package tensor

import "errors"

// Sentinel errors returned by fallible tensor construction.
var (
	// ErrInvalidShape is returned when a shape has a non-positive dimension.
	ErrInvalidShape = errors.New("tensor: invalid shape")

	// ErrSizeMismatch is returned when data does not fill a shape exactly.
	ErrSizeMismatch = errors.New("tensor: data size does not match shape")

	// ErrUnsupportedType is returned when an operation does not accept a dtype.
	ErrUnsupportedType = errors.New("tensor: unsupported data type")
)
