package packing

import "errors"

var (
	// ErrInvalidInput is returned for a non-positive bin capacity or an
	// item whose value exceeds it (no bin could ever hold it).
	ErrInvalidInput = errors.New("packing: invalid input")
	// ErrUnknownAlgorithm is returned for an Algorithm value outside the
	// defined set.
	ErrUnknownAlgorithm = errors.New("packing: unknown algorithm")
)
