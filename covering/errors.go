package covering

import "errors"

// ErrInvalidInput is returned for a non-positive threshold or an item
// with a non-finite or negative value.
var ErrInvalidInput = errors.New("covering: invalid input")

// ErrUnknownAlgorithm is returned for an Algorithm value outside the
// defined set.
var ErrUnknownAlgorithm = errors.New("covering: unknown algorithm")
