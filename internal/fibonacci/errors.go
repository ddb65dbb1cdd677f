package fibonacci

import "errors"

var (
	// ErrNegativeCount is returned when the iteration count is negative.
	ErrNegativeCount = errors.New("iteration count must be a non-negative integer")
	// ErrCountTooLarge is returned when the count is beyond what the algorithm can finish in reasonable time.
	ErrCountTooLarge = errors.New("iteration count too large for algorithm")
	// ErrUnknownRepresentation is returned for a representation name that is not supported.
	ErrUnknownRepresentation = errors.New("unknown numeric representation")
	// ErrUnknownAlgorithm is returned for an algorithm name that is not supported.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
	// ErrUnsupportedAlgorithm is returned when an algorithm cannot run in the requested representation.
	ErrUnsupportedAlgorithm = errors.New("algorithm does not support representation")
)
