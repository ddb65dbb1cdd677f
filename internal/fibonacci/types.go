package fibonacci

import (
	"fmt"
	"strings"
)

// Representation names the numeric type the loop accumulates in.
type Representation string

const (
	Float64 Representation = "float64"
	Int64   Representation = "int64"
	Uint64  Representation = "uint64"
	Big     Representation = "big"
)

// Algorithm names the kernel used to compute the value.
type Algorithm string

const (
	AlgorithmIterative Algorithm = "iterative"
	AlgorithmRecursive Algorithm = "recursive"
)

// DefaultRepresentation matches the double-precision numbers the benchmark was
// first written against.
const DefaultRepresentation = Float64

// DefaultCount is the iteration count used when none is configured.
const DefaultCount = 99999

// MaxRecursiveCount bounds the recursive kernel; F(45) already takes seconds.
const MaxRecursiveCount = 45

// Calculator describes the behaviour required from a benchmark kernel.
type Calculator interface {
	Name() string
	Calculate(n int) (string, error)
}

// ParseRepresentation maps a case-insensitive name onto a Representation.
func ParseRepresentation(raw string) (Representation, error) {
	switch rep := Representation(strings.ToLower(strings.TrimSpace(raw))); rep {
	case Float64, Int64, Uint64, Big:
		return rep, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRepresentation, raw)
	}
}

// ParseAlgorithm maps a case-insensitive name onto an Algorithm.
func ParseAlgorithm(raw string) (Algorithm, error) {
	switch alg := Algorithm(strings.ToLower(strings.TrimSpace(raw))); alg {
	case AlgorithmIterative, AlgorithmRecursive:
		return alg, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, raw)
	}
}

// MaxExact reports the largest n for which the representation yields the exact
// Fibonacci value, or -1 when it is unbounded.
func MaxExact(rep Representation) int {
	switch rep {
	case Float64:
		return 78
	case Int64:
		return 92
	case Uint64:
		return 93
	default:
		return -1
	}
}
