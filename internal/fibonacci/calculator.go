package fibonacci

import (
	"fmt"
	"strconv"
)

type kernel func(n int) string

type calculator struct {
	name     string
	compute  kernel
	maxCount int
}

// NewCalculator returns the iterative Calculator for rep.
func NewCalculator(rep Representation) (Calculator, error) {
	return NewCalculatorWithAlgorithm(AlgorithmIterative, rep)
}

// NewCalculatorWithAlgorithm returns a Calculator running alg in rep.
func NewCalculatorWithAlgorithm(alg Algorithm, rep Representation) (Calculator, error) {
	var compute kernel
	maxCount := -1

	switch alg {
	case AlgorithmIterative:
		switch rep {
		case Float64:
			compute = func(n int) string { return formatFloat(Iterative[float64](n)) }
		case Int64:
			compute = func(n int) string { return strconv.FormatInt(Iterative[int64](n), 10) }
		case Uint64:
			compute = func(n int) string { return strconv.FormatUint(Iterative[uint64](n), 10) }
		case Big:
			compute = func(n int) string { return IterativeBig(n).String() }
		}
	case AlgorithmRecursive:
		maxCount = MaxRecursiveCount
		switch rep {
		case Float64:
			compute = func(n int) string { return formatFloat(Recursive[float64](n)) }
		case Int64:
			compute = func(n int) string { return strconv.FormatInt(Recursive[int64](n), 10) }
		case Uint64:
			compute = func(n int) string { return strconv.FormatUint(Recursive[uint64](n), 10) }
		case Big:
			return nil, fmt.Errorf("%w: %s/%s", ErrUnsupportedAlgorithm, alg, rep)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, alg)
	}

	if compute == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRepresentation, rep)
	}

	return &calculator{
		name:     string(alg) + "/" + string(rep),
		compute:  compute,
		maxCount: maxCount,
	}, nil
}

func (c *calculator) Name() string {
	return c.name
}

func (c *calculator) Calculate(n int) (string, error) {
	if n < 0 {
		return "", ErrNegativeCount
	}
	if c.maxCount >= 0 && n > c.maxCount {
		return "", fmt.Errorf("%w: %s limited to %d", ErrCountTooLarge, c.name, c.maxCount)
	}
	return c.compute(n), nil
}

// formatFloat prints integral values without an exponent so that results line
// up digit for digit with the exact representation.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
