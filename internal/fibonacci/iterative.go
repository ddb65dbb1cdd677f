package fibonacci

import "math/big"

// Number is the set of scalar kinds the loop can accumulate in.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// FibonacciIterative returns F(n) computed in float64. Past n = 78 the result
// drifts from the exact value and eventually becomes +Inf.
func FibonacciIterative(n int) float64 {
	return Iterative[float64](n)
}

// Iterative runs n update steps of the recurrence starting from (0, 1) and
// returns the current value. Overflow wraps or rounds per T; a negative n
// returns 0.
func Iterative[T Number](n int) T {
	var current, next T = 0, 1

	for i := 0; i < n; i++ {
		sum := next + current
		current = next
		next = sum
	}

	return current
}

// IterativeBig is Iterative on arbitrary-precision integers.
func IterativeBig(n int) *big.Int {
	current := big.NewInt(0)
	next := big.NewInt(1)

	for i := 0; i < n; i++ {
		// current becomes next+current and the pair is swapped, so no
		// allocation happens inside the loop.
		current.Add(current, next)
		current, next = next, current
	}

	return current
}
