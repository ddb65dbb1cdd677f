package fibonacci

// Recursive computes F(n) from the definition F(n) = F(n-1) + F(n-2).
// It runs in exponential time and is only meant as a benchmark kernel.
func Recursive[T Number](n int) T {
	if n <= 0 {
		return 0
	}
	if n == 1 {
		return 1
	}
	return Recursive[T](n-1) + Recursive[T](n-2)
}
