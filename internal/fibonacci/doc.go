// Package fibonacci holds the benchmark kernels: the iterative Fibonacci loop
// in fixed-width, floating-point and arbitrary-precision flavours, and the
// naive recursive definition used as a second kernel.
package fibonacci
