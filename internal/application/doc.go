// Package application provides application initialization and dependency wiring.
// It builds the benchmark kernel, sample storage and round pacer from the
// configuration and runs the benchmark, keeping the main package focused on
// CLI parsing and orchestration.
package application
