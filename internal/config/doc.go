// Package config loads benchmark settings from multiple sources (YAML files,
// environment variables, CLI flags) with precedence: CLI flags > YAML config >
// Environment variables > Defaults. With no sources present the defaults
// reproduce the plain single-run benchmark.
package config
