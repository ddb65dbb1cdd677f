package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/fib-bench/internal/fibonacci"
)

const (
	defaultRounds   = 1
	defaultLogLevel = "warn"
)

// Config aggregates runtime configuration resolved from multiple sources.
// Precedence: CLI flags > YAML config > Environment variables > Defaults
type Config struct {
	Count           int
	Representation  fibonacci.Representation
	Algorithm       fibonacci.Algorithm
	Rounds          int
	RoundsPerSecond float64
	Summary         bool
	LogLevel        string
}

// yamlConfig represents the YAML configuration file structure. Pointers mark
// settings whose zero value is meaningful.
type yamlConfig struct {
	Count          *int       `yaml:"count"`
	Representation string     `yaml:"representation"`
	Algorithm      string     `yaml:"algorithm"`
	Rounds         *int       `yaml:"rounds"`
	Pacing         yamlPacing `yaml:"pacing"`
	Summary        *bool      `yaml:"summary"`
	LogLevel       string     `yaml:"log_level"`
}

// yamlPacing represents the pacing section in YAML.
type yamlPacing struct {
	RoundsPerSecond *float64 `yaml:"rounds_per_second"`
}

// CLIOverrides holds command-line flag overrides.
type CLIOverrides struct {
	ConfigFile      string
	Count           *int
	Representation  *string
	Algorithm       *string
	Rounds          *int
	RoundsPerSecond *float64
	Summary         *bool
	LogLevel        *string
}

// Load extracts configuration from multiple sources with precedence:
// CLI flags > YAML config > Environment variables > Defaults
func Load(overrides *CLIOverrides) (Config, error) {
	cfg := defaultConfig()

	// Apply environment variables
	applyEnvConfig(&cfg)

	// Load from YAML file if specified (overrides env)
	if overrides != nil && overrides.ConfigFile != "" {
		yamlCfg, err := loadFromFile(overrides.ConfigFile)
		if err != nil {
			return Config{}, fmt.Errorf("load YAML config: %w", err)
		}
		if err := applyYAMLConfig(&cfg, yamlCfg); err != nil {
			return Config{}, fmt.Errorf("apply YAML config: %w", err)
		}
	}

	// Apply CLI overrides (highest precedence)
	if overrides != nil {
		if err := applyCLIOverrides(&cfg, overrides); err != nil {
			return Config{}, err
		}
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// defaultConfig returns a Config with default values.
func defaultConfig() Config {
	return Config{
		Count:          fibonacci.DefaultCount,
		Representation: fibonacci.DefaultRepresentation,
		Algorithm:      fibonacci.AlgorithmIterative,
		Rounds:         defaultRounds,
		LogLevel:       defaultLogLevel,
	}
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &yamlCfg, nil
}

// applyYAMLConfig applies YAML configuration to the Config struct.
func applyYAMLConfig(cfg *Config, yamlCfg *yamlConfig) error {
	if yamlCfg.Count != nil {
		cfg.Count = *yamlCfg.Count
	}

	if yamlCfg.Representation != "" {
		rep, err := fibonacci.ParseRepresentation(yamlCfg.Representation)
		if err != nil {
			return err
		}
		cfg.Representation = rep
	}

	if yamlCfg.Algorithm != "" {
		alg, err := fibonacci.ParseAlgorithm(yamlCfg.Algorithm)
		if err != nil {
			return err
		}
		cfg.Algorithm = alg
	}

	if yamlCfg.Rounds != nil {
		cfg.Rounds = *yamlCfg.Rounds
	}

	if yamlCfg.Pacing.RoundsPerSecond != nil {
		cfg.RoundsPerSecond = *yamlCfg.Pacing.RoundsPerSecond
	}

	if yamlCfg.Summary != nil {
		cfg.Summary = *yamlCfg.Summary
	}

	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = yamlCfg.LogLevel
	}

	return nil
}

// applyEnvConfig applies environment variable configuration. Malformed values
// are ignored.
func applyEnvConfig(cfg *Config) {
	if raw := strings.TrimSpace(os.Getenv("FIB_COUNT")); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value >= 0 {
			cfg.Count = value
		}
	}

	if raw := strings.TrimSpace(os.Getenv("FIB_REPRESENTATION")); raw != "" {
		if rep, err := fibonacci.ParseRepresentation(raw); err == nil {
			cfg.Representation = rep
		}
	}

	if raw := strings.TrimSpace(os.Getenv("FIB_ALGORITHM")); raw != "" {
		if alg, err := fibonacci.ParseAlgorithm(raw); err == nil {
			cfg.Algorithm = alg
		}
	}

	if raw := strings.TrimSpace(os.Getenv("FIB_ROUNDS")); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.Rounds = value
		}
	}

	if raw := strings.TrimSpace(os.Getenv("FIB_ROUNDS_PER_SECOND")); raw != "" {
		if value, err := strconv.ParseFloat(raw, 64); err == nil && value >= 0 {
			cfg.RoundsPerSecond = value
		}
	}

	if raw := strings.TrimSpace(os.Getenv("FIB_SUMMARY")); raw != "" {
		if value, err := strconv.ParseBool(raw); err == nil {
			cfg.Summary = value
		}
	}

	if raw := strings.TrimSpace(os.Getenv("FIB_LOG_LEVEL")); raw != "" {
		if _, err := zapcore.ParseLevel(raw); err == nil {
			cfg.LogLevel = raw
		}
	}
}

// applyCLIOverrides applies command-line flag overrides.
func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) error {
	if overrides.Count != nil {
		cfg.Count = *overrides.Count
	}

	if overrides.Representation != nil && *overrides.Representation != "" {
		rep, err := fibonacci.ParseRepresentation(*overrides.Representation)
		if err != nil {
			return fmt.Errorf("parse representation: %w", err)
		}
		cfg.Representation = rep
	}

	if overrides.Algorithm != nil && *overrides.Algorithm != "" {
		alg, err := fibonacci.ParseAlgorithm(*overrides.Algorithm)
		if err != nil {
			return fmt.Errorf("parse algorithm: %w", err)
		}
		cfg.Algorithm = alg
	}

	if overrides.Rounds != nil {
		cfg.Rounds = *overrides.Rounds
	}

	if overrides.RoundsPerSecond != nil {
		cfg.RoundsPerSecond = *overrides.RoundsPerSecond
	}

	if overrides.Summary != nil {
		cfg.Summary = *overrides.Summary
	}

	if overrides.LogLevel != nil && *overrides.LogLevel != "" {
		cfg.LogLevel = *overrides.LogLevel
	}

	return nil
}

// validateConfig validates the final configuration.
func validateConfig(cfg Config) error {
	if cfg.Count < 0 {
		return fmt.Errorf("count must be >= 0, got %d", cfg.Count)
	}
	if cfg.Rounds < 1 {
		return fmt.Errorf("rounds must be >= 1, got %d", cfg.Rounds)
	}
	if cfg.RoundsPerSecond < 0 {
		return fmt.Errorf("rounds per second must be >= 0")
	}
	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	if _, err := fibonacci.NewCalculatorWithAlgorithm(cfg.Algorithm, cfg.Representation); err != nil {
		return err
	}
	if cfg.Algorithm == fibonacci.AlgorithmRecursive && cfg.Count > fibonacci.MaxRecursiveCount {
		return fmt.Errorf("%w: count %d exceeds %d", fibonacci.ErrCountTooLarge, cfg.Count, fibonacci.MaxRecursiveCount)
	}
	return nil
}
