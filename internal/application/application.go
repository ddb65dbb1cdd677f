package application

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/eugenenazirov/fib-bench/internal/config"
	"github.com/eugenenazirov/fib-bench/internal/fibonacci"
	"github.com/eugenenazirov/fib-bench/internal/report"
	"github.com/eugenenazirov/fib-bench/internal/storage"
)

// App encapsulates the benchmark dependencies.
type App struct {
	cfg        config.Config
	calculator fibonacci.Calculator
	storage    storage.Storage
	pacer      pacer
	logger     *zap.Logger

	out        io.Writer
	summaryOut io.Writer
	clock      func() time.Time
}

// Option configures App behaviour.
type Option func(*App)

// WithOutput sets where the result lines are written.
func WithOutput(w io.Writer) Option {
	return func(a *App) {
		a.out = w
	}
}

// WithSummaryOutput sets where the summary table is rendered.
func WithSummaryOutput(w io.Writer) Option {
	return func(a *App) {
		a.summaryOut = w
	}
}

// WithClock overrides the time source, primarily for tests.
func WithClock(clock func() time.Time) Option {
	return func(a *App) {
		a.clock = clock
	}
}

// WithPacer overrides the round pacer (primarily for tests).
func WithPacer(p pacer) Option {
	return func(a *App) {
		a.pacer = p
	}
}

// New initializes the application with all dependencies from the provided configuration.
func New(cfg config.Config, logger *zap.Logger, opts ...Option) (*App, error) {
	calc, err := fibonacci.NewCalculatorWithAlgorithm(cfg.Algorithm, cfg.Representation)
	if err != nil {
		return nil, fmt.Errorf("failed to build calculator: %w", err)
	}
	if cfg.Rounds < 1 {
		return nil, fmt.Errorf("rounds must be >= 1, got %d", cfg.Rounds)
	}

	app := &App{
		cfg:        cfg,
		calculator: calc,
		storage:    storage.NewMemoryStorage(),
		pacer:      newTokenBucketPacer(cfg.RoundsPerSecond),
		logger:     logger,
		out:        os.Stdout,
		summaryOut: os.Stderr,
		clock:      time.Now,
	}
	for _, opt := range opts {
		opt(app)
	}

	return app, nil
}

// Run executes the configured rounds and writes the result of the last one.
// Cancellation is observed between rounds; nothing is written in that case.
func (a *App) Run(ctx context.Context) error {
	count := a.cfg.Count
	if limit := fibonacci.MaxExact(a.cfg.Representation); limit >= 0 && count > limit {
		a.logger.Warn("result exceeds exact range of representation",
			zap.Int("count", count),
			zap.String("representation", string(a.cfg.Representation)),
			zap.Int("max_exact", limit),
		)
	}

	a.logger.Info("benchmark started",
		zap.String("kernel", a.calculator.Name()),
		zap.Int("count", count),
		zap.Int("rounds", a.cfg.Rounds),
		zap.Float64("rounds_per_second", a.cfg.RoundsPerSecond),
	)

	var value string
	for round := 1; round <= a.cfg.Rounds; round++ {
		if err := a.wait(ctx); err != nil {
			return fmt.Errorf("round %d: %w", round, err)
		}

		start := a.clock()
		result, err := a.calculator.Calculate(count)
		elapsed := a.clock().Sub(start)
		if err != nil {
			return fmt.Errorf("round %d: %w", round, err)
		}

		if err := a.storage.AddSample(storage.Sample{
			Round:    round,
			Count:    count,
			Duration: elapsed,
			Value:    result,
		}); err != nil {
			return fmt.Errorf("record round %d: %w", round, err)
		}

		a.logger.Debug("round completed",
			zap.Int("round", round),
			zap.Duration("duration", elapsed),
		)
		value = result
	}

	if err := report.WriteResult(a.out, count, value); err != nil {
		return err
	}

	stats := a.storage.Stats()
	a.logger.Info("benchmark completed",
		zap.String("kernel", a.calculator.Name()),
		zap.Int("rounds", stats.Rounds),
		zap.Duration("mean", stats.Mean),
		zap.Duration("total", stats.Total),
	)

	if a.cfg.Summary {
		report.WriteSummary(a.summaryOut, a.calculator.Name(), stats, a.storage.Samples())
	}

	return nil
}

// Stats returns the aggregated timings recorded so far.
func (a *App) Stats() storage.Stats {
	return a.storage.Stats()
}

func (a *App) wait(ctx context.Context) error {
	if a.pacer == nil {
		return ctx.Err()
	}
	return a.pacer.Wait(ctx)
}
