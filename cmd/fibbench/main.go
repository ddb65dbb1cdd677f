package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/fib-bench/internal/application"
	"github.com/eugenenazirov/fib-bench/internal/config"
	"github.com/eugenenazirov/fib-bench/internal/logging"
)

var (
	signalNotify = signal.Notify
	signalStop   = signal.Stop
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "fibbench: %v\n", err)
		os.Exit(1)
	}
}

// run executes the benchmark described by args. Result lines go to stdout;
// logs and the summary table go to stderr.
func run(args []string, stdout, stderr io.Writer) error {
	overrides, err := parseFlags(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load(overrides)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := logging.NewWriter(cfg.LogLevel, stderr)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	app, err := application.New(cfg, logger,
		application.WithOutput(stdout),
		application.WithSummaryOutput(stderr),
	)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	ctx, cancel := cancelOnSignal(context.Background(), logger)
	defer cancel()

	if err := app.Run(ctx); err != nil {
		logger.Error("benchmark failed", zap.Error(err))
		return err
	}
	return nil
}

// parseFlags maps command-line flags onto config overrides. Numeric flags
// default to -1 so that an explicit zero still overrides lower layers.
func parseFlags(args []string) (*config.CLIOverrides, error) {
	kingpinApp := kingpin.New("fibbench", "Iterative Fibonacci micro-benchmark")
	configFile := kingpinApp.Flag("config", "Path to YAML configuration file").String()
	count := kingpinApp.Flag("count", "Number of iterations to run").Default("-1").Int()
	representation := kingpinApp.Flag("representation", "Numeric representation: float64, int64, uint64 or big").String()
	algorithm := kingpinApp.Flag("algorithm", "Kernel: iterative or recursive").String()
	rounds := kingpinApp.Flag("rounds", "Number of timed rounds").Default("-1").Int()
	roundsPerSecond := kingpinApp.Flag("rounds-per-second", "Maximum rounds started per second (set 0 to disable)").Default("-1").Float64()
	summary := kingpinApp.Flag("summary", "Render a per-round timing table on stderr").Bool()
	logLevel := kingpinApp.Flag("log-level", "Log level: debug, info, warn or error").String()

	if _, err := kingpinApp.Parse(args); err != nil {
		return nil, err
	}

	overrides := &config.CLIOverrides{
		ConfigFile: *configFile,
	}

	if *count >= 0 {
		overrides.Count = count
	}

	if *representation != "" {
		overrides.Representation = representation
	}

	if *algorithm != "" {
		overrides.Algorithm = algorithm
	}

	if *rounds >= 0 {
		overrides.Rounds = rounds
	}

	if *roundsPerSecond >= 0 {
		overrides.RoundsPerSecond = roundsPerSecond
	}

	if *summary {
		overrides.Summary = summary
	}

	if *logLevel != "" {
		overrides.LogLevel = logLevel
	}

	return overrides, nil
}

// cancelOnSignal returns a context that is cancelled on SIGINT or SIGTERM.
// The handler is released after the first signal, so a second one terminates
// the process even while a round is still computing.
func cancelOnSignal(parent context.Context, logger *zap.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	quit := make(chan os.Signal, 1)
	signalNotify(quit, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signalStop(quit)
		select {
		case sig := <-quit:
			logger.Info("stopping benchmark", zap.String("signal", sig.String()))
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
