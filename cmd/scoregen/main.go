// Command scoregen runs the createRandomScore scenario step over many fresh
// virtual-user contexts and writes the resulting records as a JSON fixture.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/okian/scorehook/internal/config"
	"github.com/okian/scorehook/internal/domain/scoring"
	"github.com/okian/scorehook/internal/sampler"
	"github.com/okian/scorehook/internal/scenario"
	"github.com/okian/scorehook/pkg/logger"
	"github.com/okian/scorehook/pkg/metrics"
)

func main() {
	if err := logger.InitWithWriter(os.Stderr); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() {
		if err := logger.Sync(); err != nil {
			os.Stderr.WriteString("failed to sync logger: " + err.Error() + "\n")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		logger.Get().Error(ctx, "scoregen failed", logger.Error(err))
		stop()
		os.Exit(1)
	}
}

// run loads configuration, applies command-line overrides and executes one
// sampling run.
func run(ctx context.Context, args []string, usage io.Writer) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := applyFlags(cfg, args, usage); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.Get()
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	gen := scoring.NewGenerator(
		scoring.WithSeed(cfg.Seed),
		scoring.WithScoreCeiling(cfg.ScoreCeiling),
	)
	registry := scenario.Default(gen)
	registry.InstrumentAll(metrics.Default())

	log.Info(ctx, "starting scoregen",
		logger.String("function", cfg.Function),
		logger.Int("count", cfg.Count),
		logger.Int("workers", cfg.Workers),
		logger.Any("functions", registry.Names()))

	stats, runErr := sampler.Run(ctx, &sampler.Config{
		Count:    cfg.Count,
		Workers:  cfg.Workers,
		Function: cfg.Function,
		Output:   cfg.Output,
	}, registry)

	if cfg.MetricsFile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsFile, metrics.GetRegistry()); err != nil {
			log.Warn(ctx, "failed to write metrics file", logger.String("path", cfg.MetricsFile), logger.Error(err))
		}
	}

	if runErr != nil {
		return runErr
	}

	log.Info(ctx, "scoregen completed", logger.String("output", stats.Output))
	return nil
}

// applyFlags overrides cfg with the flags present in args.
func applyFlags(cfg *config.Config, args []string, usage io.Writer) error {
	fs := flag.NewFlagSet("scoregen", flag.ContinueOnError)
	fs.SetOutput(usage)

	count := fs.Int("count", cfg.Count, "Number of virtual-user contexts to run")
	workers := fs.Int("workers", cfg.Workers, "Number of concurrent workers")
	output := fs.String("output", cfg.Output, "Output file (default: generated_records_TIMESTAMP.json)")
	seed := fs.Uint64("seed", cfg.Seed, "Seed for reproducible scores (0 = random)")
	ceiling := fs.Int("ceiling", cfg.ScoreCeiling, "Exclusive upper bound for scores")
	function := fs.String("function", cfg.Function, "Registered scenario function to run")
	metricsFile := fs.String("metrics-file", cfg.MetricsFile, "Write Prometheus textfile metrics here after the run")
	logLevel := fs.String("log-level", cfg.LogLevel, "Log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg.Count = *count
	cfg.Workers = *workers
	cfg.Output = *output
	cfg.Seed = *seed
	cfg.ScoreCeiling = *ceiling
	cfg.Function = *function
	cfg.MetricsFile = *metricsFile
	cfg.LogLevel = *logLevel
	return nil
}
