package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/sherine-k/schedsim/pkg/config"
	"github.com/sherine-k/schedsim/pkg/history"
	"github.com/sherine-k/schedsim/pkg/logging"
	"github.com/sherine-k/schedsim/pkg/runner"
	"github.com/sherine-k/schedsim/pkg/simulation"
)

var settings = config.DefaultSettings()

var rootCmd = &cobra.Command{
	Use:   "schedsim",
	Short: "CPU Scheduling Simulator",
	Long: `A CLI tool that simulates CPU scheduling disciplines.

This tool reads a workload file describing processes (arrival time, burst
time, optional priority), runs them under a scheduling algorithm either
instantly or one time unit per tick, and prints a Gantt chart together with
per-process turnaround, waiting and response times.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&settings.LogLevel, "log-level", settings.LogLevel, "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&settings.LogFormat, "log-format", settings.LogFormat, "Log format (text, json)")
	rootCmd.PersistentFlags().StringVar(&settings.DBPath, "db", settings.DBPath,
		fmt.Sprintf("Run history database; empty disables history (env %s)", config.EnvDBPath))
}

func newLogger() (*slog.Logger, error) {
	return logging.New(settings.LogLevel, settings.LogFormat)
}

// openHistory opens the run history, or returns nil when it is disabled.
func openHistory(ctx context.Context, logger *slog.Logger) (*history.SQLiteStore, error) {
	if settings.DBPath == "" {
		return nil, nil
	}
	st, err := history.NewSQLiteStore(settings.DBPath, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open run history: %w", err)
	}
	if err := st.Migrate(ctx); err != nil {
		st.Close()
		return nil, fmt.Errorf("failed to migrate run history: %w", err)
	}
	return st, nil
}

// environment is what every running command needs.
type environment struct {
	logger *slog.Logger
	store  *history.SQLiteStore // nil when history is disabled
	runner *runner.Runner
}

func (e *environment) Close() {
	if e.store != nil {
		e.store.Close()
	}
}

func setup(ctx context.Context, liveOpts ...simulation.LiveOption) (*environment, error) {
	logger, err := newLogger()
	if err != nil {
		return nil, err
	}
	st, err := openHistory(ctx, logger)
	if err != nil {
		return nil, err
	}

	opts := []runner.Option{runner.WithLiveOptions(liveOpts...)}
	if st != nil {
		opts = append(opts, runner.WithHistory(st))
	}
	return &environment{
		logger: logger,
		store:  st,
		runner: runner.New(logger, opts...),
	}, nil
}
