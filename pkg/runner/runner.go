// Package runner executes workloads and reports completed runs to the run
// history.
package runner

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sherine-k/schedsim/pkg/config"
	"github.com/sherine-k/schedsim/pkg/history"
	"github.com/sherine-k/schedsim/pkg/simulation"
)

// History receives a record of every run that completed.
type History interface {
	RecordRun(ctx context.Context, run history.Run) error
}

// Runner runs workloads through the engines. The engines know nothing about
// persistence; Runner is where completions are reported.
type Runner struct {
	history  History
	logger   *slog.Logger
	now      func() time.Time
	liveOpts []simulation.LiveOption
}

// Option configures a Runner.
type Option func(*Runner)

// WithHistory records completed runs to h.
func WithHistory(h History) Option {
	return func(r *Runner) {
		r.history = h
	}
}

// WithClock replaces time.Now for run timestamps.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) {
		r.now = now
	}
}

// WithLiveOptions applies opts to every live run.
func WithLiveOptions(opts ...simulation.LiveOption) Option {
	return func(r *Runner) {
		r.liveOpts = append(r.liveOpts, opts...)
	}
}

// New creates a Runner.
func New(logger *slog.Logger, opts ...Option) *Runner {
	r := &Runner{
		logger: logger.With("component", "runner"),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Simulate runs w to completion and records it.
func (r *Runner) Simulate(ctx context.Context, w *config.Workload) (simulation.SimulationResult, error) {
	result, err := simulation.Simulate(w.Processes, w.Algorithm, w.Params())
	if err != nil {
		r.logger.Debug("rejected workload", "algorithm", w.Algorithm, "error", err)
		return simulation.SimulationResult{}, err
	}
	r.record(ctx, history.ModeBatch, len(w.Processes), result)
	return result, nil
}

// StartLive starts a live run of w. The run is recorded only if it
// completes; onFinish is called after recording.
func (r *Runner) StartLive(
	ctx context.Context,
	w *config.Workload,
	onTick func(simulation.Snapshot),
	onFinish func(simulation.SimulationResult),
	opts ...simulation.LiveOption,
) (*simulation.LiveHandle, error) {
	all := append(append([]simulation.LiveOption{}, r.liveOpts...), opts...)
	n := len(w.Processes)

	h, err := simulation.StartLive(ctx, w.Processes, w.Algorithm, w.Params(), onTick,
		func(result simulation.SimulationResult) {
			r.record(context.WithoutCancel(ctx), history.ModeLive, n, result)
			if onFinish != nil {
				onFinish(result)
			}
		},
		all...,
	)
	if err != nil {
		r.logger.Debug("rejected workload", "algorithm", w.Algorithm, "error", err)
		return nil, err
	}

	r.logger.Info("live run started", "algorithm", w.Algorithm, "processes", n)
	go func() {
		if err := h.Wait(); errors.Is(err, simulation.ErrCancelled) {
			r.logger.Info("live run cancelled", "algorithm", w.Algorithm)
		}
	}()
	return h, nil
}

// record reports a completed run. History failures are logged: the result
// is valid either way.
func (r *Runner) record(ctx context.Context, mode history.Mode, processes int, result simulation.SimulationResult) {
	run := history.Run{
		ID:             uuid.NewString(),
		Algorithm:      string(result.Algorithm),
		Mode:           mode,
		Processes:      processes,
		CompletionTime: result.CompletionTime,
		AvgWT:          result.AvgWT,
		AvgTAT:         result.AvgTAT,
		AvgRT:          result.AvgRT,
		FinishedAt:     r.now(),
	}
	r.logger.Info("run finished",
		"run_id", run.ID,
		"algorithm", run.Algorithm,
		"mode", run.Mode,
		"completion_time", run.CompletionTime,
	)

	if r.history == nil {
		return
	}
	if err := r.history.RecordRun(ctx, run); err != nil {
		r.logger.Warn("record run failed", "run_id", run.ID, "error", err)
	}
}
