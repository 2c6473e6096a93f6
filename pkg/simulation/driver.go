package simulation

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultTickInterval is the wall-clock time between live ticks.
const DefaultTickInterval = time.Second

// LiveOption configures StartLive.
type LiveOption func(*liveOptions)

type liveOptions struct {
	schedule cron.Schedule
}

// WithSchedule sets the tick source. Ticks fire at schedule.Next(now).
func WithSchedule(schedule cron.Schedule) LiveOption {
	return func(o *liveOptions) {
		o.schedule = schedule
	}
}

// WithTickInterval ticks once every d. Intervals below one second are
// rounded up to a second.
func WithTickInterval(d time.Duration) LiveOption {
	return WithSchedule(cron.Every(d))
}

// ParseTickSpec parses a cron expression or descriptor such as "@every 2s"
// into a tick source.
func ParseTickSpec(spec string) (cron.Schedule, error) {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("parse tick spec %q: %w", spec, err)
	}
	return schedule, nil
}

// LiveHandle controls a running live simulation.
type LiveHandle struct {
	stopCh chan struct{}
	doneCh chan struct{}
	once   sync.Once

	// mu is held from the stop check until the callback returns.
	mu         sync.Mutex
	stopped    atomic.Bool
	inCallback atomic.Bool
	cancelled  atomic.Bool
}

// StartLive starts a live run that advances one time unit per tick. onTick
// receives a snapshot after every tick; onFinish receives the result once,
// and only if the run completes naturally. Either callback may be nil.
//
// Input and policy errors are returned before anything starts. Cancelling
// ctx has the same effect as calling Stop.
func StartLive(
	ctx context.Context,
	processes []Process,
	algorithm string,
	params Params,
	onTick func(Snapshot),
	onFinish func(SimulationResult),
	opts ...LiveOption,
) (*LiveHandle, error) {
	live, err := NewLive(processes, algorithm, params)
	if err != nil {
		return nil, err
	}

	o := liveOptions{schedule: cron.Every(DefaultTickInterval)}
	for _, opt := range opts {
		opt(&o)
	}

	h := &LiveHandle{
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
	go h.run(ctx, live, o.schedule, onTick, onFinish)
	return h, nil
}

func (h *LiveHandle) run(
	ctx context.Context,
	live *Live,
	schedule cron.Schedule,
	onTick func(Snapshot),
	onFinish func(SimulationResult),
) {
	defer close(h.doneCh)

	for {
		now := time.Now()
		timer := time.NewTimer(schedule.Next(now).Sub(now))
		select {
		case <-ctx.Done():
			timer.Stop()
			h.cancelled.Store(true)
			return
		case <-h.stopCh:
			timer.Stop()
			h.cancelled.Store(true)
			return
		case <-timer.C:
		}

		if live.Tick() && onTick != nil {
			snap := live.Snapshot()
			if !h.invoke(ctx, func() { onTick(snap) }) {
				return
			}
		}

		if live.Done() {
			result := live.Result()
			if onFinish != nil {
				h.invoke(ctx, func() { onFinish(result) })
			}
			return
		}
	}
}

// invoke runs a callback unless the run was stopped. It returns false when
// the callback was skipped.
func (h *LiveHandle) invoke(ctx context.Context, fn func()) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.stopped.Load() || ctx.Err() != nil {
		h.cancelled.Store(true)
		return false
	}
	h.inCallback.Store(true)
	defer h.inCallback.Store(false)
	fn()
	return true
}

// Stop halts the run. It is idempotent, safe to call from inside a callback
// and after the run has finished. No callback starts after Stop returns; a
// callback that had already passed its stop check when Stop was called may
// be waited for. Stop does not wait for the driver to exit; use Wait or Done
// for that.
func (h *LiveHandle) Stop() {
	h.stopped.Store(true)
	if h.inCallback.Load() {
		h.once.Do(h.closeStop)
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.once.Do(h.closeStop)
}

func (h *LiveHandle) closeStop() {
	close(h.stopCh)
}

// Done is closed when the driver exits, whether finished or cancelled.
func (h *LiveHandle) Done() <-chan struct{} {
	return h.doneCh
}

// Wait blocks until the driver exits. It returns ErrCancelled if the run
// was stopped before completing.
func (h *LiveHandle) Wait() error {
	<-h.doneCh
	if h.cancelled.Load() {
		return ErrCancelled
	}
	return nil
}
