package runner

//go:generate mockgen -destination mock_history_test.go -package runner -write_package_comment=false github.com/sherine-k/schedsim/pkg/runner History

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sherine-k/schedsim/pkg/config"
	"github.com/sherine-k/schedsim/pkg/history"
	"github.com/sherine-k/schedsim/pkg/logging"
	"github.com/sherine-k/schedsim/pkg/simulation"
)

type fastSchedule struct{}

func (fastSchedule) Next(t time.Time) time.Time { return t.Add(time.Millisecond) }

var fixedNow = time.Date(2024, 5, 4, 12, 30, 0, 0, time.UTC)

func workload() *config.Workload {
	return &config.Workload{
		Algorithm:   "Round Robin",
		TimeQuantum: 2,
		Processes: []simulation.Process{
			{ID: 0, ArrivalTime: 0, BurstTime: 5},
			{ID: 1, ArrivalTime: 1, BurstTime: 3},
		},
	}
}

func newRunner(t *testing.T, h History, buf *bytes.Buffer) *Runner {
	t.Helper()
	logger, err := logging.NewWithWriter("debug", "text", buf)
	require.NoError(t, err)
	opts := []Option{
		WithClock(func() time.Time { return fixedNow }),
		WithLiveOptions(simulation.WithSchedule(fastSchedule{})),
	}
	if h != nil {
		opts = append(opts, WithHistory(h))
	}
	return New(logger, opts...)
}

func TestRunner_SimulateRecordsRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewMockHistory(ctrl)

	var got history.Run
	h.EXPECT().RecordRun(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, run history.Run) error {
			got = run
			return nil
		})

	r := newRunner(t, h, &bytes.Buffer{})
	result, err := r.Simulate(context.Background(), workload())
	require.NoError(t, err)

	assert.Equal(t, 8, result.CompletionTime)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, history.Run{
		ID:             got.ID,
		Algorithm:      "rr",
		Mode:           history.ModeBatch,
		Processes:      2,
		CompletionTime: 8,
		AvgWT:          3,
		AvgTAT:         7,
		AvgRT:          0.5,
		FinishedAt:     fixedNow,
	}, got)
}

func TestRunner_SimulateRejectedIsNotRecorded(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewMockHistory(ctrl)

	r := newRunner(t, h, &bytes.Buffer{})
	w := workload()
	w.TimeQuantum = 0

	_, err := r.Simulate(context.Background(), w)
	var verr *simulation.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestRunner_HistoryFailureIsLogged(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewMockHistory(ctrl)
	h.EXPECT().RecordRun(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	var buf bytes.Buffer
	r := newRunner(t, h, &buf)
	result, err := r.Simulate(context.Background(), workload())

	require.NoError(t, err)
	assert.Equal(t, simulation.AlgorithmRoundRobin, result.Algorithm)
	assert.Contains(t, buf.String(), "record run failed")
	assert.Contains(t, buf.String(), "disk full")
}

func TestRunner_WithoutHistory(t *testing.T) {
	r := newRunner(t, nil, &bytes.Buffer{})
	_, err := r.Simulate(context.Background(), workload())
	assert.NoError(t, err)
}

func TestRunner_LiveRecordsBeforeFinish(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewMockHistory(ctrl)

	var (
		mu    sync.Mutex
		order []string
	)
	h.EXPECT().RecordRun(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, run history.Run) error {
			mu.Lock()
			defer mu.Unlock()
			assert.Equal(t, history.ModeLive, run.Mode)
			assert.Equal(t, "rr", run.Algorithm)
			order = append(order, "record")
			return nil
		})

	r := newRunner(t, h, &bytes.Buffer{})
	handle, err := r.StartLive(context.Background(), workload(), nil,
		func(result simulation.SimulationResult) {
			mu.Lock()
			defer mu.Unlock()
			assert.Equal(t, 8, result.CompletionTime)
			order = append(order, "finish")
		})
	require.NoError(t, err)
	require.NoError(t, handle.Wait())

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"record", "finish"}, order)
}

func TestRunner_CancelledLiveIsNotRecorded(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewMockHistory(ctrl)

	w := workload()
	w.Processes = []simulation.Process{{ID: 0, ArrivalTime: 0, BurstTime: 10000}}

	var buf bytes.Buffer
	r := newRunner(t, h, &buf)
	ctx, cancel := context.WithCancel(context.Background())
	ticked := make(chan struct{}, 1)

	handle, err := r.StartLive(ctx, w,
		func(simulation.Snapshot) {
			select {
			case ticked <- struct{}{}:
			default:
			}
		},
		func(simulation.SimulationResult) { t.Error("finish after cancel") })
	require.NoError(t, err)

	<-ticked
	cancel()
	assert.ErrorIs(t, handle.Wait(), simulation.ErrCancelled)
}

func TestRunner_LiveRejected(t *testing.T) {
	r := newRunner(t, nil, &bytes.Buffer{})
	w := workload()
	w.Algorithm = "lottery"

	handle, err := r.StartLive(context.Background(), w, nil, nil)
	assert.Nil(t, handle)
	var unsupported *simulation.UnsupportedAlgorithmError
	assert.ErrorAs(t, err, &unsupported)
}
