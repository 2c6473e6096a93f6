package history

import (
	"context"
	"time"
)

// Mode says how a run was executed.
type Mode string

const (
	ModeBatch Mode = "batch"
	ModeLive  Mode = "live"
)

// Run is one completed simulation.
type Run struct {
	ID             string    `json:"id"`
	Algorithm      string    `json:"algorithm"`
	Mode           Mode      `json:"mode"`
	Processes      int       `json:"processes"`
	CompletionTime int       `json:"completion_time"`
	AvgWT          float64   `json:"avg_wt"`
	AvgTAT         float64   `json:"avg_tat"`
	AvgRT          float64   `json:"avg_rt"`
	FinishedAt     time.Time `json:"finished_at"`
}

// Count is a run tally for one key: an algorithm name or a day (YYYY-MM-DD,
// UTC).
type Count struct {
	Key  string `json:"key"`
	Runs int    `json:"runs"`
}

// Store persists completed runs and reports how often each algorithm ran
// and how many runs finished per day.
type Store interface {
	RecordRun(ctx context.Context, run Run) error
	CountsByAlgorithm(ctx context.Context) ([]Count, error)
	CountsByDay(ctx context.Context) ([]Count, error)

	// Lifecycle
	Close() error
	Migrate(ctx context.Context) error
}
