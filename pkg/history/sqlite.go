package history

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite"
)

// dayLayout buckets runs by their UTC finish date.
const dayLayout = "2006-01-02"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSQLiteStore opens (or creates) a SQLite database at dbPath.
// Use ":memory:" for an in-memory database.
func NewSQLiteStore(dbPath string, logger *slog.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}
	// every connection to :memory: is a separate database
	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma wal: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma busy_timeout: %w", err)
	}

	return &SQLiteStore{
		db:     db,
		logger: logger.With("component", "history"),
	}, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Migrate creates the runs table and its indexes.
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	s.logger.Debug("sql", "op", "migrate")
	return migrate(ctx, s.db)
}

func (s *SQLiteStore) RecordRun(ctx context.Context, run Run) error {
	s.logger.Debug("sql", "op", "insert", "table", "runs", "id", run.ID)

	finished := run.FinishedAt.UTC()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, algorithm, mode, processes, completion_time, avg_wt, avg_tat, avg_rt, finished_at, day)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Algorithm, string(run.Mode), run.Processes, run.CompletionTime,
		run.AvgWT, run.AvgTAT, run.AvgRT,
		finished.Format(time.RFC3339Nano), finished.Format(dayLayout),
	)
	if err != nil {
		return fmt.Errorf("insert run %s: %w", run.ID, err)
	}
	return nil
}

// CountsByAlgorithm returns run counts per algorithm, most used first.
func (s *SQLiteStore) CountsByAlgorithm(ctx context.Context) ([]Count, error) {
	s.logger.Debug("sql", "op", "select", "table", "runs", "group", "algorithm")
	return s.counts(ctx,
		`SELECT algorithm, COUNT(*) FROM runs GROUP BY algorithm ORDER BY COUNT(*) DESC, algorithm ASC`)
}

// CountsByDay returns run counts per UTC day, oldest first.
func (s *SQLiteStore) CountsByDay(ctx context.Context) ([]Count, error) {
	s.logger.Debug("sql", "op", "select", "table", "runs", "group", "day")
	return s.counts(ctx, `SELECT day, COUNT(*) FROM runs GROUP BY day ORDER BY day ASC`)
}

func (s *SQLiteStore) counts(ctx context.Context, query string) ([]Count, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := []Count{}
	for rows.Next() {
		var c Count
		if err := rows.Scan(&c.Key, &c.Runs); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}
