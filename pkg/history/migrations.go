package history

import (
	"context"
	"database/sql"
	"fmt"
)

// schema is applied in order on every Migrate. Each statement is idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS runs (
		id              TEXT PRIMARY KEY,
		algorithm       TEXT NOT NULL,
		mode            TEXT NOT NULL,
		processes       INTEGER NOT NULL,
		completion_time INTEGER NOT NULL,
		avg_wt          REAL NOT NULL,
		avg_tat         REAL NOT NULL,
		avg_rt          REAL NOT NULL,
		finished_at     TEXT NOT NULL,
		day             TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_runs_algorithm ON runs(algorithm)`,
	`CREATE INDEX IF NOT EXISTS idx_runs_day ON runs(day)`,
}

func migrate(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
