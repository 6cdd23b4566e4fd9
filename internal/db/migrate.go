package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS datasets (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		source_path TEXT NOT NULL,
		sheet       TEXT NOT NULL DEFAULT '',
		headers     TEXT NOT NULL,
		row_count   INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS dataset_rows (
		dataset_id TEXT NOT NULL REFERENCES datasets(id) ON DELETE CASCADE,
		row_index  INTEGER NOT NULL,
		cells      TEXT NOT NULL,
		PRIMARY KEY (dataset_id, row_index)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_datasets_created ON datasets(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_dataset_rows_dataset ON dataset_rows(dataset_id)`,

	// Saved column mapping. All NULL until the user saves one.
	`ALTER TABLE datasets ADD COLUMN name_col TEXT`,
	`ALTER TABLE datasets ADD COLUMN contractual_col TEXT`,
	`ALTER TABLE datasets ADD COLUMN actual_col TEXT`,
	`ALTER TABLE datasets ADD COLUMN group_col TEXT`,
}
