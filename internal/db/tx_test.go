package db_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/alexanderramin/milestones/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUoW(t *testing.T) (*sql.DB, *db.SQLiteUnitOfWork) {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database, db.NewSQLiteUnitOfWork(database)
}

// insertDataset writes a dataset header plus n rows through tx.
func insertDataset(ctx context.Context, tx db.DBTX, id string, n int) error {
	if _, err := tx.ExecContext(ctx, `INSERT INTO datasets (id, name, source_path, headers, row_count, created_at)
		VALUES (?, 'Unit 1', 'plan.csv', '["Milestones"]', ?, '2025-01-01T00:00:00Z')`, id, n); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if _, err := tx.ExecContext(ctx, `INSERT INTO dataset_rows (dataset_id, row_index, cells) VALUES (?, ?, '{}')`, id, i); err != nil {
			return err
		}
	}
	return nil
}

func countRows(t *testing.T, database *sql.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM `+table).Scan(&n))
	return n
}

func TestWithinTx_CommitsDatasetAndRows(t *testing.T) {
	database, uow := newUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertDataset(ctx, tx, "d1", 3)
	})
	require.NoError(t, err)

	assert.Equal(t, 1, countRows(t, database, "datasets"))
	assert.Equal(t, 3, countRows(t, database, "dataset_rows"))
}

func TestWithinTx_RollsBackOnError(t *testing.T) {
	database, uow := newUoW(t)
	boom := errors.New("disk full")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertDataset(ctx, tx, "d1", 3); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	assert.Zero(t, countRows(t, database, "datasets"))
	assert.Zero(t, countRows(t, database, "dataset_rows"))
}

func TestWithinTx_RollsBackOnConstraintViolation(t *testing.T) {
	database, uow := newUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertDataset(ctx, tx, "d1", 2); err != nil {
			return err
		}
		// Same row index twice violates the primary key.
		_, err := tx.ExecContext(ctx, `INSERT INTO dataset_rows (dataset_id, row_index, cells) VALUES ('d1', 0, '{}')`)
		return err
	})
	require.Error(t, err)
	assert.Zero(t, countRows(t, database, "datasets"))
}

func TestWithinTx_RollsBackOnPanic(t *testing.T) {
	database, uow := newUoW(t)

	assert.PanicsWithValue(t, "boom", func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertDataset(ctx, tx, "d1", 1)
			panic("boom")
		})
	})

	assert.Zero(t, countRows(t, database, "datasets"))

	// The connection is usable again after the panic.
	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertDataset(ctx, tx, "d2", 1)
	})
	require.NoError(t, err)
	assert.Equal(t, 1, countRows(t, database, "datasets"))
}
