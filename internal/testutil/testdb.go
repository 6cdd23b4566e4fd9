package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/milestones/internal/db"
	"github.com/stretchr/testify/require"
)

// NewTestDB opens a migrated in-memory dataset store that lives for the
// duration of the test.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	store, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err, "opening in-memory store")
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// NewTestUoW wraps store in the production unit of work.
func NewTestUoW(store *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(store)
}
