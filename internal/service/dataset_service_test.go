package service

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/milestones/internal/app"
	"github.com/alexanderramin/milestones/internal/domain"
	"github.com/alexanderramin/milestones/internal/export"
	"github.com/alexanderramin/milestones/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImport_StoresRowsAndHeaders(t *testing.T) {
	svcs := newTestServices(t)
	ctx := context.Background()

	ds, err := svcs.datasets.Import(ctx, writeFile(t, "unit1.csv", templateCSV), "", "Unit 1")
	require.NoError(t, err)
	assert.Equal(t, "Unit 1", ds.Name)
	assert.Equal(t, 5, ds.RowCount)
	assert.Len(t, ds.ID, 36)
	assert.True(t, filepath.IsAbs(ds.SourcePath))

	list, err := svcs.datasets.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, testutil.TemplateHeaders, list[0].Headers)
}

func TestImport_WorkbookSheetNamesDataset(t *testing.T) {
	svcs := newTestServices(t)
	ctx := context.Background()

	var buf bytes.Buffer
	require.NoError(t, export.WriteTemplate(&buf, "xlsx"))
	path := filepath.Join(t.TempDir(), "template.xlsx")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	ds, err := svcs.datasets.Import(ctx, path, "Unit#1", "")
	require.NoError(t, err)
	assert.Equal(t, "template / Unit#1", ds.Name)
	assert.Equal(t, "Unit#1", ds.Sheet)

	_, err = svcs.datasets.Import(ctx, path, "Unit#2", "")
	requireCode(t, err, app.TimelineErrInvalidRequest)
}

func TestImport_RejectsUnsupportedAndHeaderless(t *testing.T) {
	svcs := newTestServices(t)
	ctx := context.Background()

	_, err := svcs.datasets.Import(ctx, writeFile(t, "plan.json", "{}"), "", "")
	requireCode(t, err, app.TimelineErrUnsupportedFormat)

	_, err = svcs.datasets.Import(ctx, writeFile(t, "blank.csv", ""), "", "")
	requireCode(t, err, app.TimelineErrEmptyDataset)
}

func TestImport_RollbackOnRowInsertFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repositoryFor(database)
	ctx := context.Background()

	// Exec #1 stores the dataset header, #2.. the rows. Fail on the third row.
	failUoW := &testutil.FailingExecUoW{
		DB:     database,
		FailOn: 4,
		Err:    fmt.Errorf("injected row insert failure"),
	}
	svc := NewDatasetService(repo, failUoW)

	_, err := svc.Import(ctx, writeFile(t, "plan.csv", templateCSV), "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "injected row insert failure")

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list, "no dataset should exist after rollback")

	var rows int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM dataset_rows`).Scan(&rows))
	assert.Zero(t, rows)
}

func TestSaveMapping_ValidatesAgainstStoredHeaders(t *testing.T) {
	svcs := newTestServices(t)
	ctx := context.Background()

	ds, err := svcs.datasets.Import(ctx, writeFile(t, "plan.csv", templateCSV), "", "")
	require.NoError(t, err)

	_, err = svcs.datasets.SaveMapping(ctx, ds.ID, domain.ColumnMapping{NameColumn: "Task", GroupColumn: "Phase"})
	requireCode(t, err, app.TimelineErrMissingColumn)
	assert.Contains(t, err.Error(), "2 problems")

	saved, err := svcs.datasets.SaveMapping(ctx, ds.ID, domain.ColumnMapping{GroupColumn: "Category"})
	require.NoError(t, err)
	require.NotNil(t, saved.Mapping)
	assert.Equal(t, "Milestones", saved.Mapping.NameColumn)
	assert.Equal(t, "Category", saved.Mapping.GroupColumn)

	again, err := svcs.datasets.SaveMapping(ctx, ds.ID, domain.ColumnMapping{ActualColumn: "Contractual"})
	require.NoError(t, err)
	assert.Equal(t, "Category", again.Mapping.GroupColumn, "earlier choices are kept")
	assert.Equal(t, "Contractual", again.Mapping.ActualColumn)

	require.NoError(t, svcs.datasets.ResetMapping(ctx, ds.ID))
	got, err := svcs.datasets.Get(ctx, ds.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Mapping)
}

func TestDelete_ByPrefix(t *testing.T) {
	svcs := newTestServices(t)
	ctx := context.Background()

	ds, err := svcs.datasets.Import(ctx, writeFile(t, "plan.csv", templateCSV), "", "")
	require.NoError(t, err)

	require.NoError(t, svcs.datasets.Delete(ctx, ds.DisplayID()))
	_, err = svcs.datasets.Get(ctx, ds.ID)
	requireCode(t, err, app.TimelineErrDatasetNotFound)

	err = svcs.datasets.Delete(ctx, ds.ID)
	requireCode(t, err, app.TimelineErrDatasetNotFound)
}
