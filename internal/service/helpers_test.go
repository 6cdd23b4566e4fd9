package service

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/milestones/internal/app"
	"github.com/alexanderramin/milestones/internal/testutil"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

const templateCSV = "Milestones,Contractual,Actual/ Anticipated,Category\n" +
	"Notice to Proceed,2025-01-15,2025-01-15,Project\n" +
	"Boiler Hydrostatic Test,2026-03-30,,Boiler\n" +
	"Boiler Light-Up,2026-07-15,2026-07-20,Boiler\n" +
	"Synchronization,2026-09-30,,Electrical\n" +
	"COD,2026-12-15,,Commercial\n"

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func fileRequest(path string) app.TimelineRequest {
	req := app.NewTimelineRequest(app.Source{Path: path})
	req.Now = &testNow
	return req
}

func requireCode(t *testing.T, err error, code app.TimelineErrorCode) {
	t.Helper()
	require.Error(t, err)
	var te *app.TimelineError
	require.True(t, errors.As(err, &te), "expected TimelineError, got %T: %v", err, err)
	require.Equal(t, code, te.Code, te.Message)
}

type testServices struct {
	timeline TimelineService
	datasets DatasetService
	exports  ExportService
}

func newTestServices(t *testing.T) testServices {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repositoryFor(database)
	return testServices{
		timeline: NewTimelineService(repo),
		datasets: NewDatasetService(repo, testutil.NewTestUoW(database)),
		exports:  NewExportService(),
	}
}
