package service

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/alexanderramin/milestones/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.events = append(r.events, e)
}

func TestObserver_BuildReportsCounts(t *testing.T) {
	obs := &recordingObserver{}
	svc := NewTimelineService(repositoryFor(nil), obs)

	req := fileRequest(writeFile(t, "plan.csv", templateCSV))
	req.Filter.Search = "boiler"
	_, err := svc.Build(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, obs.events, 1)
	e := obs.events[0]
	assert.Equal(t, "build-timeline", e.Name)
	assert.True(t, e.Success)
	assert.Equal(t, 5, e.Fields["raw_rows"])
	assert.Equal(t, 2, e.Fields["visible"])
}

func TestObserver_FailureCarriesError(t *testing.T) {
	obs := &recordingObserver{}
	svc := NewTimelineService(repositoryFor(nil), obs)

	_, err := svc.Build(context.Background(), fileRequest(writeFile(t, "plan.txt", "")))
	require.Error(t, err)
	require.Len(t, obs.events, 1)
	assert.False(t, obs.events[0].Success)
	assert.Equal(t, err, obs.events[0].Err)
}

func TestLogUseCaseObserver_WritesErrorCode(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)
	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name: "build-timeline",
		Err:  &app.TimelineError{Code: app.TimelineErrMissingColumn, Message: "bad"},
	})
	out := buf.String()
	assert.Contains(t, out, "msg=service_use_case")
	assert.Contains(t, out, "use_case=build-timeline")
	assert.Contains(t, out, "error_code=MISSING_COLUMN")
	assert.Contains(t, out, "level=ERROR")

	buf.Reset()
	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "export-timeline", Success: true, Fields: map[string]any{"rows": 3}})
	assert.Contains(t, buf.String(), "level=INFO")
	assert.Contains(t, buf.String(), "rows=3")
}

func TestLogUseCaseObserver_SortsFieldKeys(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)
	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:    "build-timeline",
		Success: true,
		Fields:  map[string]any{"visible": 2, "anchor_mode": "custom", "raw_rows": 5},
	})
	out := buf.String()
	a := strings.Index(out, "anchor_mode=")
	r := strings.Index(out, "raw_rows=")
	v := strings.Index(out, "visible=")
	require.True(t, a > 0 && r > 0 && v > 0, out)
	assert.True(t, a < r && r < v, out)
}

func TestNewLogUseCaseObserver_NilWriterIsNoop(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
	assert.IsType(t, NoopUseCaseObserver{}, useCaseObserverOrNoop(nil))
}
