package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/milestones/internal/app"
	"github.com/alexanderramin/milestones/internal/importer"
	"github.com/alexanderramin/milestones/internal/repository"
)

func timelineErr(code app.TimelineErrorCode, format string, args ...any) *app.TimelineError {
	return &app.TimelineError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// classifySourceError turns reader and store failures into coded errors.
// Anything unrecognised is returned unchanged.
func classifySourceError(err error) error {
	switch {
	case errors.Is(err, importer.ErrUnsupportedFormat):
		return timelineErr(app.TimelineErrUnsupportedFormat, "%s", err)
	case errors.Is(err, importer.ErrSheetNotFound):
		return timelineErr(app.TimelineErrInvalidRequest, "%s", err)
	case errors.Is(err, repository.ErrDatasetNotFound):
		return timelineErr(app.TimelineErrDatasetNotFound, "%s", err)
	}
	return err
}

func mappingError(errs []error) *app.TimelineError {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return timelineErr(app.TimelineErrMissingColumn, "column mapping is invalid (%d problems): %s",
		len(errs), strings.Join(msgs, "; "))
}
