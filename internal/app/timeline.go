package app

import (
	"time"

	"github.com/alexanderramin/milestones/internal/domain"
	"github.com/alexanderramin/milestones/internal/timeline"
)

// Source identifies the table a timeline is built from: either a file on disk
// (with an optional sheet) or a stored dataset.
type Source struct {
	Path      string
	Sheet     string
	DatasetID string
}

type TimelineRequest struct {
	Source Source
	// Mapping overrides the resolved column mapping field by field.
	Mapping     domain.ColumnMapping
	AnchorMode  domain.AnchorMode
	AnchorDate  *time.Time
	Granularity domain.Granularity
	LabelFormat domain.LabelFormat
	Filter      timeline.Filter
	Now         *time.Time
}

func NewTimelineRequest(src Source) TimelineRequest {
	return TimelineRequest{
		Source:      src,
		AnchorMode:  domain.AnchorNamedSentinel,
		Granularity: domain.GranularityMonthly,
		LabelFormat: domain.LabelMonthShortYear,
		Filter: timeline.Filter{
			Statuses: append([]domain.Status(nil), domain.DefaultStatusFilter...),
		},
	}
}

type TimelineResponse struct {
	Source      Source
	Today       time.Time
	Anchor      time.Time
	AnchorMode  domain.AnchorMode
	Mapping     domain.ColumnMapping
	Sheet       string
	RawRowCount int
	DroppedRows int
	// All holds every milestone of the pass; Milestones is the filtered view.
	All        []domain.Milestone
	Milestones []domain.Milestone
	Summary    timeline.Summary
	Axis       timeline.Axis
	Warnings   []string
}

type SourceInfo struct {
	Source          Source
	Sheets          []string
	Headers         []string
	RowCount        int
	Mapping         domain.ColumnMapping
	GroupCandidates []string
}

type TimelineErrorCode string

const (
	TimelineErrUnsupportedFormat TimelineErrorCode = "UNSUPPORTED_FORMAT"
	TimelineErrMissingColumn     TimelineErrorCode = "MISSING_COLUMN"
	TimelineErrEmptyDataset      TimelineErrorCode = "EMPTY_DATASET"
	TimelineErrInvalidRequest    TimelineErrorCode = "INVALID_REQUEST"
	TimelineErrDatasetNotFound   TimelineErrorCode = "DATASET_NOT_FOUND"
)

type TimelineError struct {
	Code    TimelineErrorCode
	Message string
}

func (e *TimelineError) Error() string {
	return string(e.Code) + ": " + e.Message
}
