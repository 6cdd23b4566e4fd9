package contract

import "github.com/alexanderramin/milestones/internal/app"

type Source = app.Source

type TimelineRequest = app.TimelineRequest

func NewTimelineRequest(src Source) TimelineRequest {
	return app.NewTimelineRequest(src)
}

type TimelineResponse = app.TimelineResponse

type SourceInfo = app.SourceInfo

type TimelineErrorCode = app.TimelineErrorCode

const (
	TimelineErrUnsupportedFormat TimelineErrorCode = app.TimelineErrUnsupportedFormat
	TimelineErrMissingColumn     TimelineErrorCode = app.TimelineErrMissingColumn
	TimelineErrEmptyDataset      TimelineErrorCode = app.TimelineErrEmptyDataset
	TimelineErrInvalidRequest    TimelineErrorCode = app.TimelineErrInvalidRequest
	TimelineErrDatasetNotFound   TimelineErrorCode = app.TimelineErrDatasetNotFound
)

type TimelineError = app.TimelineError

type ExportFormat = app.ExportFormat

const (
	ExportCSV  ExportFormat = app.ExportCSV
	ExportXLSX ExportFormat = app.ExportXLSX
	ExportPDF  ExportFormat = app.ExportPDF
)

func ParseExportFormat(s string) (ExportFormat, error) {
	return app.ParseExportFormat(s)
}
