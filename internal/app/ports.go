package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/alexanderramin/milestones/internal/domain"
)

type BuildTimelineUseCase interface {
	Build(ctx context.Context, req TimelineRequest) (*TimelineResponse, error)
}

type InspectSourceUseCase interface {
	Inspect(ctx context.Context, src Source) (*SourceInfo, error)
}

type ImportDatasetUseCase interface {
	Import(ctx context.Context, path, sheet, name string) (*domain.Dataset, error)
}

type ExportFormat string

const (
	ExportCSV  ExportFormat = "csv"
	ExportXLSX ExportFormat = "xlsx"
	ExportPDF  ExportFormat = "pdf"
)

// ParseExportFormat accepts csv, xlsx or pdf in any case.
func ParseExportFormat(s string) (ExportFormat, error) {
	switch f := ExportFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case ExportCSV, ExportXLSX, ExportPDF:
		return f, nil
	}
	return "", fmt.Errorf("unsupported export format %q (expected csv, xlsx or pdf)", s)
}

type ExportTimelineUseCase interface {
	Export(ctx context.Context, resp *TimelineResponse, format ExportFormat, w io.Writer) error
}
