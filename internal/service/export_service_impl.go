package service

import (
	"context"
	"fmt"
	"io"

	"github.com/alexanderramin/milestones/internal/app"
	"github.com/alexanderramin/milestones/internal/export"
)

type exportService struct {
	observer UseCaseObserver
}

func NewExportService(observers ...UseCaseObserver) ExportService {
	return &exportService{observer: useCaseObserverOrNoop(observers)}
}

func (s *exportService) Export(ctx context.Context, resp *app.TimelineResponse, format app.ExportFormat, w io.Writer) (err error) {
	fields := map[string]any{"format": string(format)}
	done := track(ctx, s.observer, "export-timeline", fields)
	defer func() { done(err) }()

	if resp == nil {
		return timelineErr(app.TimelineErrInvalidRequest, "nothing to export")
	}
	table := export.Rows(resp.Milestones, resp.Mapping.HasGroup())
	fields["rows"] = len(table.Records)

	switch format {
	case app.ExportCSV:
		return export.WriteCSV(w, table)
	case app.ExportXLSX:
		return export.WriteXLSX(w, table)
	case app.ExportPDF:
		return export.WritePDF(w, export.Report{
			Source:     describeSource(resp.Source, resp.Sheet),
			Today:      resp.Today,
			Anchor:     resp.Anchor,
			AnchorMode: resp.AnchorMode,
			Warnings:   resp.Warnings,
			Summary:    resp.Summary,
			Table:      table,
		})
	}
	return timelineErr(app.TimelineErrInvalidRequest, "unsupported export format %q (expected csv, xlsx or pdf)", format)
}

func (s *exportService) Template(ctx context.Context, format string, w io.Writer) (err error) {
	done := track(ctx, s.observer, "write-template", map[string]any{"format": format})
	defer func() { done(err) }()

	if err := export.WriteTemplate(w, format); err != nil {
		return fmt.Errorf("writing template: %w", err)
	}
	return nil
}
