package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/milestones/internal/app"
	"github.com/alexanderramin/milestones/internal/domain"
	"github.com/alexanderramin/milestones/internal/importer"
	"github.com/alexanderramin/milestones/internal/repository"
	"github.com/alexanderramin/milestones/internal/timeline"
)

type timelineService struct {
	datasets repository.DatasetRepo
	observer UseCaseObserver
}

func NewTimelineService(datasets repository.DatasetRepo, observers ...UseCaseObserver) TimelineService {
	return &timelineService{
		datasets: datasets,
		observer: useCaseObserverOrNoop(observers),
	}
}

// loadedSource is a table plus the mapping saved with it, if any.
type loadedSource struct {
	table  *domain.Table
	sheets []string
	saved  *domain.ColumnMapping
}

func (s *timelineService) Build(ctx context.Context, req app.TimelineRequest) (resp *app.TimelineResponse, err error) {
	fields := map[string]any{
		"anchor_mode": string(req.AnchorMode),
		"dataset":     req.Source.DatasetID,
		"path":        req.Source.Path,
	}
	done := track(ctx, s.observer, "build-timeline", fields)
	defer func() { done(err) }()

	if err := normalizeRequest(&req); err != nil {
		return nil, err
	}

	today := domain.DayOf(time.Now())
	if req.Now != nil {
		today = domain.DayOf(*req.Now)
	}

	src, err := s.load(ctx, req.Source, false)
	if err != nil {
		return nil, err
	}
	table := src.table
	if len(table.Headers) == 0 || len(table.Rows) == 0 {
		return nil, timelineErr(app.TimelineErrEmptyDataset, "no rows found in %s", describeSource(req.Source, table.Sheet))
	}

	mapping := resolveMapping(table.Headers, src.saved, req.Mapping)
	if errs := importer.ValidateMapping(table.Headers, mapping); len(errs) > 0 {
		return nil, mappingError(errs)
	}

	converted := importer.Convert(table, mapping)
	anchor := timeline.ResolveAnchor(converted.Entries, req.AnchorMode, req.AnchorDate, today)
	all := timeline.Derive(converted.Entries, anchor.Date, today, req.LabelFormat)
	view := timeline.Apply(all, req.Filter, today)

	resp = &app.TimelineResponse{
		Source:      req.Source,
		Today:       today,
		Anchor:      anchor.Date,
		AnchorMode:  anchor.Mode,
		Mapping:     mapping,
		Sheet:       table.Sheet,
		RawRowCount: len(table.Rows),
		DroppedRows: converted.Dropped,
		All:         all,
		Milestones:  view,
		Summary:     timeline.Aggregate(view, mapping.HasGroup()),
		Axis:        timeline.BuildAxis(view, anchor.Date, today, req.Granularity, req.LabelFormat),
	}
	if anchor.Warning != "" {
		resp.Warnings = append(resp.Warnings, anchor.Warning)
	}
	if converted.Dropped > 0 {
		resp.Warnings = append(resp.Warnings, fmt.Sprintf("%d rows without a milestone name were skipped.", converted.Dropped))
	}

	fields["raw_rows"] = resp.RawRowCount
	fields["milestones"] = len(all)
	fields["visible"] = len(view)
	fields["effective_anchor_mode"] = string(anchor.Mode)
	return resp, nil
}

func (s *timelineService) Inspect(ctx context.Context, source app.Source) (info *app.SourceInfo, err error) {
	fields := map[string]any{
		"dataset": source.DatasetID,
		"path":    source.Path,
	}
	done := track(ctx, s.observer, "inspect-source", fields)
	defer func() { done(err) }()

	src, err := s.load(ctx, source, true)
	if err != nil {
		return nil, err
	}
	t := src.table
	info = &app.SourceInfo{
		Source:          source,
		Sheets:          src.sheets,
		Headers:         t.Headers,
		RowCount:        len(t.Rows),
		Mapping:         resolveMapping(t.Headers, src.saved, domain.ColumnMapping{}),
		GroupCandidates: importer.GroupCandidates(t.Headers),
	}
	info.Source.Sheet = t.Sheet
	fields["headers"] = len(t.Headers)
	fields["rows"] = info.RowCount
	return info, nil
}

func (s *timelineService) load(ctx context.Context, source app.Source, withSheets bool) (*loadedSource, error) {
	switch {
	case source.DatasetID != "" && source.Path != "":
		return nil, timelineErr(app.TimelineErrInvalidRequest, "choose either a file or a dataset, not both")
	case source.DatasetID != "":
		ds, err := s.datasets.Resolve(ctx, source.DatasetID)
		if err != nil {
			return nil, classifySourceError(err)
		}
		table, err := s.datasets.LoadTable(ctx, ds.ID)
		if err != nil {
			return nil, fmt.Errorf("loading dataset %s: %w", ds.DisplayID(), err)
		}
		out := &loadedSource{table: table, saved: ds.Mapping}
		if ds.Sheet != "" {
			out.sheets = []string{ds.Sheet}
		}
		return out, nil
	case source.Path != "":
		table, err := importer.ReadFile(source.Path, source.Sheet)
		if err != nil {
			return nil, classifySourceError(err)
		}
		out := &loadedSource{table: table}
		if withSheets {
			if out.sheets, err = importer.ListSheets(source.Path); err != nil {
				return nil, classifySourceError(err)
			}
		}
		return out, nil
	}
	return nil, timelineErr(app.TimelineErrInvalidRequest, "no source given: pass a file or --dataset")
}

// resolveMapping applies, in increasing precedence, the resolver defaults,
// the dataset's saved mapping and the explicit overrides.
func resolveMapping(headers []string, saved *domain.ColumnMapping, override domain.ColumnMapping) domain.ColumnMapping {
	m := importer.DefaultMapping(headers)
	if saved != nil {
		m = importer.MergeMapping(m, *saved)
	}
	return importer.MergeMapping(m, override)
}

func normalizeRequest(req *app.TimelineRequest) error {
	if req.AnchorMode == "" {
		req.AnchorMode = domain.AnchorNamedSentinel
	}
	if req.Granularity == "" {
		req.Granularity = domain.GranularityMonthly
	}
	if req.LabelFormat == "" {
		req.LabelFormat = domain.LabelMonthShortYear
	}
	var err error
	if req.AnchorMode, err = domain.ParseAnchorMode(string(req.AnchorMode)); err != nil {
		return timelineErr(app.TimelineErrInvalidRequest, "%s", err)
	}
	if req.Granularity, err = domain.ParseGranularity(string(req.Granularity)); err != nil {
		return timelineErr(app.TimelineErrInvalidRequest, "%s", err)
	}
	if req.LabelFormat, err = domain.ParseLabelFormat(string(req.LabelFormat)); err != nil {
		return timelineErr(app.TimelineErrInvalidRequest, "%s", err)
	}
	if req.AnchorDate != nil && req.AnchorMode != domain.AnchorCustom {
		return timelineErr(app.TimelineErrInvalidRequest, "an anchor date needs the custom anchor mode")
	}
	if req.AnchorDate != nil {
		d := domain.DayOf(*req.AnchorDate)
		req.AnchorDate = &d
	}
	return nil
}

func describeSource(src app.Source, sheet string) string {
	if src.DatasetID != "" {
		return "dataset " + src.DatasetID
	}
	if sheet != "" {
		return fmt.Sprintf("%s (sheet %q)", src.Path, sheet)
	}
	return src.Path
}
