package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/milestones/internal/config"
	"github.com/alexanderramin/milestones/internal/contract"
	"github.com/alexanderramin/milestones/internal/domain"
	"github.com/alexanderramin/milestones/internal/timeline"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// sourceFlags select the table a command reads and override its column
// mapping.
type sourceFlags struct {
	sheet   string
	dataset string

	nameCol        string
	contractualCol string
	actualCol      string
	groupCol       string
}

func (f *sourceFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.sheet, "sheet", "", "Workbook sheet to read (default: first sheet)")
	fs.StringVar(&f.dataset, "dataset", "", "Stored dataset ID or unique ID prefix, instead of FILE")
	f.registerMapping(fs)
}

func (f *sourceFlags) registerMapping(fs *pflag.FlagSet) {
	fs.StringVar(&f.nameCol, "name-col", "", "Header holding the milestone name")
	fs.StringVar(&f.contractualCol, "contractual-col", "", "Header holding the contractual date")
	fs.StringVar(&f.actualCol, "actual-col", "", "Header holding the actual/anticipated date")
	fs.StringVar(&f.groupCol, "group-col", "", "Header to group by, or \"(none)\"")
}

func (f *sourceFlags) source(args []string) contract.Source {
	src := contract.Source{Sheet: f.sheet, DatasetID: f.dataset}
	if len(args) > 0 {
		src.Path = args[0]
	}
	return src
}

func (f *sourceFlags) mapping() domain.ColumnMapping {
	return domain.ColumnMapping{
		NameColumn:        f.nameCol,
		ContractualColumn: f.contractualCol,
		ActualColumn:      f.actualCol,
		GroupColumn:       f.groupCol,
	}
}

// timelineFlags are shared by view, export and browse.
type timelineFlags struct {
	sourceFlags

	anchor      string
	anchorDate  string
	granularity string
	labelFormat string
	statuses    []string
	search      string
	future      bool
	today       string
}

func addTimelineFlags(cmd *cobra.Command, f *timelineFlags, d config.Defaults) {
	fs := cmd.Flags()
	f.sourceFlags.register(fs)
	fs.StringVar(&f.anchor, "anchor", string(d.AnchorMode), "Anchor mode: notice-to-proceed, first-contractual or custom")
	fs.StringVar(&f.anchorDate, "anchor-date", "", "Anchor date (YYYY-MM-DD); implies --anchor custom")
	fs.StringVar(&f.granularity, "granularity", string(d.Granularity), "Axis ticks: monthly or quarterly")
	fs.StringVar(&f.labelFormat, "label-format", string(d.LabelFormat), "Month label format: Mmm-YY, \"Mon YYYY\" or YYYY-MM")
	fs.StringSliceVar(&f.statuses, "status", statusNames(d.Statuses), "Statuses to show (repeatable or comma-separated; \"all\" for every status)")
	fs.StringVar(&f.search, "search", "", "Case-insensitive substring of the milestone name")
	fs.BoolVar(&f.future, "future", false, "Only milestones due today or later (undated rows are kept)")
	fs.StringVar(&f.today, "today", "", "Evaluate statuses as of this date (YYYY-MM-DD)")
}

// request turns the parsed flags into a timeline request. A bare
// --anchor-date switches the anchor mode to custom.
func (f *timelineFlags) request(cmd *cobra.Command, args []string) (contract.TimelineRequest, error) {
	req := contract.NewTimelineRequest(f.source(args))
	req.Mapping = f.mapping()

	mode, err := domain.ParseAnchorMode(f.anchor)
	if err != nil {
		return req, err
	}
	if f.anchorDate != "" {
		d, err := parseDay(f.anchorDate)
		if err != nil {
			return req, fmt.Errorf("invalid --anchor-date: %w", err)
		}
		req.AnchorDate = &d
		if !cmd.Flags().Changed("anchor") {
			mode = domain.AnchorCustom
		}
	}
	req.AnchorMode = mode

	if req.Granularity, err = domain.ParseGranularity(f.granularity); err != nil {
		return req, err
	}
	if req.LabelFormat, err = domain.ParseLabelFormat(f.labelFormat); err != nil {
		return req, err
	}

	statuses, err := domain.ParseStatuses(f.statuses)
	if err != nil {
		return req, err
	}
	req.Filter = timeline.Filter{
		Search:     f.search,
		Statuses:   statuses,
		FutureOnly: f.future,
	}

	if f.today != "" {
		d, err := parseDay(f.today)
		if err != nil {
			return req, fmt.Errorf("invalid --today: %w", err)
		}
		req.Now = &d
	}
	return req, nil
}

func parseDay(s string) (time.Time, error) {
	d, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q is not a YYYY-MM-DD date", s)
	}
	return d, nil
}

func statusNames(ss []domain.Status) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = string(s)
	}
	return out
}
