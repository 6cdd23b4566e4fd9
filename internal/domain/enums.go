package domain

import (
	"fmt"
	"strings"
)

// AnchorMode selects how Month 0 of the timeline is chosen.
type AnchorMode string

const (
	AnchorFirstContractual AnchorMode = "first-contractual"
	AnchorNamedSentinel    AnchorMode = "notice-to-proceed"
	AnchorCustom           AnchorMode = "custom"
)

// ParseAnchorMode accepts the canonical names plus the short forms
// "first", "ntp" and "sentinel".
func ParseAnchorMode(s string) (AnchorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "first-contractual", "first_contractual", "first":
		return AnchorFirstContractual, nil
	case "notice-to-proceed", "notice_to_proceed", "ntp", "sentinel":
		return AnchorNamedSentinel, nil
	case "custom":
		return AnchorCustom, nil
	}
	return "", fmt.Errorf("unknown anchor mode %q (expected first-contractual, notice-to-proceed or custom)", s)
}

// Granularity controls the spacing of timeline ticks.
type Granularity string

const (
	GranularityMonthly   Granularity = "monthly"
	GranularityQuarterly Granularity = "quarterly"
)

// Step returns the number of months between consecutive ticks.
func (g Granularity) Step() int {
	if g == GranularityQuarterly {
		return 3
	}
	return 1
}

func ParseGranularity(s string) (Granularity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "monthly", "month", "m":
		return GranularityMonthly, nil
	case "quarterly", "quarter", "q":
		return GranularityQuarterly, nil
	}
	return "", fmt.Errorf("unknown granularity %q (expected monthly or quarterly)", s)
}

// LabelFormat is the display format for month labels.
type LabelFormat string

const (
	LabelMonthShortYear LabelFormat = "Mmm-YY"
	LabelMonthFullYear  LabelFormat = "Mon YYYY"
	LabelISOMonth       LabelFormat = "YYYY-MM"
)

// Layout returns the time layout backing the label format. Unknown formats
// fall back to Mmm-YY.
func (f LabelFormat) Layout() string {
	switch f {
	case LabelMonthFullYear:
		return "Jan 2006"
	case LabelISOMonth:
		return "2006-01"
	default:
		return "Jan-06"
	}
}

func ParseLabelFormat(s string) (LabelFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mmm-yy":
		return LabelMonthShortYear, nil
	case "mon yyyy", "mon-yyyy":
		return LabelMonthFullYear, nil
	case "yyyy-mm":
		return LabelISOMonth, nil
	}
	return "", fmt.Errorf("unknown label format %q (expected Mmm-YY, \"Mon YYYY\" or YYYY-MM)", s)
}
