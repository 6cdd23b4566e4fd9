package timeline

import (
	"time"

	"github.com/alexanderramin/milestones/internal/domain"
)

// MonthIndex counts calendar months from anchor to d. The day of month plays
// no part: every date in the anchor's month is index 0. A nil date has no
// index.
func MonthIndex(anchor time.Time, d *time.Time) *int {
	if d == nil {
		return nil
	}
	idx := monthsBetween(anchor, *d)
	return &idx
}

func monthsBetween(anchor, d time.Time) int {
	return (d.Year()-anchor.Year())*12 + int(d.Month()) - int(anchor.Month())
}

// Derive builds the milestones for one pass. Every derived field is computed
// from the same anchor and today; entries are not modified.
func Derive(entries []domain.Entry, anchor, today time.Time, format domain.LabelFormat) []domain.Milestone {
	out := make([]domain.Milestone, len(entries))
	for i, e := range entries {
		out[i] = domain.Milestone{
			Entry:                 e,
			Status:                Classify(e.Contractual, e.Actual, today),
			ContractualMonthIndex: MonthIndex(anchor, e.Contractual),
			ActualMonthIndex:      MonthIndex(anchor, e.Actual),
			ContractualLabel:      domain.FormatMonth(e.Contractual, format),
			ActualLabel:           domain.FormatMonth(e.Actual, format),
		}
	}
	return out
}
