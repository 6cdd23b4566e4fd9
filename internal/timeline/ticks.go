package timeline

import (
	"time"

	"github.com/alexanderramin/milestones/internal/domain"
)

// Tick is one labelled position on the month axis.
type Tick struct {
	Index int
	Date  time.Time
	Label string
}

// Axis describes the month axis of a view.
type Axis struct {
	Start      int
	End        int
	TodayIndex int
	Ticks      []Tick
}

// BuildAxis spans the projected indices of the view, always covering 0 and
// reaching at least two months past today. Ticks step by the granularity.
func BuildAxis(view []domain.Milestone, anchor, today time.Time, g domain.Granularity, f domain.LabelFormat) Axis {
	todayIdx := monthsBetween(anchor, today)

	lo, hi := 0, 0
	for i := range view {
		for _, idx := range []*int{view[i].ContractualMonthIndex, view[i].ActualMonthIndex} {
			if idx == nil {
				continue
			}
			if *idx < lo {
				lo = *idx
			}
			if *idx > hi {
				hi = *idx
			}
		}
	}
	if todayIdx+2 > hi {
		hi = todayIdx + 2
	}

	axis := Axis{Start: lo, End: hi, TodayIndex: todayIdx}
	step := g.Step()
	for i := lo; i <= hi; i += step {
		d := domain.AddMonths(anchor, i)
		axis.Ticks = append(axis.Ticks, Tick{
			Index: i,
			Date:  d,
			Label: d.Format(f.Layout()),
		})
	}
	return axis
}
