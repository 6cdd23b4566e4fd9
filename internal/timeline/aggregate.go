package timeline

import (
	"sort"

	"github.com/alexanderramin/milestones/internal/domain"
)

// StatusCount is one bar of the status histogram.
type StatusCount struct {
	Status domain.Status
	Count  int
}

// GroupBreakdown is a group x status contingency table. Groups are listed in
// first-seen order with the ungrouped bucket last.
type GroupBreakdown struct {
	Groups []string
	Counts map[string]map[domain.Status]int
}

// Count returns the cell for (group, status); missing combinations are 0.
func (g *GroupBreakdown) Count(group string, status domain.Status) int {
	if g == nil {
		return 0
	}
	return g.Counts[group][status]
}

// Total returns the row total for group.
func (g *GroupBreakdown) Total(group string) int {
	if g == nil {
		return 0
	}
	var n int
	for _, c := range g.Counts[group] {
		n += c
	}
	return n
}

// Summary holds the headline numbers for a view.
type Summary struct {
	Total        int
	WithActual   int
	OnTime       int
	Delayed      int
	Early        int
	OnTimePct    float64
	AvgDelayDays float64
	AvgEarlyDays float64
	Histogram    []StatusCount
	Groups       *GroupBreakdown
}

// Aggregate computes the summary of a view. Percentages and averages are 0
// when there is nothing to divide by. The group table is built only when
// withGroups is set.
func Aggregate(view []domain.Milestone, withGroups bool) Summary {
	s := Summary{Total: len(view)}

	counts := make(map[domain.Status]int, len(domain.AllStatuses))
	var delaySum, earlySum int
	for i := range view {
		m := &view[i]
		counts[m.Status]++
		if m.Actual != nil {
			s.WithActual++
		}
		if m.Status == domain.StatusOnTime {
			s.OnTime++
		}
		if d, ok := m.DeltaDays(); ok {
			switch {
			case d > 0:
				s.Delayed++
				delaySum += d
			case d < 0:
				s.Early++
				earlySum -= d
			}
		}
	}

	if s.WithActual > 0 {
		s.OnTimePct = float64(s.OnTime) / float64(s.WithActual) * 100
	}
	if s.Delayed > 0 {
		s.AvgDelayDays = float64(delaySum) / float64(s.Delayed)
	}
	if s.Early > 0 {
		s.AvgEarlyDays = float64(earlySum) / float64(s.Early)
	}

	s.Histogram = histogram(counts)
	if withGroups {
		s.Groups = breakdown(view)
	}
	return s
}

func histogram(counts map[domain.Status]int) []StatusCount {
	out := make([]StatusCount, 0, len(counts))
	for st, n := range counts {
		if n > 0 {
			out = append(out, StatusCount{Status: st, Count: n})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return domain.StatusOrder(out[i].Status) < domain.StatusOrder(out[j].Status)
	})
	return out
}

func breakdown(view []domain.Milestone) *GroupBreakdown {
	g := &GroupBreakdown{Counts: make(map[string]map[domain.Status]int)}
	hasUngrouped := false
	for i := range view {
		m := &view[i]
		if m.Group == nil {
			hasUngrouped = true
		} else if _, ok := g.Counts[*m.Group]; !ok {
			g.Groups = append(g.Groups, *m.Group)
		}
		label := m.GroupLabel()
		if g.Counts[label] == nil {
			g.Counts[label] = make(map[domain.Status]int, len(domain.AllStatuses))
		}
		g.Counts[label][m.Status]++
	}
	if hasUngrouped {
		g.Groups = append(g.Groups, domain.UngroupedLabel)
	}
	return g
}
