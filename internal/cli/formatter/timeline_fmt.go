package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/milestones/internal/contract"
	"github.com/alexanderramin/milestones/internal/domain"
	"github.com/alexanderramin/milestones/internal/timeline"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	// laneWidth is the character width of the per-milestone position lane.
	laneWidth = 36
	// nameWidth caps the milestone name column.
	nameWidth = 40
)

// FormatTimeline renders a full timeline view: source line, warnings, KPI box,
// month axis, milestone table, status distribution and group breakdown.
func FormatTimeline(resp *contract.TimelineResponse) string {
	var b strings.Builder

	b.WriteString(Header("Timeline"))
	b.WriteString("\n")
	b.WriteString(formatSourceLine(resp))
	b.WriteString("\n\n")

	for _, w := range resp.Warnings {
		b.WriteString(Warning(w))
		b.WriteString("\n")
	}
	if len(resp.Warnings) > 0 {
		b.WriteString("\n")
	}

	b.WriteString(FormatSummary(resp.Summary))
	b.WriteString("\n\n")

	if len(resp.Milestones) == 0 {
		b.WriteString(Dim("No milestones match the current filters."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(FormatAxis(resp.Axis))
	b.WriteString("\n\n")
	b.WriteString(FormatMilestoneTable(resp.Milestones, resp.Axis, resp.Mapping.HasGroup()))
	b.WriteString("\n")
	b.WriteString(FormatDistribution(resp.Summary))

	if g := resp.Summary.Groups; g != nil && len(g.Groups) > 0 {
		b.WriteString("\n")
		b.WriteString(FormatGroupBreakdown(g))
	}
	return b.String()
}

func formatSourceLine(resp *contract.TimelineResponse) string {
	src := resp.Source.Path
	if resp.Source.DatasetID != "" {
		src = "dataset " + resp.Source.DatasetID
	}
	if resp.Sheet != "" {
		src += " [" + resp.Sheet + "]"
	}
	parts := []string{
		Bold(src),
		Dim(fmt.Sprintf("%d of %d milestones", len(resp.Milestones), len(resp.All))),
		Dim("anchor ") + resp.Anchor.Format(domain.DateLayout) + Dim(" ("+string(resp.AnchorMode)+")"),
		Dim("today ") + resp.Today.Format(domain.DateLayout),
	}
	return strings.Join(parts, Dim("  ·  "))
}

// FormatSummary renders the headline numbers in a box.
func FormatSummary(s timeline.Summary) string {
	lines := []string{
		fmt.Sprintf("%s %d    %s %d",
			Dim("Milestones:"), s.Total, Dim("With actual:"), s.WithActual),
		fmt.Sprintf("%s %s", Dim("On-time:   "), RenderProgress(s.OnTimePct/100, 20)),
		fmt.Sprintf("%s %s %s    %s %s %s",
			Dim("Delayed:"), StyleRed.Render(fmt.Sprintf("%d", s.Delayed)), Dim("avg "+Days(s.AvgDelayDays)),
			Dim("Early:"), StyleAqua.Render(fmt.Sprintf("%d", s.Early)), Dim("avg "+Days(s.AvgEarlyDays))),
	}
	return RenderBox("Summary", strings.Join(lines, "\n"))
}

// FormatAxis renders the tick labels of the month axis and marks today.
func FormatAxis(a timeline.Axis) string {
	labels := make([]string, 0, len(a.Ticks))
	for _, t := range a.Ticks {
		label := MonthLabel(t.Index) + " " + t.Label
		if t.Index == a.TodayIndex {
			label = StyleYellow.Render(label + " ◀ today")
		}
		labels = append(labels, label)
	}
	head := fmt.Sprintf("%s %s → %s  %s %s",
		Dim("Axis"), MonthLabel(a.Start), MonthLabel(a.End),
		Dim("today"), StyleYellow.Render(MonthLabel(a.TodayIndex)))
	return head + "\n" + wrapJoin(labels, Dim(" │ "), 100)
}

// FormatMilestoneTable renders one row per milestone with its position lane.
func FormatMilestoneTable(view []domain.Milestone, axis timeline.Axis, withGroup bool) string {
	headers := []string{"Milestone"}
	if withGroup {
		headers = append(headers, "Group")
	}
	headers = append(headers, "Contractual", "Actual", "Idx", "Status", "Δ", "Lane")

	align := make([]Align, len(headers))
	rows := make([][]string, 0, len(view))
	for i := range view {
		m := &view[i]
		row := []string{ansi.Truncate(m.Name, nameWidth, "…")}
		if withGroup {
			row = append(row, m.GroupLabel())
		}
		idx := IndexCell(m.ContractualMonthIndex)
		if m.ActualMonthIndex != nil {
			idx += Dim("/") + IndexCell(m.ActualMonthIndex)
		}
		row = append(row,
			DateCell(m.Contractual),
			DateCell(m.Actual),
			idx,
			StatusIndicator(m.Status),
			DelayBadge(m),
			RenderLane(m, axis, laneWidth),
		)
		rows = append(rows, row)
	}
	align[len(align)-2] = AlignRight
	return RenderAlignedTable(headers, rows, align)
}

// RenderLane draws a fixed-width strip spanning the axis with the
// contractual position as ◆, the actual position as ● and today as │.
func RenderLane(m *domain.Milestone, axis timeline.Axis, width int) string {
	if width < 2 {
		width = 2
	}
	cells := make([]string, width)
	for i := range cells {
		cells[i] = Dim("·")
	}
	pos := func(idx int) int {
		span := axis.End - axis.Start
		if span <= 0 {
			return 0
		}
		p := (idx - axis.Start) * (width - 1) / span
		if p < 0 {
			return 0
		}
		if p > width-1 {
			return width - 1
		}
		return p
	}
	cells[pos(axis.TodayIndex)] = StyleYellow.Render("│")
	if m.ContractualMonthIndex != nil {
		cells[pos(*m.ContractualMonthIndex)] = StyleBlue.Render("◆")
	}
	if m.ActualMonthIndex != nil {
		cells[pos(*m.ActualMonthIndex)] = StatusColor(m.Status).Render("●")
	}
	return strings.Join(cells, "")
}

// FormatDistribution renders the status histogram, largest bar first.
func FormatDistribution(s timeline.Summary) string {
	var b strings.Builder
	b.WriteString(Header("Status distribution"))
	b.WriteString("\n")
	peak := 0
	for _, h := range s.Histogram {
		if h.Count > peak {
			peak = h.Count
		}
	}
	rows := make([][]string, 0, len(s.Histogram))
	for _, h := range s.Histogram {
		rows = append(rows, []string{
			StatusIndicator(h.Status),
			fmt.Sprintf("%d", h.Count),
			RenderBar(h.Count, peak, 30, StatusColor(h.Status)),
		})
	}
	b.WriteString(RenderAlignedTable([]string{"Status", "Count", ""}, rows, []Align{AlignLeft, AlignRight}))
	return b.String()
}

// FormatGroupBreakdown renders the group x status table. Only statuses that
// occur in some group get a column.
func FormatGroupBreakdown(g *timeline.GroupBreakdown) string {
	var statuses []domain.Status
	for _, st := range domain.AllStatuses {
		for _, grp := range g.Groups {
			if g.Count(grp, st) > 0 {
				statuses = append(statuses, st)
				break
			}
		}
	}

	headers := []string{"Group"}
	align := []Align{AlignLeft}
	for _, st := range statuses {
		headers = append(headers, string(st))
		align = append(align, AlignRight)
	}
	headers = append(headers, "Total")
	align = append(align, AlignRight)

	rows := make([][]string, 0, len(g.Groups))
	for _, grp := range g.Groups {
		row := []string{grp}
		for _, st := range statuses {
			n := g.Count(grp, st)
			cell := Dim("0")
			if n > 0 {
				cell = StatusColor(st).Render(fmt.Sprintf("%d", n))
			}
			row = append(row, cell)
		}
		row = append(row, Bold(fmt.Sprintf("%d", g.Total(grp))))
		rows = append(rows, row)
	}

	var b strings.Builder
	b.WriteString(Header("By group"))
	b.WriteString("\n")
	b.WriteString(RenderAlignedTable(headers, rows, align))
	return b.String()
}

// wrapJoin joins items with sep, breaking lines once the visible width
// passes limit.
func wrapJoin(items []string, sep string, limit int) string {
	var b strings.Builder
	lineWidth := 0
	sepWidth := lipgloss.Width(sep)
	for i, it := range items {
		w := lipgloss.Width(it)
		if i > 0 {
			if lineWidth+sepWidth+w > limit {
				b.WriteString("\n")
				lineWidth = 0
			} else {
				b.WriteString(sep)
				lineWidth += sepWidth
			}
		}
		b.WriteString(it)
		lineWidth += w
	}
	return b.String()
}
