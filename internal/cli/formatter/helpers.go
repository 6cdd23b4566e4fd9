package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/milestones/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// DateCell renders a date as YYYY-MM-DD or a dim dash.
func DateCell(t *time.Time) string {
	if t == nil {
		return Dim(domain.NoDateLabel)
	}
	return t.Format(domain.DateLayout)
}

// IndexCell renders a month index with an explicit sign, "M+14" or "M-2".
func IndexCell(i *int) string {
	if i == nil {
		return Dim(domain.NoDateLabel)
	}
	return MonthLabel(*i)
}

// MonthLabel renders a month index as "M0", "M+3" or "M-2".
func MonthLabel(i int) string {
	if i > 0 {
		return "M+" + strconv.Itoa(i)
	}
	return "M" + strconv.Itoa(i)
}

// DelayBadge renders the actual-minus-contractual difference: "+5d" in red,
// "-3d" in aqua, "0d" in green, and nothing when a date is missing.
func DelayBadge(m *domain.Milestone) string {
	d, ok := m.DeltaDays()
	if !ok {
		return ""
	}
	switch {
	case d > 0:
		return StyleRed.Render(fmt.Sprintf("+%dd", d))
	case d < 0:
		return StyleAqua.Render(fmt.Sprintf("%dd", d))
	}
	return StyleGreen.Render("0d")
}

// Days formats an average day count with one decimal.
func Days(v float64) string {
	return fmt.Sprintf("%.1f d", v)
}
