package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/milestones/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorAqua   = lipgloss.Color("#689d6a")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleAqua   = lipgloss.NewStyle().Foreground(ColorAqua)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusColor returns the style used for a milestone status.
func StatusColor(s domain.Status) lipgloss.Style {
	switch s {
	case domain.StatusOnTime:
		return StyleGreen
	case domain.StatusEarly:
		return StyleAqua
	case domain.StatusDelayed:
		return StyleRed
	case domain.StatusPending:
		return StyleBlue
	case domain.StatusPendingOverdue:
		return StyleYellow
	case domain.StatusActualOnly:
		return StylePurple
	default:
		return StyleDim
	}
}

// StatusIndicator returns a colored status pill such as "● Delayed".
func StatusIndicator(s domain.Status) string {
	symbol := "●"
	switch s {
	case domain.StatusPending:
		symbol = "○"
	case domain.StatusPendingOverdue:
		symbol = "◐"
	case domain.StatusActualOnly:
		symbol = "◇"
	}
	return StatusColor(s).Render(symbol + " " + string(s))
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}

// Warning renders a yellow warning line.
func Warning(text string) string {
	return StyleYellow.Render("WARNING: " + text)
}
