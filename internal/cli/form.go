package cli

import (
	"github.com/alexanderramin/milestones/internal/cli/formatter"
	"github.com/alexanderramin/milestones/internal/domain"
	"github.com/alexanderramin/milestones/internal/importer"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// formTheme returns a huh theme matching the formatter palette.
func formTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// mappingForm builds the column-mapping correction form. The selects write
// straight into m, which should hold the current mapping so each select
// starts on it.
func mappingForm(headers, candidates []string, m *domain.ColumnMapping) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Milestone name column").
				Options(headerOptions(headers)...).
				Value(&m.NameColumn),
			huh.NewSelect[string]().
				Title("Contractual date column").
				Options(headerOptions(headers)...).
				Value(&m.ContractualColumn),
			huh.NewSelect[string]().
				Title("Actual / anticipated date column").
				Options(headerOptions(headers)...).
				Value(&m.ActualColumn),
			huh.NewSelect[string]().
				Title("Group by").
				Description("Optional. Likely candidates are listed first.").
				Options(groupOptions(headers, candidates)...).
				Value(&m.GroupColumn),
		),
	).WithTheme(formTheme()).WithShowHelp(false)
}

func headerOptions(headers []string) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(headers))
	for _, h := range headers {
		opts = append(opts, huh.NewOption(h, h))
	}
	return opts
}

// groupOptions lists "(none)", then the candidates, then the other headers.
func groupOptions(headers, candidates []string) []huh.Option[string] {
	opts := []huh.Option[string]{huh.NewOption(importer.NoGroupColumn, "")}
	seen := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		seen[c] = true
		opts = append(opts, huh.NewOption(c+" (suggested)", c))
	}
	for _, h := range headers {
		if !seen[h] {
			opts = append(opts, huh.NewOption(h, h))
		}
	}
	return opts
}
