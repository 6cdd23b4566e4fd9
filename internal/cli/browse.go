package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/milestones/internal/cli/formatter"
	"github.com/alexanderramin/milestones/internal/contract"
	"github.com/alexanderramin/milestones/internal/domain"
	"github.com/alexanderramin/milestones/internal/timeline"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func newBrowseCmd(a *App) *cobra.Command {
	var f timelineFlags

	cmd := &cobra.Command{
		Use:   "browse [FILE]",
		Short: "Explore a timeline interactively: live search and status filters",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.interactive() {
				return fmt.Errorf("browse needs a terminal; use 'milestones view' instead")
			}
			req, err := f.request(cmd, args)
			if err != nil {
				return err
			}
			resp, err := a.Timeline.Build(cmd.Context(), req)
			if err != nil {
				return err
			}
			p := tea.NewProgram(newBrowseModel(resp, req.Filter), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}

	addTimelineFlags(cmd, &f, a.Defaults)
	return cmd
}

// browseChrome is the number of lines around the table: header, KPI line,
// filter line, search box, selection line and help.
const browseChrome = 9

// browseModel re-filters the milestones of one built timeline in memory.
type browseModel struct {
	resp *contract.TimelineResponse
	base timeline.Filter

	// statusStep 0 is the starting status set, 1..len(AllStatuses) a single
	// status, and the last step shows every status.
	statusStep int
	future     bool

	search    textinput.Model
	searching bool
	table     table.Model

	view    []domain.Milestone
	summary timeline.Summary

	width  int
	height int
}

func newBrowseModel(resp *contract.TimelineResponse, base timeline.Filter) browseModel {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "search milestones"
	ti.CharLimit = 200
	ti.SetValue(base.Search)

	t := table.New(table.WithFocused(true), table.WithHeight(15))
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(formatter.ColorDim).
		BorderBottom(true).
		Foreground(formatter.ColorHeader).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(formatter.ColorFg).
		Background(lipgloss.Color("#504945")).
		Bold(false)
	t.SetStyles(styles)

	m := browseModel{
		resp:   resp,
		base:   base,
		future: base.FutureOnly,
		search: ti,
		table:  t,
		width:  120,
		height: 30,
	}
	m.layout()
	m.refilter()
	return m
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.searching {
			return m.updateSearch(msg)
		}
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit
		case "/":
			m.searching = true
			return m, m.search.Focus()
		case "s":
			m.statusStep = (m.statusStep + 1) % (len(domain.AllStatuses) + 2)
			m.refilter()
			return m, nil
		case "f":
			m.future = !m.future
			m.refilter()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m browseModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.search.Blur()
		return m, nil
	case "esc":
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.refilter()
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.refilter()
	return m, cmd
}

// filter returns the predicate set currently selected in the UI.
func (m browseModel) filter() timeline.Filter {
	f := timeline.Filter{
		Search:     strings.TrimSpace(m.search.Value()),
		FutureOnly: m.future,
	}
	switch {
	case m.statusStep == 0:
		f.Statuses = m.base.Statuses
	case m.statusStep <= len(domain.AllStatuses):
		f.Statuses = []domain.Status{domain.AllStatuses[m.statusStep-1]}
	}
	return f
}

func (m browseModel) statusLabel() string {
	switch {
	case m.statusStep == 0:
		if len(m.base.Statuses) == 0 || len(m.base.Statuses) == len(domain.AllStatuses) {
			return "all"
		}
		return fmt.Sprintf("default (%d)", len(m.base.Statuses))
	case m.statusStep <= len(domain.AllStatuses):
		return string(domain.AllStatuses[m.statusStep-1])
	}
	return "all"
}

func (m *browseModel) refilter() {
	m.view = timeline.Apply(m.resp.All, m.filter(), m.resp.Today)
	m.summary = timeline.Aggregate(m.view, m.resp.Mapping.HasGroup())

	rows := make([]table.Row, 0, len(m.view))
	for i := range m.view {
		rows = append(rows, m.row(&m.view[i]))
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(0)
	}
}

func (m browseModel) withGroup() bool {
	return m.resp.Mapping.HasGroup()
}

func (m browseModel) row(ms *domain.Milestone) table.Row {
	r := table.Row{ms.Name}
	if m.withGroup() {
		r = append(r, ms.GroupLabel())
	}
	idx := domain.NoDateLabel
	if ms.ContractualMonthIndex != nil {
		idx = formatter.MonthLabel(*ms.ContractualMonthIndex)
	}
	return append(r,
		domain.FormatDate(ms.Contractual),
		domain.FormatDate(ms.Actual),
		idx,
		string(ms.Status),
		plainDelta(ms),
	)
}

func plainDelta(ms *domain.Milestone) string {
	d, ok := ms.DeltaDays()
	if !ok {
		return ""
	}
	if d > 0 {
		return fmt.Sprintf("+%dd", d)
	}
	return fmt.Sprintf("%dd", d)
}

// layout sizes the table columns to the terminal. The name column takes
// whatever the fixed columns leave over.
func (m *browseModel) layout() {
	fixed := []table.Column{
		{Title: "Contractual", Width: 11},
		{Title: "Actual", Width: 11},
		{Title: "Idx", Width: 5},
		{Title: "Status", Width: 17},
		{Title: "Δ", Width: 6},
	}
	if m.withGroup() {
		fixed = append([]table.Column{{Title: "Group", Width: 16}}, fixed...)
	}
	used := 2
	for _, c := range fixed {
		used += c.Width + 2
	}
	nameWidth := m.width - used
	if nameWidth < 16 {
		nameWidth = 16
	}
	cols := append([]table.Column{{Title: "Milestone", Width: nameWidth}}, fixed...)

	// Rows must match the column count before columns change.
	m.table.SetRows(nil)
	m.table.SetColumns(cols)
	m.table.SetWidth(m.width)
	h := m.height - browseChrome
	if h < 3 {
		h = 3
	}
	m.table.SetHeight(h)
	if m.view != nil {
		m.refilter()
	}
}

func (m browseModel) View() string {
	var b strings.Builder

	b.WriteString(formatter.Header("Milestones"))
	b.WriteString("\n")

	s := m.summary
	b.WriteString(fmt.Sprintf("%s %d of %d  %s %s  %s %s  %s %s\n",
		formatter.Dim("shown"), len(m.view), len(m.resp.All),
		formatter.Dim("on-time"), fmt.Sprintf("%.0f%%", s.OnTimePct),
		formatter.Dim("delayed"), formatter.StyleRed.Render(fmt.Sprintf("%d (avg %s)", s.Delayed, formatter.Days(s.AvgDelayDays))),
		formatter.Dim("early"), formatter.StyleAqua.Render(fmt.Sprintf("%d", s.Early))))

	future := "off"
	if m.future {
		future = "on"
	}
	b.WriteString(fmt.Sprintf("%s %s  %s %s  %s %s\n",
		formatter.Dim("status:"), formatter.Bold(m.statusLabel()),
		formatter.Dim("future only:"), formatter.Bold(future),
		formatter.Dim("anchor:"), m.resp.Anchor.Format(domain.DateLayout)))
	b.WriteString(m.search.View())
	b.WriteString("\n\n")

	if len(m.view) == 0 {
		b.WriteString(formatter.Dim("No milestones match the current filters."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.table.View())
		b.WriteString("\n")
		if c := m.table.Cursor(); c >= 0 && c < len(m.view) {
			b.WriteString(m.selectionLine(&m.view[c]))
			b.WriteString("\n")
		}
	}

	b.WriteString(formatter.Dim("/ search · s status · f future · ↑/↓ move · q quit"))
	return b.String()
}

func (m browseModel) selectionLine(ms *domain.Milestone) string {
	parts := []string{formatter.StatusIndicator(ms.Status), formatter.Bold(ms.Name)}
	if ms.Contractual != nil {
		parts = append(parts, formatter.Dim("due ")+ms.ContractualLabel+" "+formatter.IndexCell(ms.ContractualMonthIndex))
	}
	if ms.Actual != nil {
		parts = append(parts, formatter.Dim("actual ")+ms.ActualLabel+" "+formatter.IndexCell(ms.ActualMonthIndex))
	}
	if badge := formatter.DelayBadge(ms); badge != "" {
		parts = append(parts, badge)
	}
	return strings.Join(parts, "  ")
}
