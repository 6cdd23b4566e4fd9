package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/milestones/internal/contract"
	"github.com/alexanderramin/milestones/internal/domain"
)

const noneLabel = "(none)"

// FormatDatasetList renders stored datasets, newest last.
func FormatDatasetList(ds []*domain.Dataset) string {
	if len(ds) == 0 {
		return Dim("No datasets stored. Import one with 'milestones dataset import FILE'.") + "\n"
	}
	headers := []string{"ID", "Name", "Rows", "Mapping", "Imported"}
	rows := make([][]string, 0, len(ds))
	for _, d := range ds {
		mapping := Dim("default")
		if d.Mapping != nil {
			mapping = StyleGreen.Render("saved")
		}
		rows = append(rows, []string{
			TruncID(d.ID),
			d.Name,
			fmt.Sprintf("%d", d.RowCount),
			mapping,
			d.CreatedAt.Local().Format("2006-01-02 15:04"),
		})
	}
	return RenderAlignedTable(headers, rows, []Align{AlignLeft, AlignLeft, AlignRight})
}

// FormatDataset renders one dataset with its headers and saved mapping.
func FormatDataset(d *domain.Dataset) string {
	var b strings.Builder
	b.WriteString(Header(d.Name))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("ID:      "), d.ID))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Source:  "), d.SourcePath))
	if d.Sheet != "" {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Sheet:   "), d.Sheet))
	}
	b.WriteString(fmt.Sprintf("%s %d\n", Dim("Rows:    "), d.RowCount))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Imported:"), d.CreatedAt.Local().Format("2006-01-02 15:04")))
	b.WriteString(fmt.Sprintf("%s %s\n\n", Dim("Columns: "), strings.Join(d.Headers, Dim(", "))))
	if d.Mapping == nil {
		b.WriteString(Dim("No saved mapping; defaults apply."))
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString(FormatMapping(*d.Mapping))
	return b.String()
}

// FormatMapping renders a column mapping as a two-column table.
func FormatMapping(m domain.ColumnMapping) string {
	group := m.GroupColumn
	if group == "" {
		group = Dim(noneLabel)
	}
	rows := [][]string{
		{"Milestone name", m.NameColumn},
		{"Contractual date", m.ContractualColumn},
		{"Actual date", m.ActualColumn},
		{"Group", group},
	}
	return RenderTable([]string{"Field", "Column"}, rows)
}

// FormatSourceInfo renders what the columns command reports about a source:
// sheets, headers, the resolved mapping and the group candidates.
func FormatSourceInfo(info *contract.SourceInfo) string {
	var b strings.Builder
	title := info.Source.Path
	if info.Source.DatasetID != "" {
		title = "dataset " + info.Source.DatasetID
	}
	b.WriteString(Header("Columns"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s  %s\n", Bold(title), Dim(fmt.Sprintf("%d rows", info.RowCount))))
	if len(info.Sheets) > 0 {
		b.WriteString(FormatSheets(info.Sheets, info.Source.Sheet))
	}
	b.WriteString("\n")

	mapped := map[string]string{
		info.Mapping.NameColumn:        "name",
		info.Mapping.ContractualColumn: "contractual",
		info.Mapping.ActualColumn:      "actual",
	}
	if info.Mapping.GroupColumn != "" {
		mapped[info.Mapping.GroupColumn] = "group"
	}
	rows := make([][]string, 0, len(info.Headers))
	for i, h := range info.Headers {
		role := ""
		if r, ok := mapped[h]; ok {
			role = StyleGreen.Render(r)
		}
		rows = append(rows, []string{fmt.Sprintf("%d", i+1), h, role})
	}
	b.WriteString(RenderAlignedTable([]string{"#", "Header", "Mapped as"}, rows, []Align{AlignRight}))
	b.WriteString("\n")
	b.WriteString(FormatMapping(info.Mapping))

	if len(info.GroupCandidates) > 0 {
		b.WriteString("\n")
		b.WriteString(Dim("Group candidates: "))
		b.WriteString(strings.Join(info.GroupCandidates, Dim(", ")))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatSheets lists workbook sheets, marking the selected one. An empty
// selection marks the first sheet, which is what gets read by default.
func FormatSheets(sheets []string, selected string) string {
	if selected == "" && len(sheets) > 0 {
		selected = sheets[0]
	}
	var b strings.Builder
	for _, s := range sheets {
		if s == selected {
			b.WriteString(StyleGreen.Render("▸ " + s))
		} else {
			b.WriteString(Dim("  " + s))
		}
		b.WriteString("\n")
	}
	return b.String()
}
