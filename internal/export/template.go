package export

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// TemplateSheet is the sheet name of the spreadsheet template.
const TemplateSheet = "Unit#1"

// TemplateHeaders and TemplateRows are the fixed starter table offered to
// users. Keeping a "Notice to Proceed" row anchors Month 0 automatically.
var (
	TemplateHeaders = []string{"Milestones", "Contractual", "Actual/ Anticipated", "Category"}
	TemplateRows    = [][]string{
		{"Notice to Proceed", "2025-01-15", "2025-01-15", "Project"},
		{"Boiler Hydrostatic Test", "2026-03-30", "", "Boiler"},
		{"Boiler Light-Up", "2026-07-15", "2026-07-20", "Boiler"},
		{"Synchronization", "2026-09-30", "", "Electrical"},
		{"COD", "2026-12-15", "", "Commercial"},
	}
)

// TemplateFormat picks the template encoding from a file name: ".csv" gives
// CSV, anything else a workbook.
func TemplateFormat(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return "csv"
	}
	return "xlsx"
}

// WriteTemplate writes the starter table as "csv" or "xlsx".
func WriteTemplate(w io.Writer, format string) error {
	t := Table{Headers: TemplateHeaders, Records: TemplateRows}
	switch format {
	case "csv":
		return WriteCSV(w, t)
	case "xlsx":
		rows := make([][]any, len(TemplateRows))
		for i, rec := range TemplateRows {
			row := make([]any, len(rec))
			for j, v := range rec {
				row[j] = v
			}
			rows[i] = row
		}
		return writeWorkbook(w, TemplateSheet, TemplateHeaders, rows)
	}
	return fmt.Errorf("unsupported template format %q", format)
}
