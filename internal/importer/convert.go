package importer

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/milestones/internal/domain"
)

// ConvertResult holds the entries read from a table plus the number of rows
// skipped because their name was empty.
type ConvertResult struct {
	Entries []domain.Entry
	Dropped int
}

// Convert reads one Entry per row using the mapping. Call ValidateMapping
// first; Convert assumes every mapped column exists. Bad date cells become
// nil and never drop the row.
func Convert(t *domain.Table, m domain.ColumnMapping) ConvertResult {
	res := ConvertResult{Entries: make([]domain.Entry, 0, len(t.Rows))}
	for i, row := range t.Rows {
		name := CellText(row[m.NameColumn])
		if name == "" {
			res.Dropped++
			continue
		}

		e := domain.Entry{
			Row:         i,
			Name:        name,
			Contractual: ParseCell(row[m.ContractualColumn]),
			Actual:      ParseCell(row[m.ActualColumn]),
		}
		if m.HasGroup() {
			if g := CellText(row[m.GroupColumn]); g != "" {
				e.Group = &g
			}
		}
		res.Entries = append(res.Entries, e)
	}
	return res
}

// CellText renders a cell as trimmed text. Whole numbers print without a
// decimal part and dates print as YYYY-MM-DD.
func CellText(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	case float64:
		if math.IsNaN(val) {
			return ""
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case bool:
		return strconv.FormatBool(val)
	case time.Time:
		if val.IsZero() {
			return ""
		}
		return val.Format(domain.DateLayout)
	}
	return ""
}
