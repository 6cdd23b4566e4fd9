package export

import (
	"strconv"

	"github.com/alexanderramin/milestones/internal/domain"
)

// Column names of the flat export table.
const (
	ColMilestone             = "Milestone"
	ColGroup                 = "Group"
	ColContractual           = "Contractual"
	ColActual                = "Actual"
	ColStatus                = "Status"
	ColContractualLabel      = "ContractualLabel"
	ColActualLabel           = "ActualLabel"
	ColContractualMonthIndex = "ContractualMonthIndex"
	ColActualMonthIndex      = "ActualMonthIndex"
)

// Table is the flat, string-valued rendering of a view. Dates are date-only
// and absent values are empty strings.
type Table struct {
	Headers []string
	Records [][]string
}

// Mapping returns the column mapping that reads an exported table back in.
func Mapping(hasGroup bool) domain.ColumnMapping {
	m := domain.ColumnMapping{
		NameColumn:        ColMilestone,
		ContractualColumn: ColContractual,
		ActualColumn:      ColActual,
	}
	if hasGroup {
		m.GroupColumn = ColGroup
	}
	return m
}

// Rows flattens the view. The Group column is present only when hasGroup is
// set.
func Rows(view []domain.Milestone, hasGroup bool) Table {
	headers := []string{ColMilestone}
	if hasGroup {
		headers = append(headers, ColGroup)
	}
	headers = append(headers,
		ColContractual, ColActual, ColStatus,
		ColContractualLabel, ColActualLabel,
		ColContractualMonthIndex, ColActualMonthIndex,
	)

	t := Table{Headers: headers, Records: make([][]string, 0, len(view))}
	for i := range view {
		m := &view[i]
		rec := make([]string, 0, len(headers))
		rec = append(rec, m.Name)
		if hasGroup {
			g := ""
			if m.Group != nil {
				g = *m.Group
			}
			rec = append(rec, g)
		}
		rec = append(rec,
			domain.FormatDate(m.Contractual),
			domain.FormatDate(m.Actual),
			string(m.Status),
			m.ContractualLabel,
			m.ActualLabel,
			formatIndex(m.ContractualMonthIndex),
			formatIndex(m.ActualMonthIndex),
		)
		t.Records = append(t.Records, rec)
	}
	return t
}

func formatIndex(i *int) string {
	if i == nil {
		return ""
	}
	return strconv.Itoa(*i)
}
