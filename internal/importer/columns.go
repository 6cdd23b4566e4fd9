package importer

import (
	"strings"

	"github.com/alexanderramin/milestones/internal/domain"
)

// Alias lists, most specific first.
var (
	NameAliases        = []string{"Milestones", "Milestone", "Activity", "Name", "Event"}
	ContractualAliases = []string{"Contractual", "Baseline", "Planned", "Target", "Plan", "Contract"}
	ActualAliases      = []string{"Actual/ Anticipated", "Actual/Anticipated", "Actual", "Forecast", "Anticipated", "Revised", "Achieved"}

	// GroupHints are offered as group columns but never selected automatically.
	GroupHints = []string{"Category", "Discipline", "Phase", "Package", "System", "Area"}
)

// ResolveColumn returns the first header matching an alias, walking aliases
// in priority order. Matching ignores case and surrounding space. When nothing
// matches it returns the first header so a selection always exists; it
// returns "" only when headers is empty.
func ResolveColumn(headers []string, aliases []string) string {
	for _, alias := range aliases {
		want := normalizeHeader(alias)
		for _, h := range headers {
			if normalizeHeader(h) == want {
				return h
			}
		}
	}
	if len(headers) > 0 {
		return headers[0]
	}
	return ""
}

// DefaultMapping resolves the three required fields. No group is selected.
func DefaultMapping(headers []string) domain.ColumnMapping {
	return domain.ColumnMapping{
		NameColumn:        ResolveColumn(headers, NameAliases),
		ContractualColumn: ResolveColumn(headers, ContractualAliases),
		ActualColumn:      ResolveColumn(headers, ActualAliases),
	}
}

// GroupCandidates returns the headers that look like grouping columns, in
// header order.
func GroupCandidates(headers []string) []string {
	hints := make(map[string]bool, len(GroupHints))
	for _, h := range GroupHints {
		hints[normalizeHeader(h)] = true
	}
	var out []string
	for _, h := range headers {
		if hints[normalizeHeader(h)] {
			out = append(out, h)
		}
	}
	return out
}

// NoGroupColumn in an override clears the group selection.
const NoGroupColumn = "(none)"

// MergeMapping overlays the non-empty fields of override onto base.
func MergeMapping(base, override domain.ColumnMapping) domain.ColumnMapping {
	if override.NameColumn != "" {
		base.NameColumn = override.NameColumn
	}
	if override.ContractualColumn != "" {
		base.ContractualColumn = override.ContractualColumn
	}
	if override.ActualColumn != "" {
		base.ActualColumn = override.ActualColumn
	}
	switch override.GroupColumn {
	case "":
	case NoGroupColumn:
		base.GroupColumn = ""
	default:
		base.GroupColumn = override.GroupColumn
	}
	return base
}

func normalizeHeader(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
