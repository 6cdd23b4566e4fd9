package importer

import (
	"testing"

	"github.com/alexanderramin/milestones/internal/domain"
	"github.com/alexanderramin/milestones/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestDefaultMapping_TemplateHeaders(t *testing.T) {
	m := DefaultMapping(testutil.TemplateHeaders)
	assert.Equal(t, "Milestones", m.NameColumn)
	assert.Equal(t, "Contractual", m.ContractualColumn)
	assert.Equal(t, "Actual/ Anticipated", m.ActualColumn)
	assert.False(t, m.HasGroup(), "groups are never auto-selected")
}

func TestResolveColumn_AliasPriorityBeatsHeaderOrder(t *testing.T) {
	headers := []string{"Planned", "Baseline", "Forecast", "Actual"}
	assert.Equal(t, "Baseline", ResolveColumn(headers, ContractualAliases))
	assert.Equal(t, "Actual", ResolveColumn(headers, ActualAliases))
}

func TestResolveColumn_CaseInsensitive(t *testing.T) {
	assert.Equal(t, " milestone ", ResolveColumn([]string{"ID", " milestone "}, NameAliases))
}

func TestResolveColumn_FallsBackToFirstHeader(t *testing.T) {
	assert.Equal(t, "Col A", ResolveColumn([]string{"Col A", "Col B"}, NameAliases))
	assert.Equal(t, "", ResolveColumn(nil, NameAliases))
}

func TestGroupCandidates(t *testing.T) {
	headers := []string{"Milestones", "Phase", "Contractual", "category", "Notes"}
	assert.Equal(t, []string{"Phase", "category"}, GroupCandidates(headers))
	assert.Empty(t, GroupCandidates([]string{"A", "B"}))
}

func TestMergeMapping(t *testing.T) {
	base := domain.ColumnMapping{
		NameColumn:        "Milestones",
		ContractualColumn: "Contractual",
		ActualColumn:      "Actual",
		GroupColumn:       "Category",
	}

	got := MergeMapping(base, domain.ColumnMapping{ActualColumn: "Forecast"})
	assert.Equal(t, "Forecast", got.ActualColumn)
	assert.Equal(t, "Milestones", got.NameColumn)
	assert.Equal(t, "Category", got.GroupColumn)

	got = MergeMapping(base, domain.ColumnMapping{GroupColumn: NoGroupColumn})
	assert.Equal(t, "", got.GroupColumn)

	got = MergeMapping(base, domain.ColumnMapping{GroupColumn: "Phase"})
	assert.Equal(t, "Phase", got.GroupColumn)
}
