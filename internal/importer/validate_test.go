package importer

import (
	"testing"

	"github.com/alexanderramin/milestones/internal/domain"
	"github.com/alexanderramin/milestones/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateMapping_Valid(t *testing.T) {
	m := domain.ColumnMapping{
		NameColumn:        "Milestones",
		ContractualColumn: "Contractual",
		ActualColumn:      "Actual/ Anticipated",
		GroupColumn:       "Category",
	}
	assert.Empty(t, ValidateMapping(testutil.TemplateHeaders, m))
}

func TestValidateMapping_CollectsAllErrors(t *testing.T) {
	m := domain.ColumnMapping{
		NameColumn:        "",
		ContractualColumn: "Baseline",
		ActualColumn:      "Actual/ Anticipated",
		GroupColumn:       "Phase",
	}
	errs := ValidateMapping(testutil.TemplateHeaders, m)
	require.Len(t, errs, 3)
	assert.Contains(t, errs[0].Error(), "name column is required")
	assert.Contains(t, errs[1].Error(), `"Baseline"`)
	assert.Contains(t, errs[2].Error(), `group column "Phase"`)
}

func TestValidateMapping_DuplicateSelectionsAllowed(t *testing.T) {
	m := domain.ColumnMapping{
		NameColumn:        "Milestones",
		ContractualColumn: "Contractual",
		ActualColumn:      "Contractual",
	}
	assert.Empty(t, ValidateMapping(testutil.TemplateHeaders, m))
}
