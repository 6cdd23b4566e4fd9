package importer

import (
	"testing"
	"time"

	"github.com/alexanderramin/milestones/internal/domain"
	"github.com/alexanderramin/milestones/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func templateMapping() domain.ColumnMapping {
	return domain.ColumnMapping{
		NameColumn:        "Milestones",
		ContractualColumn: "Contractual",
		ActualColumn:      "Actual/ Anticipated",
		GroupColumn:       "Category",
	}
}

func TestConvert_Template(t *testing.T) {
	res := Convert(testutil.NewTemplateTable(), templateMapping())
	assert.Equal(t, 0, res.Dropped)
	require.Len(t, res.Entries, 5)

	ntp := res.Entries[0]
	assert.Equal(t, "Notice to Proceed", ntp.Name)
	require.NotNil(t, ntp.Contractual)
	assert.Equal(t, day(2025, 1, 15), *ntp.Contractual)
	require.NotNil(t, ntp.Group)
	assert.Equal(t, "Project", *ntp.Group)

	boiler := res.Entries[1]
	assert.Nil(t, boiler.Actual)
	assert.Equal(t, 1, boiler.Row)
}

func TestConvert_DropsBlankNamesKeepsBadDates(t *testing.T) {
	table := testutil.NewTestTable(
		[]string{"Milestones", "Contractual", "Actual"},
		[][]string{
			{"  ", "2025-01-01", ""},
			{"", "2025-02-01", "2025-02-01"},
			{"Survey", "TBD", "not a date"},
		})
	m := domain.ColumnMapping{NameColumn: "Milestones", ContractualColumn: "Contractual", ActualColumn: "Actual"}

	res := Convert(table, m)
	assert.Equal(t, 2, res.Dropped)
	require.Len(t, res.Entries, 1)
	assert.Equal(t, "Survey", res.Entries[0].Name)
	assert.Nil(t, res.Entries[0].Contractual)
	assert.Nil(t, res.Entries[0].Actual)
	assert.Equal(t, 2, res.Entries[0].Row)
}

func TestConvert_NumericNameAndEmptyGroup(t *testing.T) {
	table := &domain.Table{
		Headers: []string{"Name", "Plan", "Actual", "Phase"},
		Rows: []domain.RawRow{
			{"Name": 101.0, "Plan": 45672.0, "Actual": nil, "Phase": nil},
		},
	}
	m := domain.ColumnMapping{NameColumn: "Name", ContractualColumn: "Plan", ActualColumn: "Actual", GroupColumn: "Phase"}

	res := Convert(table, m)
	require.Len(t, res.Entries, 1)
	assert.Equal(t, "101", res.Entries[0].Name)
	require.NotNil(t, res.Entries[0].Contractual)
	assert.Equal(t, day(2025, 1, 15), *res.Entries[0].Contractual)
	assert.Nil(t, res.Entries[0].Group)
}

func TestCellText(t *testing.T) {
	assert.Equal(t, "", CellText(nil))
	assert.Equal(t, "COD", CellText(" COD "))
	assert.Equal(t, "12.5", CellText(12.5))
	assert.Equal(t, "7", CellText(7))
	assert.Equal(t, "2025-01-15", CellText(time.Date(2025, 1, 15, 8, 0, 0, 0, time.UTC)))
}
