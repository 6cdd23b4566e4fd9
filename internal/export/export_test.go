package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/milestones/internal/domain"
	"github.com/alexanderramin/milestones/internal/importer"
	"github.com/alexanderramin/milestones/internal/testutil"
	"github.com/alexanderramin/milestones/internal/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	today  = testutil.Date(2025, 6, 15)
	anchor = testutil.Date(2025, 1, 15)
)

func templateView(t *testing.T) []domain.Milestone {
	t.Helper()
	m := domain.ColumnMapping{
		NameColumn:        "Milestones",
		ContractualColumn: "Contractual",
		ActualColumn:      "Actual/ Anticipated",
		GroupColumn:       "Category",
	}
	res := importer.Convert(testutil.NewTemplateTable(), m)
	return timeline.Derive(res.Entries, anchor, today, domain.LabelMonthShortYear)
}

func TestRows_Columns(t *testing.T) {
	tbl := Rows(templateView(t), true)
	assert.Equal(t, []string{
		"Milestone", "Group", "Contractual", "Actual", "Status",
		"ContractualLabel", "ActualLabel", "ContractualMonthIndex", "ActualMonthIndex",
	}, tbl.Headers)
	require.Len(t, tbl.Records, 5)
	assert.Equal(t, []string{
		"Boiler Hydrostatic Test", "Boiler", "2026-03-30", "", "Pending",
		"Mar-26", domain.NoDateLabel, "14", "",
	}, tbl.Records[1])

	noGroup := Rows(templateView(t), false)
	assert.NotContains(t, noGroup.Headers, ColGroup)
	assert.Len(t, noGroup.Records[0], 8)
}

func TestRows_DatesAreDateOnly(t *testing.T) {
	view := timeline.Derive([]domain.Entry{
		{Name: "Late shift", Contractual: ptrTime(2025, 3, 1, 22)},
	}, anchor, today, domain.LabelISOMonth)
	tbl := Rows(view, false)
	assert.Equal(t, "2025-03-01", tbl.Records[0][1])
}

func TestWriteCSV_RoundTrip(t *testing.T) {
	view := templateView(t)
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, Rows(view, true)))

	back, err := importer.ReadCSV(&buf)
	require.NoError(t, err)
	res := importer.Convert(back, Mapping(true))
	assertSameEntries(t, view, res.Entries)
}

func TestWriteXLSX_RoundTrip(t *testing.T) {
	view := templateView(t)
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, Rows(view, true)))

	back, err := importer.ReadWorkbook(bytes.NewReader(buf.Bytes()), FilteredSheet)
	require.NoError(t, err)
	assert.Equal(t, FilteredSheet, back.Sheet)
	res := importer.Convert(back, Mapping(true))
	assertSameEntries(t, view, res.Entries)
	assert.Equal(t, 14.0, back.Rows[1][ColContractualMonthIndex], "indices are numeric cells")
}

func TestWriteXLSX_RoundTripKeepsNumericLookingText(t *testing.T) {
	view := timeline.Derive([]domain.Entry{
		testutil.NewTestEntry(0, "007", testutil.WithContractual(testutil.Date(2025, 3, 1)), testutil.WithGroup("0.50")),
		testutil.NewTestEntry(1, "1e3", testutil.WithActual(testutil.Date(2025, 4, 2))),
		testutil.NewTestEntry(2, "45306", testutil.WithGroup("1.10")),
	}, anchor, today, domain.LabelMonthShortYear)
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, Rows(view, true)))

	back, err := importer.ReadWorkbook(bytes.NewReader(buf.Bytes()), FilteredSheet)
	require.NoError(t, err)
	assert.Equal(t, "007", back.Rows[0][ColMilestone])
	assert.Equal(t, "0.50", back.Rows[0][ColGroup])
	res := importer.Convert(back, Mapping(true))
	assertSameEntries(t, view, res.Entries)
}

func TestWritePDF(t *testing.T) {
	view := templateView(t)
	var buf bytes.Buffer
	err := WritePDF(&buf, Report{
		Source:     "plan.xlsx",
		Today:      today,
		Anchor:     anchor,
		AnchorMode: domain.AnchorNamedSentinel,
		Warnings:   []string{timeline.SentinelFallbackWarning},
		Summary:    timeline.Aggregate(view, true),
		Table:      Rows(view, true),
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(buf.String(), "%PDF-"))
}

func TestWritePDF_ManyRowsAndLongNames(t *testing.T) {
	var entries []domain.Entry
	for i := 0; i < 120; i++ {
		entries = append(entries, domain.Entry{
			Row:         i,
			Name:        strings.Repeat("Very long milestone name ", 8),
			Contractual: ptrTime(2025, 2, 1, 0),
		})
	}
	view := timeline.Derive(entries, anchor, today, domain.LabelMonthShortYear)
	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, Report{Summary: timeline.Aggregate(view, false), Table: Rows(view, false)}))
	assert.NotZero(t, buf.Len())
}

func TestWriteTemplate(t *testing.T) {
	var xlsx bytes.Buffer
	require.NoError(t, WriteTemplate(&xlsx, "xlsx"))
	tbl, err := importer.ReadWorkbook(bytes.NewReader(xlsx.Bytes()), TemplateSheet)
	require.NoError(t, err)
	assert.Equal(t, TemplateHeaders, tbl.Headers)
	assert.Len(t, tbl.Rows, 5)
	assert.Nil(t, tbl.Rows[1]["Actual/ Anticipated"])

	var csv bytes.Buffer
	require.NoError(t, WriteTemplate(&csv, "csv"))
	assert.True(t, strings.HasPrefix(csv.String(), "Milestones,Contractual,Actual/ Anticipated,Category\n"))

	assert.Error(t, WriteTemplate(&csv, "pdf"))
}

func TestTemplateFormat(t *testing.T) {
	assert.Equal(t, "csv", TemplateFormat("out/template.CSV"))
	assert.Equal(t, "xlsx", TemplateFormat("template.xlsx"))
	assert.Equal(t, "xlsx", TemplateFormat("template"))
}

func assertSameEntries(t *testing.T, want []domain.Milestone, got []domain.Entry) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].Name, got[i].Name)
		assert.Equal(t, want[i].Contractual, got[i].Contractual, want[i].Name)
		assert.Equal(t, want[i].Actual, got[i].Actual, want[i].Name)
		assert.Equal(t, want[i].Group, got[i].Group, want[i].Name)
	}
}

func ptrTime(y int, m time.Month, d, h int) *time.Time {
	t := time.Date(y, m, d, h, 0, 0, 0, time.UTC)
	return &t
}
