package timeline

import (
	"testing"

	"github.com/alexanderramin/milestones/internal/domain"
	"github.com/alexanderramin/milestones/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAxis_Monthly(t *testing.T) {
	anchor := testutil.Date(2025, 1, 15)
	axis := BuildAxis(derivedTemplate(t), anchor, today, domain.GranularityMonthly, domain.LabelMonthShortYear)

	assert.Equal(t, 0, axis.Start)
	assert.Equal(t, 23, axis.End, "COD is Dec-26")
	assert.Equal(t, 5, axis.TodayIndex)
	require.Len(t, axis.Ticks, 24)
	assert.Equal(t, "Jan-25", axis.Ticks[0].Label)
	assert.Equal(t, "Mar-26", axis.Ticks[14].Label)
	assert.Equal(t, testutil.Date(2026, 3, 15), axis.Ticks[14].Date)
}

func TestBuildAxis_QuarterlyStepsByThree(t *testing.T) {
	anchor := testutil.Date(2025, 1, 15)
	axis := BuildAxis(derivedTemplate(t), anchor, today, domain.GranularityQuarterly, domain.LabelISOMonth)

	require.Len(t, axis.Ticks, 8)
	for i, tick := range axis.Ticks {
		assert.Equal(t, i*3, tick.Index)
	}
	assert.Equal(t, "2025-04", axis.Ticks[1].Label)
}

func TestBuildAxis_ExtendsPastToday(t *testing.T) {
	anchor := testutil.Date(2025, 1, 31)
	axis := BuildAxis(nil, anchor, testutil.Date(2025, 4, 2), domain.GranularityMonthly, domain.LabelMonthShortYear)

	assert.Equal(t, 0, axis.Start)
	assert.Equal(t, 5, axis.End)
	assert.Equal(t, 3, axis.TodayIndex)
	assert.Equal(t, testutil.Date(2025, 2, 28), axis.Ticks[1].Date, "day is clamped")
}

func TestBuildAxis_NegativeIndices(t *testing.T) {
	anchor := testutil.Date(2025, 1, 15)
	view := Derive([]domain.Entry{
		testutil.NewTestEntry(0, "Pre-award", testutil.WithContractual(testutil.Date(2024, 10, 1))),
	}, anchor, testutil.Date(2025, 1, 20), domain.LabelMonthShortYear)

	axis := BuildAxis(view, anchor, testutil.Date(2025, 1, 20), domain.GranularityMonthly, domain.LabelMonthShortYear)
	assert.Equal(t, -3, axis.Start)
	assert.Equal(t, 2, axis.End)
	assert.Equal(t, "Oct-24", axis.Ticks[0].Label)
}
