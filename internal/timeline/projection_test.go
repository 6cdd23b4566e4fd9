package timeline

import (
	"testing"
	"time"

	"github.com/alexanderramin/milestones/internal/domain"
	"github.com/alexanderramin/milestones/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthIndex(t *testing.T) {
	anchor := testutil.Date(2025, 1, 15)
	cases := []struct {
		date [3]int
		want int
	}{
		{date: [3]int{2025, 1, 1}, want: 0},
		{date: [3]int{2025, 1, 31}, want: 0},
		{date: [3]int{2025, 2, 1}, want: 1},
		{date: [3]int{2026, 3, 30}, want: 14},
		{date: [3]int{2024, 12, 31}, want: -1},
		{date: [3]int{2023, 1, 15}, want: -24},
	}
	for _, tc := range cases {
		d := testutil.Date(tc.date[0], time.Month(tc.date[1]), tc.date[2])
		got := MonthIndex(anchor, &d)
		require.NotNil(t, got)
		assert.Equal(t, tc.want, *got, "date=%s", d.Format(domain.DateLayout))
	}
	assert.Nil(t, MonthIndex(anchor, nil))
}

func TestDerive_Template(t *testing.T) {
	anchor := testutil.Date(2025, 1, 15)
	entries := templateEntries()
	ms := Derive(entries, anchor, today, domain.LabelMonthShortYear)
	require.Len(t, ms, 5)

	ntp := ms[0]
	assert.Equal(t, domain.StatusOnTime, ntp.Status)
	assert.Equal(t, 0, *ntp.ContractualMonthIndex)
	assert.Equal(t, "Jan-25", ntp.ContractualLabel)

	boiler := ms[1]
	assert.Equal(t, domain.StatusPending, boiler.Status)
	assert.Equal(t, 14, *boiler.ContractualMonthIndex)
	assert.Nil(t, boiler.ActualMonthIndex)
	assert.Equal(t, "Mar-26", boiler.ContractualLabel)
	assert.Equal(t, domain.NoDateLabel, boiler.ActualLabel)

	assert.Equal(t, domain.StatusDelayed, ms[2].Status)
	assert.Equal(t, 18, *ms[2].ActualMonthIndex)

	assert.Nil(t, entries[1].Actual, "entries are not modified")
}

func TestDerive_IsPure(t *testing.T) {
	anchor := testutil.Date(2025, 1, 15)
	a := Derive(templateEntries(), anchor, today, domain.LabelISOMonth)
	b := Derive(templateEntries(), anchor, today, domain.LabelISOMonth)
	assert.Equal(t, a, b)
}
