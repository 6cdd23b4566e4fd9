package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus_Aliases(t *testing.T) {
	cases := map[string]Status{
		"On-Time":           StatusOnTime,
		"on_time":           StatusOnTime,
		"EARLY":             StatusEarly,
		" delayed ":         StatusDelayed,
		"Pending":           StatusPending,
		"Pending (Overdue)": StatusPendingOverdue,
		"pending-overdue":   StatusPendingOverdue,
		"overdue":           StatusPendingOverdue,
		"Actual Only":       StatusActualOnly,
		"actual-only":       StatusActualOnly,
	}
	for in, want := range cases {
		got, err := ParseStatus(in)
		require.NoError(t, err, "input=%q", in)
		assert.Equal(t, want, got, "input=%q", in)
	}
}

func TestParseStatus_Unknown(t *testing.T) {
	_, err := ParseStatus("late")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "late")
}

func TestParseStatuses_AllAndDedup(t *testing.T) {
	all, err := ParseStatuses([]string{"all"})
	require.NoError(t, err)
	assert.Equal(t, AllStatuses, all)

	got, err := ParseStatuses([]string{"delayed", "Delayed", "early"})
	require.NoError(t, err)
	assert.Equal(t, []Status{StatusDelayed, StatusEarly}, got)

	_, err = ParseStatuses([]string{"early", "bogus"})
	assert.Error(t, err)
}

func TestDefaultStatusFilter_HidesActualOnly(t *testing.T) {
	assert.Len(t, DefaultStatusFilter, 5)
	assert.NotContains(t, DefaultStatusFilter, StatusActualOnly)
}

func TestStatusOrder(t *testing.T) {
	assert.Equal(t, 0, StatusOrder(StatusOnTime))
	assert.Equal(t, 5, StatusOrder(StatusActualOnly))
	assert.Equal(t, len(AllStatuses), StatusOrder(Status("other")))
}
