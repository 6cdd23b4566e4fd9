package timeline

import (
	"testing"
	"time"

	"github.com/alexanderramin/milestones/internal/domain"
	"github.com/alexanderramin/milestones/internal/testutil"
	"github.com/stretchr/testify/assert"
)

var today = testutil.Date(2025, 6, 15)

func TestClassify(t *testing.T) {
	cases := []struct {
		name        string
		contractual *time.Time
		actual      *time.Time
		want        domain.Status
	}{
		{"same day", testutil.DatePtr(2025, 3, 1), testutil.DatePtr(2025, 3, 1), domain.StatusOnTime},
		{"actual earlier", testutil.DatePtr(2025, 3, 10), testutil.DatePtr(2025, 3, 1), domain.StatusEarly},
		{"actual later", testutil.DatePtr(2025, 3, 1), testutil.DatePtr(2025, 3, 2), domain.StatusDelayed},
		{"no actual, due in future", testutil.DatePtr(2025, 7, 1), nil, domain.StatusPending},
		{"no actual, due today", testutil.DatePtr(2025, 6, 15), nil, domain.StatusPending},
		{"no actual, overdue", testutil.DatePtr(2025, 6, 14), nil, domain.StatusPendingOverdue},
		{"no dates", nil, nil, domain.StatusPending},
		{"actual only", nil, testutil.DatePtr(2025, 1, 1), domain.StatusActualOnly},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.contractual, tc.actual, today))
		})
	}
}

func TestClassify_IgnoresTimeOfDay(t *testing.T) {
	c := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	a := time.Date(2025, 3, 1, 17, 30, 0, 0, time.UTC)
	assert.Equal(t, domain.StatusOnTime, Classify(&c, &a, today))
}

func TestClassify_PendingIndependentOfActualDates(t *testing.T) {
	// Every row without an actual date is one of the two pending states.
	for _, c := range []*time.Time{nil, testutil.DatePtr(2020, 1, 1), testutil.DatePtr(2030, 1, 1)} {
		st := Classify(c, nil, today)
		assert.Contains(t, []domain.Status{domain.StatusPending, domain.StatusPendingOverdue}, st)
	}
}
