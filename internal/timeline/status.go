package timeline

import (
	"time"

	"github.com/alexanderramin/milestones/internal/domain"
)

// Classify derives the status of a milestone. Dates are compared at day
// granularity, so an actual date later on the contractual day is On-Time.
// today is expected at midnight.
func Classify(contractual, actual *time.Time, today time.Time) domain.Status {
	if actual == nil {
		if contractual != nil && contractual.Before(today) {
			return domain.StatusPendingOverdue
		}
		return domain.StatusPending
	}
	if contractual == nil {
		return domain.StatusActualOnly
	}

	c := domain.StartOfDay(*contractual)
	a := domain.StartOfDay(*actual)
	switch {
	case a.Equal(c):
		return domain.StatusOnTime
	case a.Before(c):
		return domain.StatusEarly
	default:
		return domain.StatusDelayed
	}
}
