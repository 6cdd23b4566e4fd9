package timeline

import (
	"strings"
	"time"

	"github.com/alexanderramin/milestones/internal/domain"
)

// Filter selects the milestones shown. The zero value keeps everything.
type Filter struct {
	// Search is a case-insensitive substring of the name. Empty means no search.
	Search string
	// Statuses keeps only rows with one of these statuses. Empty means all.
	Statuses []domain.Status
	// FutureOnly keeps rows without a contractual date or with one on or
	// after today.
	FutureOnly bool
}

// Apply returns the milestones passing every predicate, in input order.
// The input slice is not modified.
func Apply(ms []domain.Milestone, f Filter, today time.Time) []domain.Milestone {
	needle := strings.ToLower(f.Search)

	var allowed map[domain.Status]bool
	if len(f.Statuses) > 0 {
		allowed = make(map[domain.Status]bool, len(f.Statuses))
		for _, s := range f.Statuses {
			allowed[s] = true
		}
	}

	out := make([]domain.Milestone, 0, len(ms))
	for _, m := range ms {
		if needle != "" && !strings.Contains(strings.ToLower(m.Name), needle) {
			continue
		}
		if allowed != nil && !allowed[m.Status] {
			continue
		}
		if f.FutureOnly && m.Contractual != nil && m.Contractual.Before(today) {
			continue
		}
		out = append(out, m)
	}
	return out
}
