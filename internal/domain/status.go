package domain

import (
	"fmt"
	"strings"
)

// Status is the scheduling state of a milestone, derived from its
// contractual date, its actual date and the day the timeline is built.
type Status string

const (
	StatusOnTime         Status = "On-Time"
	StatusEarly          Status = "Early"
	StatusDelayed        Status = "Delayed"
	StatusPending        Status = "Pending"
	StatusPendingOverdue Status = "Pending (Overdue)"
	StatusActualOnly     Status = "Actual Only"
)

// AllStatuses lists every status in canonical display order.
var AllStatuses = []Status{
	StatusOnTime,
	StatusEarly,
	StatusDelayed,
	StatusPending,
	StatusPendingOverdue,
	StatusActualOnly,
}

// DefaultStatusFilter is the status set shown when nothing else is configured.
// Rows with only an actual date are hidden until asked for.
var DefaultStatusFilter = []Status{
	StatusOnTime,
	StatusEarly,
	StatusDelayed,
	StatusPending,
	StatusPendingOverdue,
}

var statusAliases = map[string]Status{
	"on-time":           StatusOnTime,
	"on_time":           StatusOnTime,
	"ontime":            StatusOnTime,
	"early":             StatusEarly,
	"delayed":           StatusDelayed,
	"pending":           StatusPending,
	"pending (overdue)": StatusPendingOverdue,
	"pending-overdue":   StatusPendingOverdue,
	"pending_overdue":   StatusPendingOverdue,
	"overdue":           StatusPendingOverdue,
	"actual only":       StatusActualOnly,
	"actual-only":       StatusActualOnly,
	"actual_only":       StatusActualOnly,
}

// ParseStatus accepts the display label or a flag-friendly spelling
// ("on-time", "pending_overdue", "actual-only") in any case.
func ParseStatus(s string) (Status, error) {
	if st, ok := statusAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return st, nil
	}
	return "", fmt.Errorf("unknown status %q (expected one of: on-time, early, delayed, pending, pending-overdue, actual-only)", s)
}

// ParseStatuses parses a list of statuses. The single value "all" selects
// every status.
func ParseStatuses(vals []string) ([]Status, error) {
	if len(vals) == 1 && strings.EqualFold(strings.TrimSpace(vals[0]), "all") {
		return append([]Status(nil), AllStatuses...), nil
	}
	out := make([]Status, 0, len(vals))
	seen := make(map[Status]bool, len(vals))
	for _, v := range vals {
		st, err := ParseStatus(v)
		if err != nil {
			return nil, err
		}
		if !seen[st] {
			seen[st] = true
			out = append(out, st)
		}
	}
	return out, nil
}

// StatusOrder returns the canonical position of s, used to break ties.
func StatusOrder(s Status) int {
	for i, st := range AllStatuses {
		if st == s {
			return i
		}
	}
	return len(AllStatuses)
}
