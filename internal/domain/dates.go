package domain

import "time"

// DateLayout is the date-only layout used for flags, storage and export.
const DateLayout = "2006-01-02"

// NoDateLabel is shown wherever a date is absent.
const NoDateLabel = "—"

// StartOfDay drops the time-of-day component of t, keeping its location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return StartOfDay(a).Equal(StartOfDay(b))
}

// AddMonths moves t by n calendar months. The day of month is clamped to the
// last day of the target month instead of overflowing into the next one.
func AddMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m, 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	target := first.AddDate(0, n, 0)
	last := time.Date(target.Year(), target.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
	if d > last {
		d = last
	}
	return target.AddDate(0, 0, d-1)
}

// FormatMonth renders t with the label format, or NoDateLabel when t is nil.
func FormatMonth(t *time.Time, f LabelFormat) string {
	if t == nil {
		return NoDateLabel
	}
	return t.Format(f.Layout())
}

// FormatDate renders t as YYYY-MM-DD, or the empty string when t is nil.
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateLayout)
}

// DayOf returns the calendar day of t, read in t's own location, as midnight
// UTC. Parsed dates are wall-clock values in UTC, so "today" must be too.
func DayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
