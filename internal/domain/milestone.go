package domain

import (
	"math"
	"time"
)

// RawRow is one row of an uploaded table, keyed by cleaned header. Values are
// nil, string, float64 or time.Time.
type RawRow map[string]any

// Table is a parsed sheet: an ordered header list and its rows.
type Table struct {
	Sheet   string
	Headers []string
	Rows    []RawRow
}

// HasHeader reports whether name is one of the table's headers.
func (t *Table) HasHeader(name string) bool {
	for _, h := range t.Headers {
		if h == name {
			return true
		}
	}
	return false
}

// ColumnMapping names the headers holding each canonical milestone field.
// GroupColumn is empty when no group is selected.
type ColumnMapping struct {
	NameColumn        string
	ContractualColumn string
	ActualColumn      string
	GroupColumn       string
}

// HasGroup reports whether a group column is selected.
func (m ColumnMapping) HasGroup() bool {
	return m.GroupColumn != ""
}

// Entry is a milestone read from one row, before anything is derived from it.
type Entry struct {
	Row         int
	Name        string
	Contractual *time.Time
	Actual      *time.Time
	Group       *string
}

// Milestone is an Entry plus the fields derived for one timeline pass.
type Milestone struct {
	Entry

	Status                Status
	ContractualMonthIndex *int
	ActualMonthIndex      *int
	ContractualLabel      string
	ActualLabel           string
}

// DeltaDays returns actual minus contractual in whole calendar days. The
// second result is false when either date is missing.
func (m *Milestone) DeltaDays() (int, bool) {
	if m.Contractual == nil || m.Actual == nil {
		return 0, false
	}
	c := StartOfDay(*m.Contractual)
	a := StartOfDay(*m.Actual)
	return int(math.Round(a.Sub(c).Hours() / 24)), true
}

// GroupLabel returns the group value, or UngroupedLabel when there is none.
func (m *Milestone) GroupLabel() string {
	if m.Group == nil {
		return UngroupedLabel
	}
	return *m.Group
}

// UngroupedLabel names the bucket for rows without a group value.
const UngroupedLabel = "(ungrouped)"
