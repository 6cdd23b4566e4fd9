package testutil

import (
	"time"

	"github.com/alexanderramin/milestones/internal/domain"
	"github.com/google/uuid"
)

// Date returns midnight UTC on the given day.
func Date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DatePtr returns a pointer to Date(y, m, d).
func DatePtr(y int, m time.Month, d int) *time.Time {
	t := Date(y, m, d)
	return &t
}

// Str returns a pointer to s.
func Str(s string) *string { return &s }

// TemplateHeaders are the headers of the downloadable template.
var TemplateHeaders = []string{"Milestones", "Contractual", "Actual/ Anticipated", "Category"}

// TableOption customises a test table.
type TableOption func(*domain.Table)

// WithSheet sets the table's sheet name.
func WithSheet(name string) TableOption {
	return func(t *domain.Table) {
		t.Sheet = name
	}
}

// NewTestTable builds a table from string records. Empty strings become nil
// cells, as the readers produce.
func NewTestTable(headers []string, records [][]string, opts ...TableOption) *domain.Table {
	t := &domain.Table{Headers: append([]string(nil), headers...)}
	for _, rec := range records {
		row := make(domain.RawRow, len(headers))
		for i, h := range headers {
			if i < len(rec) && rec[i] != "" {
				row[h] = rec[i]
			} else {
				row[h] = nil
			}
		}
		t.Rows = append(t.Rows, row)
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NewTemplateTable returns the five-row example table.
func NewTemplateTable() *domain.Table {
	return NewTestTable(TemplateHeaders, [][]string{
		{"Notice to Proceed", "2025-01-15", "2025-01-15", "Project"},
		{"Boiler Hydrostatic Test", "2026-03-30", "", "Boiler"},
		{"Boiler Light-Up", "2026-07-15", "2026-07-20", "Boiler"},
		{"Synchronization", "2026-09-30", "", "Electrical"},
		{"COD", "2026-12-15", "", "Commercial"},
	}, WithSheet("Unit#1"))
}

// EntryOption customises a test entry.
type EntryOption func(*domain.Entry)

func WithContractual(d time.Time) EntryOption {
	return func(e *domain.Entry) {
		e.Contractual = &d
	}
}

func WithActual(d time.Time) EntryOption {
	return func(e *domain.Entry) {
		e.Actual = &d
	}
}

func WithGroup(g string) EntryOption {
	return func(e *domain.Entry) {
		e.Group = &g
	}
}

func NewTestEntry(row int, name string, opts ...EntryOption) domain.Entry {
	e := domain.Entry{Row: row, Name: name}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// NewTestDataset returns an unsaved dataset header for the given table.
func NewTestDataset(name string, t *domain.Table) *domain.Dataset {
	return &domain.Dataset{
		ID:         uuid.New().String(),
		Name:       name,
		SourcePath: name + ".csv",
		Sheet:      t.Sheet,
		Headers:    append([]string(nil), t.Headers...),
		CreatedAt:  time.Now().UTC().Truncate(time.Second),
	}
}
