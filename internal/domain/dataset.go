package domain

import "time"

// Dataset is an uploaded table kept in the local store so it can be viewed
// again without the original file.
type Dataset struct {
	ID         string
	Name       string
	SourcePath string
	Sheet      string
	Headers    []string
	RowCount   int
	Mapping    *ColumnMapping
	CreatedAt  time.Time
}

// DisplayID returns the first 8 characters of the ID.
func (d *Dataset) DisplayID() string {
	if len(d.ID) >= 8 {
		return d.ID[:8]
	}
	return d.ID
}
