package importer

import (
	"fmt"

	"github.com/alexanderramin/milestones/internal/domain"
)

// ValidateMapping checks that every selected column exists in the headers.
// Returns a slice of all problems found.
func ValidateMapping(headers []string, m domain.ColumnMapping) []error {
	var errs []error

	known := make(map[string]bool, len(headers))
	for _, h := range headers {
		known[h] = true
	}

	required := []struct {
		field string
		value string
	}{
		{"name", m.NameColumn},
		{"contractual", m.ContractualColumn},
		{"actual", m.ActualColumn},
	}
	for _, r := range required {
		if r.value == "" {
			errs = append(errs, fmt.Errorf("%s column is required", r.field))
		} else if !known[r.value] {
			errs = append(errs, fmt.Errorf("%s column %q not found in table", r.field, r.value))
		}
	}

	if m.GroupColumn != "" && !known[m.GroupColumn] {
		errs = append(errs, fmt.Errorf("group column %q not found in table", m.GroupColumn))
	}

	return errs
}
