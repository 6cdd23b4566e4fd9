package export

import (
	"encoding/csv"
	"fmt"
	"io"
)

// WriteCSV writes the table as comma-separated text with a header row.
func WriteCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Headers); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	if err := cw.WriteAll(t.Records); err != nil {
		return fmt.Errorf("writing csv rows: %w", err)
	}
	return nil
}
