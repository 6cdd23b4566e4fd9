package export

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/alexanderramin/milestones/internal/domain"
	"github.com/xuri/excelize/v2"
)

// FilteredSheet is the sheet name of a spreadsheet export.
const FilteredSheet = "Filtered"

// WriteXLSX writes the table to a single-sheet workbook. Date columns are
// written as date cells and month indices as numbers.
func WriteXLSX(w io.Writer, t Table) error {
	return writeWorkbook(w, FilteredSheet, t.Headers, typedRecords(t))
}

func typedRecords(t Table) [][]any {
	kinds := make([]func(string) any, len(t.Headers))
	for i, h := range t.Headers {
		switch h {
		case ColContractual, ColActual:
			kinds[i] = dateCell
		case ColContractualMonthIndex, ColActualMonthIndex:
			kinds[i] = intCell
		default:
			kinds[i] = textCell
		}
	}

	out := make([][]any, len(t.Records))
	for r, rec := range t.Records {
		row := make([]any, len(rec))
		for i, v := range rec {
			row[i] = kinds[i](v)
		}
		out[r] = row
	}
	return out
}

func textCell(s string) any { return s }

func dateCell(s string) any {
	if s == "" {
		return nil
	}
	d, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return s
	}
	return d
}

func intCell(s string) any {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return s
	}
	return n
}

func writeWorkbook(w io.Writer, sheet string, headers []string, rows [][]any) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	header := make([]any, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("writing header row: %w", err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}
