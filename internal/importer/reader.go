package importer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alexanderramin/milestones/internal/domain"
	"github.com/xuri/excelize/v2"
)

var (
	// ErrUnsupportedFormat is returned for files that are neither CSV nor
	// an Excel workbook.
	ErrUnsupportedFormat = errors.New("unsupported file type, upload an Excel workbook (.xlsx/.xlsm) or CSV")
	// ErrSheetNotFound is returned when a requested sheet is not in the workbook.
	ErrSheetNotFound = errors.New("sheet not found")
)

type fileKind int

const (
	kindUnknown fileKind = iota
	kindCSV
	kindWorkbook
)

func detectKind(path string) fileKind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return kindCSV
	case ".xlsx", ".xlsm":
		return kindWorkbook
	}
	return kindUnknown
}

// ReadFile parses the file at path into a Table. For workbooks an empty sheet
// selects the first sheet.
func ReadFile(path, sheet string) (*domain.Table, error) {
	kind := detectKind(path)
	if kind == kindUnknown {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), ErrUnsupportedFormat)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if kind == kindCSV {
		return ReadCSV(bytes.NewReader(data))
	}
	return ReadWorkbook(bytes.NewReader(data), sheet)
}

// ListSheets returns the sheet names of a workbook. CSV files have none.
func ListSheets(path string) ([]string, error) {
	switch detectKind(path) {
	case kindCSV:
		return nil, nil
	case kindWorkbook:
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, fmt.Errorf("opening workbook: %w", err)
		}
		defer f.Close()
		return f.GetSheetList(), nil
	}
	return nil, fmt.Errorf("%s: %w", filepath.Base(path), ErrUnsupportedFormat)
}

// ReadCSV parses comma-separated text. The first record is the header row.
func ReadCSV(r io.Reader) (*domain.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing csv: %w", err)
	}
	if len(records) == 0 {
		return &domain.Table{}, nil
	}
	records[0][0] = strings.TrimPrefix(records[0][0], "\ufeff")

	cells := make([][]any, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make([]any, len(rec))
		for i, v := range rec {
			row[i] = v
		}
		cells = append(cells, row)
	}
	return buildTable("", records[0], cells), nil
}

// ReadWorkbook parses one sheet of an xlsx workbook. Number cells become
// float64 so date cells keep their serial value for the date normalizer;
// string cells stay strings even when they look numeric.
func ReadWorkbook(r io.Reader, sheet string) (*domain.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return &domain.Table{}, nil
	}
	if sheet == "" {
		sheet = sheets[0]
	} else if !contains(sheets, sheet) {
		return nil, fmt.Errorf("%q (have %s): %w", sheet, strings.Join(sheets, ", "), ErrSheetNotFound)
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return &domain.Table{Sheet: sheet}, nil
	}

	cells := make([][]any, 0, len(rows)-1)
	for r, rec := range rows[1:] {
		row := make([]any, len(rec))
		for i, v := range rec {
			if v == "" {
				continue
			}
			ref, err := excelize.CoordinatesToCellName(i+1, r+2)
			if err != nil {
				return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
			}
			typ, err := f.GetCellType(sheet, ref)
			if err != nil {
				return nil, fmt.Errorf("reading cell %s!%s: %w", sheet, ref, err)
			}
			row[i] = workbookCell(typ, v)
		}
		cells = append(cells, row)
	}
	return buildTable(sheet, rows[0], cells), nil
}

// workbookCell keeps text cells verbatim; only untyped or number cells
// become float64, so "007" stays a name and 45306 stays a serial date.
func workbookCell(typ excelize.CellType, v string) any {
	if v == "" {
		return nil
	}
	if typ != excelize.CellTypeUnset && typ != excelize.CellTypeNumber {
		return v
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f
	}
	return v
}

func buildTable(sheet string, header []string, records [][]any) *domain.Table {
	width := len(header)
	for _, rec := range records {
		if len(rec) > width {
			width = len(rec)
		}
	}
	padded := make([]string, width)
	copy(padded, header)
	headers := CleanHeaders(padded)

	t := &domain.Table{Sheet: sheet, Headers: headers}
	for _, rec := range records {
		row := make(domain.RawRow, len(headers))
		empty := true
		for i, h := range headers {
			var v any
			if i < len(rec) {
				v = rec[i]
			}
			if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
				v = nil
			}
			if v != nil {
				empty = false
			}
			row[h] = v
		}
		if !empty {
			t.Rows = append(t.Rows, row)
		}
	}
	return t
}

// CleanHeaders trims headers, folds embedded newlines into spaces, names
// blank headers "Unnamed: N" and suffixes duplicates with ".1", ".2", ...
func CleanHeaders(raw []string) []string {
	out := make([]string, len(raw))
	taken := make(map[string]bool, len(raw))
	next := make(map[string]int)
	for i, h := range raw {
		h = strings.TrimSpace(strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(h))
		if h == "" {
			h = fmt.Sprintf("Unnamed: %d", i)
		}
		name := h
		for taken[name] {
			next[h]++
			name = fmt.Sprintf("%s.%d", h, next[h])
		}
		taken[name] = true
		out[i] = name
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
