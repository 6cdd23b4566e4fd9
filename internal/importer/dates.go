package importer

import (
	"math"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// dateLayouts are tried in order. Month-first numeric forms come before
// day-first ones, so "03/04/2025" is March 4 and "15/04/2025" is April 15.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-1-2",
	"2006/1/2",
	"2006/1/2 15:04:05",
	"2006.1.2",
	"1/2/2006",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"1/2/06",
	"2/1/2006",
	"2/1/2006 15:04:05",
	"2/1/06",
	"1-2-2006",
	"2-1-2006",
	"2.1.2006",
	"20060102",
	"2-Jan-2006",
	"2-Jan-06",
	"2 Jan 2006",
	"2 January 2006",
	"2-January-2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	"January 2, 2006",
	"January 2 2006",
	"Mon, 2 Jan 2006",
	"Monday, January 2, 2006",
}

// Excel's 1900 date system covers serials 1 (1900-01-01) to 2958465
// (9999-12-31).
const (
	minExcelSerial = 1
	maxExcelSerial = 2958465
)

// ParseCell coerces a raw cell into a date. It never fails: anything that
// cannot be read as a date yields nil.
func ParseCell(v any) *time.Time {
	switch val := v.(type) {
	case nil:
		return nil
	case time.Time:
		if val.IsZero() {
			return nil
		}
		t := asWallClock(val)
		return &t
	case *time.Time:
		if val == nil {
			return nil
		}
		return ParseCell(*val)
	case string:
		return parseDateString(val)
	case float64:
		return parseSerial(val)
	case float32:
		return parseSerial(float64(val))
	case int:
		return parseSerial(float64(val))
	case int64:
		return parseSerial(float64(val))
	}
	return nil
}

func parseDateString(raw string) *time.Time {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = asWallClock(t)
			return &t
		}
	}
	return nil
}

func parseSerial(f float64) *time.Time {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < minExcelSerial || f > maxExcelSerial {
		return nil
	}
	t, err := excelize.ExcelDateToTime(f, false)
	if err != nil {
		return nil
	}
	t = asWallClock(t)
	return &t
}

// asWallClock keeps the wall-clock reading of t and expresses it in UTC, so
// every date in a table compares on the same footing.
func asWallClock(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}
