package finance

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// The Indian financial year runs April 1 through March 31 and is labelled
// "2024-2025". March 31 belongs to the year ending that March; April 1 of the
// same calendar year opens the next one.

var yearLabelPattern = regexp.MustCompile(`^(\d{4})-(\d{4})$`)

// FinancialYearOf returns the label of the financial year containing t.
func FinancialYearOf(t time.Time) string {
	year := t.Year()
	if t.Month() >= time.April {
		return fmt.Sprintf("%d-%d", year, year+1)
	}
	return fmt.Sprintf("%d-%d", year-1, year)
}

// CurrentFinancialYear returns the label for the current date.
func CurrentFinancialYear() string {
	return FinancialYearOf(time.Now())
}

// ParseFinancialYear validates a "YYYY-YYYY" label and returns its starting
// calendar year.
func ParseFinancialYear(label string) (int, error) {
	m := yearLabelPattern.FindStringSubmatch(label)
	if m == nil {
		return 0, fmt.Errorf("invalid financial year %q, expected YYYY-YYYY", label)
	}
	start, _ := strconv.Atoi(m[1])
	end, _ := strconv.Atoi(m[2])
	if end != start+1 {
		return 0, fmt.Errorf("invalid financial year %q, years must be consecutive", label)
	}
	return start, nil
}

// FinancialYearBounds returns the [start, end) interval covered by a label.
func FinancialYearBounds(label string) (time.Time, time.Time, error) {
	start, err := ParseFinancialYear(label)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	from := time.Date(start, time.April, 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(1, 0, 0), nil
}
