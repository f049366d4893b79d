package csvimport

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	IssueInvalidAmount = "Invalid amount"
	IssueInvalidDate   = "Invalid date"
)

var (
	errInvalidAmount = errors.New(IssueInvalidAmount)
	errInvalidDate   = errors.New(IssueInvalidDate)
)

// Slash dates are read day first; month-first is the fallback when the
// day-first reading is impossible (e.g. 12/25/2025).
var dateLayouts = []string{
	"2006-01-02",
	"2006-1-2",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"02/01/2006",
	"2/1/2006",
	"01/02/2006",
	"1/2/2006",
	"02.01.2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"02-Jan-2006",
	time.RFC1123,
}

// Cell returns the trimmed value at idx, or "" when the row is too short.
func Cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// ParseAmount strips thousands separators and requires a finite value > 0.
// amountScale matches the four decimal places amounts are stored with.
const amountScale = 1e4

// ParseAmount rejects amounts that are not positive once rounded to four
// decimal places.
func ParseAmount(raw string) (float64, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) || math.Round(value*amountScale) <= 0 {
		return 0, errInvalidAmount
	}
	return value, nil
}

func ParseDate(raw string) (time.Time, error) {
	value := strings.Join(strings.Fields(raw), " ")
	if value == "" {
		return time.Time{}, errInvalidDate
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errInvalidDate
}

// ValidateRow lists what is wrong with row under mapping; an empty list means
// the row is valid. Only mapped date and amount columns are checked.
func ValidateRow(row []string, mapping ColumnMapping) []string {
	issues := []string{}

	if idx, ok := mapping.Index(FieldAmount); ok {
		if _, err := ParseAmount(Cell(row, idx)); err != nil {
			issues = append(issues, IssueInvalidAmount)
		}
	}

	if idx, ok := mapping.Index(FieldDate); ok {
		if _, err := ParseDate(Cell(row, idx)); err != nil {
			issues = append(issues, IssueInvalidDate)
		}
	}

	return issues
}
