// Package datetime provides date and time utility functions.
package datetime

import (
	"time"

	"immo-analyzer/pkg/constants"
)

const (
	// MonthLayout is the month-granularity format used in config files and
	// reference tables (e.g. "2024-03").
	MonthLayout = constants.MonthLayout
)

// MustParseTime parses a date string using the given layout and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseTime(layout, dateStr string) time.Time {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// OffsetDate returns the string-formatted date offset by the given number of
// months relative to the given date.
func OffsetDate(date, layout string, months int) (string, error) {
	t, err := time.Parse(layout, date)
	if err != nil {
		return date, err
	}
	return t.AddDate(0, months, 0).Format(layout), nil
}

// DateBeforeDate returns true if firstDate is strictly before secondDate.
func DateBeforeDate(firstDate string, secondDate string) (bool, error) {
	firstDateT, err := time.Parse(MonthLayout, firstDate)
	if err != nil {
		return false, err
	}
	secondDateT, err := time.Parse(MonthLayout, secondDate)
	if err != nil {
		return false, err
	}
	return firstDateT.Before(secondDateT), nil
}

// WithinWindow reports whether date falls inside [windowStart, windowEnd],
// inclusive on both ends. All three dates use MonthLayout.
func WithinWindow(date, windowStart, windowEnd string) (bool, error) {
	beforeStart, err := DateBeforeDate(date, windowStart)
	if err != nil {
		return false, err
	}
	afterEnd, err := DateBeforeDate(windowEnd, date)
	if err != nil {
		return false, err
	}
	return !beforeStart && !afterEnd, nil
}
