// Package period turns the month and date strings used at the command boundary into
// inclusive time windows.
package period

import (
	"fmt"
	"time"
)

const (
	// MonthLayout is the "YYYY-MM" month format.
	MonthLayout = "2006-01"
	// DateLayout is the "YYYY-MM-DD" date format.
	DateLayout = "2006-01-02"
)

// MonthRange returns the inclusive window [first day 00:00:00, last day 23:59:59] of
// a "YYYY-MM" month in UTC.
func MonthRange(month string) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation(MonthLayout, month, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid month %q, expected YYYY-MM: %w", month, err)
	}
	end := start.AddDate(0, 1, 0).Add(-time.Second)
	return start, end, nil
}

// MonthOf returns the "YYYY-MM" month containing t.
func MonthOf(t time.Time) string {
	return t.UTC().Format(MonthLayout)
}

// DayRange returns the inclusive window covering the whole of the given "YYYY-MM-DD" dates.
func DayRange(from, to string) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation(DateLayout, from, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start date %q, expected YYYY-MM-DD: %w", from, err)
	}
	end, err := EndOfDay(to)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("start date %s is after end date %s", from, to)
	}
	return start, end, nil
}

// EndOfDay returns the last second of a "YYYY-MM-DD" date in UTC.
func EndOfDay(date string) (time.Time, error) {
	day, err := time.ParseInLocation(DateLayout, date, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", date, err)
	}
	return day.AddDate(0, 0, 1).Add(-time.Second), nil
}
