// Package dates holds the calendar arithmetic shared by the ledger engine:
// month projection with end-of-month clamping and calendar-month periods.
package dates

import (
	"fmt"
	"strings"
	"time"
)

// DayLayout is the wire format for calendar days.
const DayLayout = "2006-01-02"

// PeriodLayout is the wire format for calendar months.
const PeriodLayout = "2006-01"

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	// Day 0 of the following month normalizes to the last day of month.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Project adds offset whole calendar months to base. The day-of-month is kept
// unless the target month is shorter, in which case the target month's last
// day is used. Years roll over in both directions; time of day and location
// are preserved.
func Project(base time.Time, offset int) time.Time {
	if offset == 0 {
		return base
	}

	total := int(base.Month()) - 1 + offset
	year := base.Year() + floorDiv(total, 12)
	month := time.Month(floorMod(total, 12) + 1)

	day := base.Day()
	if last := DaysIn(year, month); day > last {
		day = last
	}

	return time.Date(year, month, day,
		base.Hour(), base.Minute(), base.Second(), base.Nanosecond(), base.Location())
}

// Day truncates t to midnight UTC of its calendar day.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDay accepts "2006-01-02" or an RFC 3339 timestamp and returns the
// calendar day at midnight UTC.
func ParseDay(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DayLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return Day(t), nil
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}
