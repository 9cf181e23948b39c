package dates

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidPeriod is returned for months outside 1..12 or non-positive years.
var ErrInvalidPeriod = errors.New("invalid period")

// Period identifies one calendar month.
type Period struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// NewPeriod builds a validated Period.
func NewPeriod(year, month int) (Period, error) {
	p := Period{Year: year, Month: time.Month(month)}
	if err := p.Validate(); err != nil {
		return Period{}, err
	}
	return p, nil
}

// PeriodOf returns the calendar month containing t.
func PeriodOf(t time.Time) Period {
	return Period{Year: t.Year(), Month: t.Month()}
}

// ParsePeriod parses "YYYY-MM".
func ParsePeriod(s string) (Period, error) {
	t, err := time.Parse(PeriodLayout, strings.TrimSpace(s))
	if err != nil {
		return Period{}, fmt.Errorf("%w: %q, expected YYYY-MM", ErrInvalidPeriod, s)
	}
	return PeriodOf(t), nil
}

// Validate checks the month range and year sign.
func (p Period) Validate() error {
	if p.Month < time.January || p.Month > time.December {
		return fmt.Errorf("%w: month %d", ErrInvalidPeriod, int(p.Month))
	}
	if p.Year < 1 {
		return fmt.Errorf("%w: year %d", ErrInvalidPeriod, p.Year)
	}
	return nil
}

// Start is midnight UTC of the first day of the month.
func (p Period) Start() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End is the exclusive upper bound, the start of the following month.
func (p Period) End() time.Time {
	return p.Next().Start()
}

// Contains reports whether t falls within the month.
func (p Period) Contains(t time.Time) bool {
	return PeriodOf(t) == p
}

// AddMonths shifts the period by n months, negative values go backwards.
func (p Period) AddMonths(n int) Period {
	return PeriodOf(Project(p.Start(), n))
}

// Next is the following calendar month.
func (p Period) Next() Period { return p.AddMonths(1) }

// Prev is the preceding calendar month.
func (p Period) Prev() Period { return p.AddMonths(-1) }

// MonthsSince returns how many months p is after other; negative when p is earlier.
func (p Period) MonthsSince(other Period) int {
	return (p.Year-other.Year)*12 + int(p.Month) - int(other.Month)
}

// DayOn returns the date in p that carries day, clamped to the month's length.
func (p Period) DayOn(day int) time.Time {
	if last := DaysIn(p.Year, p.Month); day > last {
		day = last
	}
	if day < 1 {
		day = 1
	}
	return time.Date(p.Year, p.Month, day, 0, 0, 0, 0, time.UTC)
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}
