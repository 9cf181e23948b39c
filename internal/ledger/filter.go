package ledger

import (
	"time"

	"gorm.io/gorm"

	"cofre/internal/dates"
)

// Filter narrows a query over one owner's rows. Zero fields do not filter.
type Filter struct {
	Period        *dates.Period
	Year          int
	From          *time.Time // inclusive
	To            *time.Time // inclusive
	After         *time.Time // exclusive
	Category      string
	RecurringOnly bool
	RootsOnly     bool
	Installments  bool // rows belonging to a group of two or more installments
	GroupID       string
	Ascending     bool
}

func (f Filter) apply(q *gorm.DB) *gorm.DB {
	if f.Period != nil {
		q = q.Where("date >= ? AND date < ?", f.Period.Start(), f.Period.End())
	}
	if f.Year > 0 {
		start := time.Date(f.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
		q = q.Where("date >= ? AND date < ?", start, start.AddDate(1, 0, 0))
	}
	if f.From != nil {
		q = q.Where("date >= ?", dates.Day(*f.From))
	}
	if f.To != nil {
		q = q.Where("date < ?", dates.Day(*f.To).AddDate(0, 0, 1))
	}
	if f.After != nil {
		q = q.Where("date > ?", dates.Day(*f.After))
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.RecurringOnly {
		q = q.Where("recurring = ?", true)
	}
	if f.RootsOnly {
		q = q.Where("group_id IS NULL")
	}
	if f.Installments {
		q = q.Where("installments > ?", 1)
	}
	if f.GroupID != "" {
		q = q.Where("group_id = ?", f.GroupID)
	}
	return q
}

func (f Filter) order() string {
	if f.Ascending {
		return "date ASC, created_at ASC, id ASC"
	}
	return "date DESC, created_at DESC, id DESC"
}

// Occurrence identifies a generated row for idempotency checks.
type Occurrence struct {
	Date        time.Time
	Description string
	Amount      int64
	GroupID     string
}
