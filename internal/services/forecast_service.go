package services

import (
	"context"
	"sort"
	"time"

	"gorm.io/gorm"

	"cofre/internal/dates"
	apperrors "cofre/internal/errors"
	"cofre/internal/ledger"
	"cofre/internal/models"
)

const (
	DefaultForecastMonths = 3
	MaxForecastMonths     = 12
)

// forecastService projects upcoming ledger activity.
type forecastService struct {
	expenses *ledger.Store[models.Expense, *models.Expense]
	incomes  *ledger.Store[models.Income, *models.Income]
	now      func() time.Time
}

// NewForecastService creates a new ForecastServicer.
func NewForecastService(db *gorm.DB) ForecastServicer {
	return &forecastService{
		expenses: ledger.Expenses(db),
		incomes:  ledger.Incomes(db),
		now:      time.Now,
	}
}

// Upcoming lists what is expected from tomorrow until the end of the month
// that lies months ahead: expenses and incomes already recorded for those
// days, plus the monthly occurrences of recurring roots not generated yet.
func (s *forecastService) Upcoming(ctx context.Context, userID string, months int) (*Forecast, error) {
	if months == 0 {
		months = DefaultForecastMonths
	}
	if months < 1 || months > MaxForecastMonths {
		return nil, invalid("months must be between 1 and 12")
	}

	today := dates.Day(s.now())
	first := dates.PeriodOf(today)
	last := first.AddMonths(months)
	to := last.End().AddDate(0, 0, -1)

	fc := &Forecast{From: today.AddDate(0, 0, 1), To: to, Items: []ForecastItem{}}

	w := window{today: today, first: first, months: months, to: to}
	for _, items := range []func() ([]ForecastItem, error){
		func() ([]ForecastItem, error) { return recorded(ctx, s.expenses, userID, KindExpense, w) },
		func() ([]ForecastItem, error) { return recorded(ctx, s.incomes, userID, KindIncome, w) },
		func() ([]ForecastItem, error) { return project(ctx, s.expenses, userID, KindExpense, w) },
		func() ([]ForecastItem, error) { return project(ctx, s.incomes, userID, KindIncome, w) },
	} {
		found, err := items()
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		fc.Items = append(fc.Items, found...)
	}

	sort.SliceStable(fc.Items, func(i, j int) bool {
		return fc.Items[i].Date.Before(fc.Items[j].Date)
	})
	for _, it := range fc.Items {
		if it.Kind == KindIncome {
			fc.IncomeTotal += it.Amount
		} else {
			fc.ExpenseTotal += it.Amount
		}
	}
	fc.Balance = fc.IncomeTotal - fc.ExpenseTotal
	return fc, nil
}

type window struct {
	today  time.Time
	first  dates.Period
	months int
	to     time.Time
}

// recorded returns the rows already stored between tomorrow and the window end.
func recorded[T any, P ledger.Row[T]](ctx context.Context, store *ledger.Store[T, P], userID string, kind LedgerKind, w window) ([]ForecastItem, error) {
	rows, err := store.Find(ctx, userID, ledger.Filter{After: &w.today, To: &w.to, Ascending: true})
	if err != nil {
		return nil, err
	}
	items := make([]ForecastItem, 0, len(rows))
	for i := range rows {
		e := P(&rows[i]).LedgerEntry()
		items = append(items, ForecastItem{
			Kind:        kind,
			SourceID:    e.ID,
			Description: e.Description,
			Category:    e.Category,
			Amount:      e.Amount,
			Date:        e.Date,
		})
	}
	return items, nil
}

// project returns the occurrences each recurring root would produce in the
// window, leaving out months that already hold a generated row.
func project[T any, P ledger.Row[T]](ctx context.Context, store *ledger.Store[T, P], userID string, kind LedgerKind, w window) ([]ForecastItem, error) {
	roots, err := store.Find(ctx, userID, ledger.Filter{RecurringOnly: true, RootsOnly: true, Ascending: true})
	if err != nil {
		return nil, err
	}

	from := w.first.Start()
	var items []ForecastItem
	for i := range roots {
		root := P(&roots[i]).LedgerEntry()

		children, err := store.Find(ctx, userID, ledger.Filter{GroupID: root.ID, From: &from})
		if err != nil {
			return nil, err
		}
		generated := make(map[dates.Period]bool, len(children))
		for j := range children {
			generated[dates.PeriodOf(P(&children[j]).LedgerEntry().Date)] = true
		}

		origin := dates.PeriodOf(root.Date)
		for k := 0; k <= w.months; k++ {
			p := w.first.AddMonths(k)
			offset := p.MonthsSince(origin)
			if offset <= 0 || generated[p] {
				continue
			}
			date := dates.Project(root.Date, offset)
			if !date.After(w.today) {
				continue
			}
			items = append(items, ForecastItem{
				Kind:        kind,
				SourceID:    root.ID,
				Description: root.Description,
				Category:    root.Category,
				Amount:      root.Amount,
				Date:        date,
				Projected:   true,
			})
		}
	}
	return items, nil
}
