package report

import (
	"time"

	"cofre/internal/money"
)

// MonthOverview is one month of an annual overview.
type MonthOverview struct {
	Month    int    `json:"month"`
	Name     string `json:"name"`
	Income   int64  `json:"income"`
	Expenses int64  `json:"expenses"`
	Balance  int64  `json:"balance"`
}

// AnnualOverview compares incomes and expenses across a year.
type AnnualOverview struct {
	Year              int             `json:"year"`
	Months            []MonthOverview `json:"months"`
	TotalIncome       int64           `json:"total_income"`
	TotalExpenses     int64           `json:"total_expenses"`
	Balance           int64           `json:"balance"`
	TotalIncomeText   string          `json:"total_income_text"`
	TotalExpensesText string          `json:"total_expenses_text"`
	BalanceText       string          `json:"balance_text"`
}

// Annual builds the overview from per-month totals, index 0 being January.
func Annual(year int, incomes, expenses [12]int64) AnnualOverview {
	o := AnnualOverview{Year: year, Months: make([]MonthOverview, 12)}
	for i := range o.Months {
		m := time.Month(i + 1)
		o.Months[i] = MonthOverview{
			Month:    i + 1,
			Name:     m.String()[:3],
			Income:   incomes[i],
			Expenses: expenses[i],
			Balance:  incomes[i] - expenses[i],
		}
		o.TotalIncome += incomes[i]
		o.TotalExpenses += expenses[i]
	}
	o.Balance = o.TotalIncome - o.TotalExpenses
	o.TotalIncomeText = money.Format(o.TotalIncome)
	o.TotalExpensesText = money.Format(o.TotalExpenses)
	o.BalanceText = money.Format(o.Balance)
	return o
}
