package report

import (
	"cofre/internal/dates"
	"cofre/internal/money"
)

// HealthStatus is a coarse rating of a month's balance.
type HealthStatus string

const (
	HealthNoData    HealthStatus = "no_data"
	HealthExcellent HealthStatus = "excellent"
	HealthGood      HealthStatus = "good"
	HealthAttention HealthStatus = "attention"
	HealthCritical  HealthStatus = "critical"
)

// Health rates income against expenses for one month.
type Health struct {
	Period       dates.Period `json:"period"`
	Status       HealthStatus `json:"status"`
	Color        string       `json:"color"`
	Message      string       `json:"message"`
	Income       int64        `json:"income"`
	Expenses     int64        `json:"expenses"`
	Balance      int64        `json:"balance"`
	SpentPercent float64      `json:"spent_percent"`
}

// AssessHealth bands the balance as a share of income: above 20% is
// excellent, any surplus is good, a deficit up to 10% needs attention and
// anything deeper is critical. Zero income yields no_data.
func AssessHealth(period dates.Period, income, expenses int64) Health {
	h := Health{
		Period:       period,
		Income:       income,
		Expenses:     expenses,
		Balance:      income - expenses,
		SpentPercent: money.Round(money.Percent(expenses, income), 1),
	}

	switch {
	case income <= 0:
		h.Status, h.Color, h.Message = HealthNoData, "gray", "Register your income to see your financial health"
	case h.Balance*10 > income*2:
		h.Status, h.Color, h.Message = HealthExcellent, "green", "You are saving more than 20% of your income"
	case h.Balance > 0:
		h.Status, h.Color, h.Message = HealthGood, "lightgreen", "You are spending less than you earn"
	case h.Balance*10 >= -income:
		h.Status, h.Color, h.Message = HealthAttention, "yellow", "Your expenses are close to or slightly above your income"
	default:
		h.Status, h.Color, h.Message = HealthCritical, "red", "Your expenses are well above your income"
	}
	return h
}

// Indicators are the headline numbers of one month.
type Indicators struct {
	Period       dates.Period `json:"period"`
	Income       int64        `json:"income"`
	Expenses     int64        `json:"expenses"`
	Balance      int64        `json:"balance"`
	Positive     bool         `json:"positive"`
	IncomeText   string       `json:"income_text"`
	ExpensesText string       `json:"expenses_text"`
	BalanceText  string       `json:"balance_text"`
}

// MonthlyIndicators computes the month's balance and its display strings.
func MonthlyIndicators(period dates.Period, income, expenses int64) Indicators {
	balance := income - expenses
	return Indicators{
		Period:       period,
		Income:       income,
		Expenses:     expenses,
		Balance:      balance,
		Positive:     balance >= 0,
		IncomeText:   money.Format(income),
		ExpensesText: money.Format(expenses),
		BalanceText:  money.Format(balance),
	}
}
