package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssessHealth(t *testing.T) {
	tests := []struct {
		name     string
		income   int64
		expenses int64
		want     HealthStatus
		color    string
	}{
		{"no_income", 0, 5000, HealthNoData, "gray"},
		{"saves_over_twenty_percent", 100000, 79000, HealthExcellent, "green"},
		{"exactly_twenty_percent_is_good", 100000, 80000, HealthGood, "lightgreen"},
		{"small_surplus", 100000, 99999, HealthGood, "lightgreen"},
		{"break_even_needs_attention", 100000, 100000, HealthAttention, "yellow"},
		{"deficit_at_ten_percent", 100000, 110000, HealthAttention, "yellow"},
		{"deep_deficit", 100000, 110001, HealthCritical, "red"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := AssessHealth(jan, tt.income, tt.expenses)
			assert.Equal(t, tt.want, h.Status)
			assert.Equal(t, tt.color, h.Color)
			assert.Equal(t, tt.income-tt.expenses, h.Balance)
			assert.NotEmpty(t, h.Message)
		})
	}
}

func TestAssessHealth_SpentPercent(t *testing.T) {
	assert.Equal(t, 79.0, AssessHealth(jan, 100000, 79000).SpentPercent)
	assert.Equal(t, 0.0, AssessHealth(jan, 0, 79000).SpentPercent)
}

func TestMonthlyIndicators(t *testing.T) {
	ind := MonthlyIndicators(jan, 100050, 150050)

	assert.Equal(t, int64(-50000), ind.Balance)
	assert.False(t, ind.Positive)
	assert.Equal(t, "R$ 1.000,50", ind.IncomeText)
	assert.Equal(t, "R$ -500,00", ind.BalanceText)

	assert.True(t, MonthlyIndicators(jan, 0, 0).Positive)
}

func TestAnnual(t *testing.T) {
	var incomes, expenses [12]int64
	incomes[0], expenses[0] = 500000, 300000
	incomes[11], expenses[11] = 0, 100000

	o := Annual(2024, incomes, expenses)

	require.Len(t, o.Months, 12)
	assert.Equal(t, "Jan", o.Months[0].Name)
	assert.Equal(t, "Dec", o.Months[11].Name)
	assert.Equal(t, int64(200000), o.Months[0].Balance)
	assert.Equal(t, int64(-100000), o.Months[11].Balance)
	assert.Equal(t, int64(500000), o.TotalIncome)
	assert.Equal(t, int64(400000), o.TotalExpenses)
	assert.Equal(t, int64(100000), o.Balance)
	assert.Equal(t, "R$ 1.000,00", o.BalanceText)
}
