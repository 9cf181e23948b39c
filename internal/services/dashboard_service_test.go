package services

import (
	"context"
	"testing"
	"time"

	"cofre/internal/dates"
	"cofre/internal/models"
	"cofre/internal/report"
	"cofre/internal/testutil"
)

func TestDashboard(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewDashboardService(db)
	user := testutil.CreateTestUser(t, db)
	march := dates.Period{Year: 2024, Month: time.March}

	testutil.CreateTestExpense(t, db, user.ID, testutil.Day(2024, 3, 2), 30000)
	card := testutil.CreateTestRecurringExpense(t, db, user.ID, testutil.Day(2024, 3, 10), 20000)
	testutil.CreateTestExpense(t, db, user.ID, testutil.Day(2024, 4, 1), 99999)

	t.Run("summary", func(t *testing.T) {
		sum, err := svc.SummarizePeriod(ctx, user.ID, march)
		testutil.AssertNoError(t, err)
		if sum.Count != 2 || sum.Total != 50000 {
			t.Fatalf("unexpected totals: %+v", sum)
		}
		if sum.CardTotal != card.Amount {
			t.Errorf("expected card total %d, got %d", card.Amount, sum.CardTotal)
		}
		if len(sum.ByCategory) != 2 {
			t.Errorf("expected 2 categories, got %d", len(sum.ByCategory))
		}
	})

	t.Run("health_without_income", func(t *testing.T) {
		h, err := svc.Health(ctx, user.ID, march)
		testutil.AssertNoError(t, err)
		if h.Status != report.HealthNoData {
			t.Errorf("expected no_data, got %s", h.Status)
		}
	})

	t.Run("health_falls_back_to_declared_income", func(t *testing.T) {
		testutil.AssertNoError(t, db.Create(&models.MonthlyIncome{
			UserID: user.ID, Year: 2024, Month: 3, Amount: 100000,
		}).Error)

		h, err := svc.Health(ctx, user.ID, march)
		testutil.AssertNoError(t, err)
		if h.Income != 100000 || h.Status != report.HealthExcellent {
			t.Errorf("expected excellent on declared income, got %+v", h)
		}
	})

	t.Run("health_prefers_recorded_income", func(t *testing.T) {
		testutil.CreateTestIncome(t, db, user.ID, testutil.Day(2024, 3, 5), 52000, false)

		h, err := svc.Health(ctx, user.ID, march)
		testutil.AssertNoError(t, err)
		if h.Income != 52000 || h.Status != report.HealthGood {
			t.Errorf("expected good on recorded income, got %+v", h)
		}
	})

	t.Run("indicators", func(t *testing.T) {
		ind, err := svc.Indicators(ctx, user.ID, march)
		testutil.AssertNoError(t, err)
		if ind.Income != 52000 || ind.Expenses != 50000 || ind.Balance != 2000 || !ind.Positive {
			t.Errorf("unexpected indicators: %+v", ind)
		}
	})

	t.Run("annual", func(t *testing.T) {
		ov, err := svc.Annual(ctx, user.ID, 2024)
		testutil.AssertNoError(t, err)
		if len(ov.Months) != 12 {
			t.Fatalf("expected 12 months, got %d", len(ov.Months))
		}
		if ov.Months[2].Expenses != 50000 || ov.Months[3].Expenses != 99999 {
			t.Errorf("unexpected monthly expenses: %+v", ov.Months[2:4])
		}
		if ov.TotalIncome != 52000 || ov.TotalExpenses != 149999 {
			t.Errorf("unexpected year totals: %+v", ov)
		}
	})

	t.Run("invalid_period", func(t *testing.T) {
		_, err := svc.SummarizePeriod(ctx, user.ID, dates.Period{Year: 2024, Month: 0})
		testutil.AssertAppError(t, err, "INVALID_PERIOD")
	})
}
