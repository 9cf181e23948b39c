package services

import (
	"context"
	"testing"
	"time"

	"cofre/internal/dates"
	"cofre/internal/testutil"
)

func TestMonthlyIncome(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewMonthlyIncomeService(db)
	user := testutil.CreateTestUser(t, db)
	may := dates.Period{Year: 2024, Month: time.May}

	t.Run("absent_is_zero", func(t *testing.T) {
		mi, err := svc.GetMonthlyIncome(ctx, user.ID, may)
		testutil.AssertNoError(t, err)
		if mi.Amount != 0 || mi.ID != "" || mi.Month != 5 {
			t.Errorf("expected empty declaration for may, got %+v", mi)
		}
	})

	t.Run("upsert", func(t *testing.T) {
		first, err := svc.UpsertMonthlyIncome(ctx, user.ID, may, 450000, "salary")
		testutil.AssertNoError(t, err)
		second, err := svc.UpsertMonthlyIncome(ctx, user.ID, may, 480000, "salary + bonus")
		testutil.AssertNoError(t, err)

		if first.ID != second.ID {
			t.Errorf("expected the same row, got %s and %s", first.ID, second.ID)
		}
		got, err := svc.GetMonthlyIncome(ctx, user.ID, may)
		testutil.AssertNoError(t, err)
		if got.Amount != 480000 || got.Description != "salary + bonus" {
			t.Errorf("unexpected declaration: %+v", got)
		}
	})

	t.Run("negative_amount", func(t *testing.T) {
		_, err := svc.UpsertMonthlyIncome(ctx, user.ID, may, -1, "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("list_year", func(t *testing.T) {
		_, err := svc.UpsertMonthlyIncome(ctx, user.ID, dates.Period{Year: 2024, Month: time.January}, 100, "")
		testutil.AssertNoError(t, err)
		_, err = svc.UpsertMonthlyIncome(ctx, user.ID, dates.Period{Year: 2023, Month: time.December}, 100, "")
		testutil.AssertNoError(t, err)

		rows, err := svc.ListMonthlyIncomes(ctx, user.ID, 2024)
		testutil.AssertNoError(t, err)
		if len(rows) != 2 || rows[0].Month != 1 || rows[1].Month != 5 {
			t.Errorf("unexpected 2024 declarations: %+v", rows)
		}
	})
}
