package services

import (
	"context"
	"testing"
	"time"

	"cofre/internal/dates"
	"cofre/internal/events"
	"cofre/internal/ledger"
	"cofre/internal/pagination"
	"cofre/internal/testutil"
)

func TestCreateIncome(t *testing.T) {
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewIncomeService(db)
		user := testutil.CreateTestUser(t, db)

		inc, err := svc.CreateIncome(ctx, user.ID, IncomeDraft{
			Date:        time.Date(2024, 4, 5, 15, 30, 0, 0, time.UTC),
			Description: " Salary ",
			Amount:      650000,
			IncomeType:  "fixed",
			Recurring:   true,
		})
		testutil.AssertNoError(t, err)

		if inc.ID == "" {
			t.Fatal("expected an ID")
		}
		if inc.Description != "Salary" {
			t.Errorf("expected trimmed description, got %q", inc.Description)
		}
		if !inc.Date.Equal(testutil.Day(2024, 4, 5)) {
			t.Errorf("expected date normalized to the day, got %s", inc.Date)
		}
		if !inc.Recurring || !inc.IsRoot() {
			t.Error("expected a recurring root")
		}
	})

	t.Run("missing_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewIncomeService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateIncome(ctx, user.ID, IncomeDraft{Description: "x", Amount: 1})
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = svc.CreateIncome(ctx, user.ID, IncomeDraft{Date: testutil.Day(2024, 1, 1), Description: "x", Amount: -5})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestIncomeLifecycle(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewIncomeService(db)
	user := testutil.CreateTestUser(t, db)
	other := testutil.CreateTestUser(t, db)

	salary := testutil.CreateTestIncome(t, db, user.ID, testutil.Day(2024, 4, 5), 500000, true)
	testutil.CreateTestIncome(t, db, user.ID, testutil.Day(2024, 4, 18), 30000, false)
	testutil.CreateTestIncome(t, db, user.ID, testutil.Day(2024, 5, 5), 500000, false)

	t.Run("list_by_period", func(t *testing.T) {
		april := dates.Period{Year: 2024, Month: time.April}
		resp, err := svc.ListIncomes(ctx, user.ID, ledger.Filter{Period: &april}, pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if resp.TotalItems != 2 {
			t.Errorf("expected 2 april incomes, got %d", resp.TotalItems)
		}
	})

	t.Run("summary", func(t *testing.T) {
		sum, err := svc.SummarizeIncomes(ctx, user.ID, dates.Period{Year: 2024, Month: time.April})
		testutil.AssertNoError(t, err)
		if sum.Total != 530000 || sum.Count != 2 || sum.Recurring != 500000 {
			t.Errorf("unexpected summary: %+v", sum)
		}
	})

	t.Run("other_user_cannot_read", func(t *testing.T) {
		_, err := svc.GetIncome(ctx, other.ID, salary.ID)
		testutil.AssertAppError(t, err, "INCOME_NOT_FOUND")
	})

	t.Run("update", func(t *testing.T) {
		amount := int64(520000)
		got, err := svc.UpdateIncome(ctx, user.ID, salary.ID, IncomeUpdate{Amount: &amount})
		testutil.AssertNoError(t, err)
		if got.Amount != 520000 {
			t.Errorf("expected 520000, got %d", got.Amount)
		}
	})

	t.Run("delete", func(t *testing.T) {
		removed, err := svc.DeleteIncome(ctx, user.ID, salary.ID)
		testutil.AssertNoError(t, err)
		if removed != 1 {
			t.Errorf("expected 1 removed, got %d", removed)
		}
		_, err = svc.GetIncome(ctx, user.ID, salary.ID)
		testutil.AssertAppError(t, err, "INCOME_NOT_FOUND")
	})
}

func TestUpdateIncome_DateTakenByOccurrence(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewIncomeService(db)
	user := testutil.CreateTestUser(t, db)
	root := testutil.CreateTestIncome(t, db, user.ID, testutil.Day(2024, 1, 5), 5000, true)

	rec := newRecurrenceService(db, events.Nop{}, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))
	for _, month := range []int{2, 3} {
		p := dates.Period{Year: 2024, Month: time.Month(month)}
		_, err := rec.Advance(ctx, user.ID, &p)
		testutil.AssertNoError(t, err)
	}

	occ, err := ledger.Incomes(db).Find(ctx, user.ID, ledger.Filter{GroupID: root.ID, Ascending: true})
	testutil.AssertNoError(t, err)
	if len(occ) != 2 {
		t.Fatalf("expected 2 occurrences, got %d", len(occ))
	}

	_, err = svc.UpdateIncome(ctx, user.ID, occ[0].ID, IncomeUpdate{Date: &occ[1].Date})
	testutil.AssertAppError(t, err, "DUPLICATE_OCCURRENCE")
}
