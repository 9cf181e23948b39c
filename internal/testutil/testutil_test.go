package testutil_test

import (
	"testing"

	"cofre/internal/errors"
	"cofre/internal/models"
	"cofre/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	var count int64
	for _, table := range []string{"users", "expenses", "incomes", "goals", "monthly_reflections", "monthly_incomes", "audit_logs"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestSetupTestDB_Isolated(t *testing.T) {
	first := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, first)
	second := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, second)

	testutil.CreateTestUser(t, first)

	var count int64
	second.Model(&models.User{}).Count(&count)
	if count != 0 {
		t.Errorf("expected isolated database, found %d users", count)
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	user := testutil.CreateTestUser(t, db)
	if user.ID == "" {
		t.Fatal("user should have an ID")
	}

	admin := testutil.CreateTestAdmin(t, db)
	if !admin.IsAdmin() {
		t.Error("expected admin role")
	}

	expense := testutil.CreateTestExpense(t, db, user.ID, testutil.Day(2024, 1, 15), 5000)
	if expense.Amount != 5000 || expense.Installments != 1 || expense.InstallmentNumber != 1 {
		t.Errorf("unexpected expense fixture: %+v", expense.Entry)
	}
	if !expense.IsRoot() {
		t.Error("fixture expense should be a root")
	}

	income := testutil.CreateTestIncome(t, db, user.ID, testutil.Day(2024, 1, 5), 300000, true)
	if !income.Recurring {
		t.Error("expected recurring income")
	}

	goal := testutil.CreateTestGoal(t, db, user.ID, 10000, 2500)
	if goal.TargetAmount != 10000 {
		t.Errorf("expected target 10000, got %d", goal.TargetAmount)
	}
}

func TestAssertAppError(t *testing.T) {
	err := errors.WithMessage(errors.ErrExpenseNotFound, "custom message")
	testutil.AssertAppError(t, err, "EXPENSE_NOT_FOUND")
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}
