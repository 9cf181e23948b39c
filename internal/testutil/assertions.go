package testutil

import (
	"errors"
	"testing"
	"time"

	apperrors "cofre/internal/errors"
	"cofre/internal/money"
)

// AssertAppError fails unless err carries an *AppError with code.
func AssertAppError(t *testing.T, err error, code string) {
	t.Helper()

	var appErr *apperrors.AppError
	switch {
	case err == nil:
		t.Fatalf("expected %s, got nil", code)
	case !errors.As(err, &appErr):
		t.Fatalf("expected %s, got %T: %v", code, err, err)
	case appErr.Code != code:
		t.Errorf("expected %s, got %s (%s)", code, appErr.Code, appErr.Message)
	}
}

// AssertNoError stops the test on any error.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertDay compares ledger dates by calendar day.
func AssertDay(t *testing.T, got time.Time, year int, month time.Month, day int) {
	t.Helper()
	if want := Day(year, month, day); !got.Equal(want) {
		t.Errorf("expected date %s, got %s", want.Format(time.DateOnly), got.Format(time.DateOnly))
	}
}

// AssertCents compares amounts and reports them as currency.
func AssertCents(t *testing.T, got, want int64) {
	t.Helper()
	if got != want {
		t.Errorf("expected %s, got %s", money.Format(want), money.Format(got))
	}
}
