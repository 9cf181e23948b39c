// Package errors defines the AppError type returned by every service.
// Handlers render the code and message; the internal cause is only logged.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication & authorization errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password", StatusCode: http.StatusUnauthorized}
	ErrForbidden          = &AppError{Code: "FORBIDDEN", Message: "Access denied", StatusCode: http.StatusForbidden}
	ErrAccountLocked      = &AppError{Code: "ACCOUNT_LOCKED", Message: "Account is temporarily locked", StatusCode: http.StatusLocked}
	ErrAccountDisabled    = &AppError{Code: "ACCOUNT_DISABLED", Message: "Account is disabled", StatusCode: http.StatusForbidden}
	ErrInvalidResetToken  = &AppError{Code: "INVALID_RESET_TOKEN", Message: "Password reset token is invalid or expired", StatusCode: http.StatusBadRequest}
)

// Scheduler errors.
var (
	ErrPipelineNotConfigured = &AppError{Code: "PIPELINE_NOT_CONFIGURED", Message: "Pipeline endpoints are not configured", StatusCode: http.StatusServiceUnavailable}
	ErrInvalidAPIKey         = &AppError{Code: "INVALID_API_KEY", Message: "Invalid or missing API key", StatusCode: http.StatusUnauthorized}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// User errors.
var (
	ErrUserNotFound   = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateEmail = &AppError{Code: "DUPLICATE_EMAIL", Message: "A user with this email already exists", StatusCode: http.StatusConflict}
	ErrSelfAction     = &AppError{Code: "SELF_ACTION_FORBIDDEN", Message: "Administrators cannot perform this action on their own account", StatusCode: http.StatusBadRequest}
)

// Ledger errors.
var (
	ErrExpenseNotFound     = &AppError{Code: "EXPENSE_NOT_FOUND", Message: "Expense not found", StatusCode: http.StatusNotFound}
	ErrIncomeNotFound      = &AppError{Code: "INCOME_NOT_FOUND", Message: "Income not found", StatusCode: http.StatusNotFound}
	ErrRecurringNotFound   = &AppError{Code: "RECURRING_NOT_FOUND", Message: "Recurring entry not found", StatusCode: http.StatusNotFound}
	ErrInvalidInstallments = &AppError{Code: "INVALID_INSTALLMENTS", Message: "Installment count must be at least 1", StatusCode: http.StatusBadRequest}
	ErrInvalidPeriod       = &AppError{Code: "INVALID_PERIOD", Message: "Month must be 1-12 and year positive", StatusCode: http.StatusBadRequest}
	ErrDuplicateOccurrence = &AppError{Code: "DUPLICATE_OCCURRENCE", Message: "The group already has an entry on this date", StatusCode: http.StatusConflict}
)

// Planning errors.
var (
	ErrGoalNotFound          = &AppError{Code: "GOAL_NOT_FOUND", Message: "Goal not found", StatusCode: http.StatusNotFound}
	ErrReflectionNotFound    = &AppError{Code: "REFLECTION_NOT_FOUND", Message: "Monthly reflection not found", StatusCode: http.StatusNotFound}
	ErrMonthlyIncomeNotFound = &AppError{Code: "MONTHLY_INCOME_NOT_FOUND", Message: "Monthly income not found", StatusCode: http.StatusNotFound}
)
