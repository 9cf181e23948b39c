// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"cofre/internal/dates"
	"cofre/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterOn(v)
	}
}

// RegisterOn adds the custom tags to v.
func RegisterOn(v *validator.Validate) {
	_ = v.RegisterValidation("role", validateRole)
	_ = v.RegisterValidation("period", validatePeriod)
	_ = v.RegisterValidation("calendar_date", validateCalendarDate)
	_ = v.RegisterValidation("ledger_kind", validateLedgerKind)
}

func validateRole(fl validator.FieldLevel) bool {
	switch models.Role(fl.Field().String()) {
	case models.RoleUser, models.RoleAdmin:
		return true
	}
	return false
}

// validatePeriod accepts "YYYY-MM".
func validatePeriod(fl validator.FieldLevel) bool {
	_, err := dates.ParsePeriod(fl.Field().String())
	return err == nil
}

// validateCalendarDate accepts "YYYY-MM-DD" and full RFC 3339 timestamps.
func validateCalendarDate(fl validator.FieldLevel) bool {
	_, err := dates.ParseDay(fl.Field().String())
	return err == nil
}

func validateLedgerKind(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "expense", "income":
		return true
	}
	return false
}
