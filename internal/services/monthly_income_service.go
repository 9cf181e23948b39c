package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"cofre/internal/dates"
	apperrors "cofre/internal/errors"
	"cofre/internal/models"
)

// monthlyIncomeService handles the income a user declares for a month.
type monthlyIncomeService struct {
	db *gorm.DB
}

// NewMonthlyIncomeService creates a new MonthlyIncomeServicer.
func NewMonthlyIncomeService(db *gorm.DB) MonthlyIncomeServicer {
	return &monthlyIncomeService{db: db}
}

// UpsertMonthlyIncome sets the declared income for period.
func (s *monthlyIncomeService) UpsertMonthlyIncome(ctx context.Context, userID string, period dates.Period, amount int64, description string) (*models.MonthlyIncome, error) {
	if err := validPeriod(period); err != nil {
		return nil, err
	}
	if amount < 0 {
		return nil, invalid("amount cannot be negative")
	}

	row := &models.MonthlyIncome{
		UserID:      userID,
		Year:        period.Year,
		Month:       int(period.Month),
		Amount:      amount,
		Description: strings.TrimSpace(description),
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   periodConflict,
		DoUpdates: clause.AssignmentColumns([]string{"amount", "description", "updated_at", "deleted_at"}),
	}).Create(row).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var saved models.MonthlyIncome
	if err := s.forPeriod(ctx, userID, period).First(&saved).Error; err != nil {
		return nil, recordError(err, apperrors.ErrMonthlyIncomeNotFound)
	}
	return &saved, nil
}

// GetMonthlyIncome returns the declared income for period, or a zero amount
// when nothing was declared.
func (s *monthlyIncomeService) GetMonthlyIncome(ctx context.Context, userID string, period dates.Period) (*models.MonthlyIncome, error) {
	if err := validPeriod(period); err != nil {
		return nil, err
	}
	var row models.MonthlyIncome
	err := s.forPeriod(ctx, userID, period).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.MonthlyIncome{UserID: userID, Year: period.Year, Month: int(period.Month)}, nil
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &row, nil
}

// ListMonthlyIncomes returns the declarations of one year in month order.
func (s *monthlyIncomeService) ListMonthlyIncomes(ctx context.Context, userID string, year int) ([]models.MonthlyIncome, error) {
	if year < 1 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidPeriod, "year must be positive")
	}
	rows := []models.MonthlyIncome{}
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND year = ?", userID, year).
		Order("month ASC").
		Find(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return rows, nil
}

func (s *monthlyIncomeService) forPeriod(ctx context.Context, userID string, period dates.Period) *gorm.DB {
	return s.db.WithContext(ctx).
		Where("user_id = ? AND year = ? AND month = ?", userID, period.Year, int(period.Month))
}
