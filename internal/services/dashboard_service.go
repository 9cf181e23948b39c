package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"cofre/internal/dates"
	apperrors "cofre/internal/errors"
	"cofre/internal/ledger"
	"cofre/internal/models"
	"cofre/internal/report"
)

// dashboardService builds read-only reports over both ledgers.
type dashboardService struct {
	db       *gorm.DB
	expenses *ledger.Store[models.Expense, *models.Expense]
	incomes  *ledger.Store[models.Income, *models.Income]
}

// NewDashboardService creates a new DashboardServicer.
func NewDashboardService(db *gorm.DB) DashboardServicer {
	return &dashboardService{
		db:       db,
		expenses: ledger.Expenses(db),
		incomes:  ledger.Incomes(db),
	}
}

func validPeriod(p dates.Period) error {
	if err := p.Validate(); err != nil {
		return apperrors.Wrap(apperrors.ErrInvalidPeriod, err)
	}
	return nil
}

// SummarizePeriod breaks the month's expenses down by category, payment
// method and emotion, and raises spending alerts.
func (s *dashboardService) SummarizePeriod(ctx context.Context, userID string, period dates.Period) (*report.Summary, error) {
	if err := validPeriod(period); err != nil {
		return nil, err
	}
	rows, err := s.expenses.Find(ctx, userID, ledger.Filter{Period: &period, Ascending: true})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	summary := report.Summarize(rows, period)
	return &summary, nil
}

// Health compares the month's spending with its income. Recorded income rows
// take precedence; the declared monthly income is used when none exist.
func (s *dashboardService) Health(ctx context.Context, userID string, period dates.Period) (*report.Health, error) {
	income, expenses, err := s.totals(ctx, userID, period)
	if err != nil {
		return nil, err
	}
	if income == 0 {
		if income, err = s.declaredIncome(ctx, userID, period); err != nil {
			return nil, err
		}
	}
	health := report.AssessHealth(period, income, expenses)
	return &health, nil
}

// Indicators returns the month's income, expenses and balance.
func (s *dashboardService) Indicators(ctx context.Context, userID string, period dates.Period) (*report.Indicators, error) {
	income, expenses, err := s.totals(ctx, userID, period)
	if err != nil {
		return nil, err
	}
	ind := report.MonthlyIndicators(period, income, expenses)
	return &ind, nil
}

// Annual returns month-by-month totals for year.
func (s *dashboardService) Annual(ctx context.Context, userID string, year int) (*report.AnnualOverview, error) {
	if year < 1 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidPeriod, "year must be positive")
	}
	incomes, err := s.incomes.MonthlyTotals(ctx, userID, year)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	expenses, err := s.expenses.MonthlyTotals(ctx, userID, year)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	overview := report.Annual(year, incomes, expenses)
	return &overview, nil
}

func (s *dashboardService) totals(ctx context.Context, userID string, period dates.Period) (income, expenses int64, err error) {
	if err := validPeriod(period); err != nil {
		return 0, 0, err
	}
	filter := ledger.Filter{Period: &period}
	if income, err = s.incomes.Sum(ctx, userID, filter); err != nil {
		return 0, 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if expenses, err = s.expenses.Sum(ctx, userID, filter); err != nil {
		return 0, 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return income, expenses, nil
}

func (s *dashboardService) declaredIncome(ctx context.Context, userID string, period dates.Period) (int64, error) {
	var mi models.MonthlyIncome
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND year = ? AND month = ?", userID, period.Year, int(period.Month)).
		First(&mi).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return mi.Amount, nil
}
