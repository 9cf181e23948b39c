package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"cofre/internal/dates"
	apperrors "cofre/internal/errors"
	"cofre/internal/ledger"
	"cofre/internal/models"
	"cofre/internal/pagination"
	"cofre/internal/report"
)

// incomeService handles the income ledger.
type incomeService struct {
	db      *gorm.DB
	incomes *ledger.Store[models.Income, *models.Income]
}

// NewIncomeService creates a new IncomeServicer.
func NewIncomeService(db *gorm.DB) IncomeServicer {
	return &incomeService{db: db, incomes: ledger.Incomes(db)}
}

// CreateIncome records a single income, optionally flagged as recurring.
func (s *incomeService) CreateIncome(ctx context.Context, userID string, draft IncomeDraft) (*models.Income, error) {
	switch {
	case draft.Date.IsZero():
		return nil, invalid("date is required")
	case blank(draft.Description):
		return nil, invalid("description is required")
	case draft.Amount <= 0:
		return nil, invalid("amount must be greater than zero")
	}

	income := &models.Income{
		Entry: models.Entry{
			UserID:            userID,
			Date:              dates.Day(draft.Date),
			Description:       strings.TrimSpace(draft.Description),
			Amount:            draft.Amount,
			Category:          strings.TrimSpace(draft.Category),
			Subcategory:       strings.TrimSpace(draft.Subcategory),
			Note:              strings.TrimSpace(draft.Note),
			Installments:      1,
			InstallmentNumber: 1,
			Recurring:         draft.Recurring,
		},
		IncomeType: strings.TrimSpace(draft.IncomeType),
	}
	if err := s.incomes.Insert(ctx, income); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return income, nil
}

// ListIncomes returns a page of the user's incomes.
func (s *incomeService) ListIncomes(ctx context.Context, userID string, filter ledger.Filter, page pagination.PageRequest) (*pagination.PageResponse[models.Income], error) {
	resp, err := s.incomes.Page(ctx, userID, filter, page)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return resp, nil
}

// GetIncome returns one income owned by the user.
func (s *incomeService) GetIncome(ctx context.Context, userID, id string) (*models.Income, error) {
	row, err := s.incomes.Get(ctx, userID, id)
	if err != nil {
		return nil, ledgerError(err, apperrors.ErrIncomeNotFound)
	}
	return row, nil
}

// UpdateIncome changes the given fields of one income.
func (s *incomeService) UpdateIncome(ctx context.Context, userID, id string, upd IncomeUpdate) (*models.Income, error) {
	current, err := s.GetIncome(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]any)
	if err := setText(fields, "description", upd.Description); err != nil {
		return nil, err
	}
	setOptional(fields, "category", upd.Category)
	setOptional(fields, "subcategory", upd.Subcategory)
	setOptional(fields, "income_type", upd.IncomeType)
	setOptional(fields, "note", upd.Note)
	if upd.Amount != nil {
		if *upd.Amount <= 0 {
			return nil, invalid("amount must be greater than zero")
		}
		fields["amount"] = *upd.Amount
	}
	if upd.Date != nil {
		fields["date"] = *upd.Date
	}
	if upd.Recurring != nil {
		if *upd.Recurring && !current.IsRoot() {
			return nil, invalid("generated incomes cannot be recurring")
		}
		fields["recurring"] = *upd.Recurring
	}

	row, err := s.incomes.Update(ctx, userID, id, fields)
	if err != nil {
		return nil, ledgerError(err, apperrors.ErrIncomeNotFound)
	}
	return row, nil
}

// DeleteIncome removes one income; a root takes its generated occurrences with it.
func (s *incomeService) DeleteIncome(ctx context.Context, userID, id string) (int64, error) {
	row, err := s.GetIncome(ctx, userID, id)
	if err != nil {
		return 0, err
	}
	if !row.IsRoot() {
		if err := s.incomes.Delete(ctx, userID, id); err != nil {
			return 0, ledgerError(err, apperrors.ErrIncomeNotFound)
		}
		return 1, nil
	}

	var removed int64
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		removed, err = s.incomes.WithTx(tx).DeleteGroup(ctx, userID, id)
		return err
	})
	if err != nil {
		return 0, ledgerError(err, apperrors.ErrIncomeNotFound)
	}
	return removed, nil
}

// SummarizeIncomes totals the month's incomes by income type.
func (s *incomeService) SummarizeIncomes(ctx context.Context, userID string, period dates.Period) (*report.IncomeSummary, error) {
	if err := validPeriod(period); err != nil {
		return nil, err
	}
	rows, err := s.incomes.Find(ctx, userID, ledger.Filter{Period: &period, Ascending: true})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	summary := report.SummarizeIncomes(rows, period)
	return &summary, nil
}
