package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"cofre/internal/dates"
	apperrors "cofre/internal/errors"
	"cofre/internal/events"
	"cofre/internal/ledger"
	"cofre/internal/models"
	"cofre/internal/money"
	"cofre/internal/pagination"
)

// expenseService handles the expense ledger.
type expenseService struct {
	db        *gorm.DB
	expenses  *ledger.Store[models.Expense, *models.Expense]
	publisher events.Publisher
	now       func() time.Time
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB, publisher events.Publisher) ExpenseServicer {
	return &expenseService{
		db:        db,
		expenses:  ledger.Expenses(db),
		publisher: publisher,
		now:       time.Now,
	}
}

func (d ExpenseDraft) validate() error {
	switch {
	case d.Date.IsZero():
		return invalid("date is required")
	case blank(d.Description):
		return invalid("description is required")
	case d.Amount <= 0:
		return invalid("amount must be greater than zero")
	case blank(d.Category):
		return invalid("category is required")
	case blank(d.PaymentMethod):
		return invalid("payment method is required")
	case blank(d.Emotion):
		return invalid("emotion is required")
	}
	return nil
}

func (d ExpenseDraft) expense(userID string) models.Expense {
	return models.Expense{
		Entry: models.Entry{
			UserID:            userID,
			Date:              dates.Day(d.Date),
			Description:       strings.TrimSpace(d.Description),
			Amount:            d.Amount,
			Category:          strings.TrimSpace(d.Category),
			Subcategory:       strings.TrimSpace(d.Subcategory),
			Note:              strings.TrimSpace(d.Note),
			Installments:      1,
			InstallmentNumber: 1,
			Recurring:         d.Recurring,
		},
		PaymentMethod: strings.TrimSpace(d.PaymentMethod),
		Essential:     d.Essential,
		Emotion:       strings.TrimSpace(d.Emotion),
	}
}

// CreateInstallmentGroup records a purchase. With count 1 it stores a single
// root. With count N > 1 it stores N monthly installments: installment i is
// dated i-1 months after the draft (clamped to month end), the total is split
// evenly in cents with the remainder on the first installment, and rows 2..N
// point at row 1. The whole group is written in one transaction.
func (s *expenseService) CreateInstallmentGroup(ctx context.Context, userID string, draft ExpenseDraft, count int) ([]models.Expense, error) {
	if count < 1 {
		return nil, apperrors.ErrInvalidInstallments
	}
	if err := draft.validate(); err != nil {
		return nil, err
	}
	if count > 1 && draft.Recurring {
		return nil, invalid("an installment purchase cannot also be recurring")
	}

	amounts := money.Split(draft.Amount, count)
	rows := make([]models.Expense, count)
	for i := range rows {
		row := draft.expense(userID)
		row.Amount = amounts[i]
		if count > 1 {
			row.Date = dates.Project(row.Date, i)
			row.Installments = count
			row.InstallmentNumber = i + 1
			row.Note = annotate(fmt.Sprintf("Installment %d/%d", i+1, count), draft.Note)
		}
		rows[i] = row
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		store := s.expenses.WithTx(tx)
		for i := range rows {
			if err := store.Insert(ctx, &rows[i]); err != nil {
				return err
			}
		}
		if count == 1 {
			return nil
		}

		rootID := rows[0].ID
		childIDs := make([]string, 0, count-1)
		for i := 1; i < count; i++ {
			childIDs = append(childIDs, rows[i].ID)
		}
		if err := store.AttachToGroup(ctx, userID, rootID, childIDs); err != nil {
			return err
		}
		for i := 1; i < count; i++ {
			rows[i].GroupID = &rootID
		}
		return nil
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if count > 1 {
		publish(ctx, s.publisher, events.New(events.TypeInstallmentGroupCreated, userID, rows[0].ID, map[string]any{
			"installments": count,
			"total":        draft.Amount,
		}))
	}
	return rows, nil
}

// ListExpenses returns a page of the user's expenses.
func (s *expenseService) ListExpenses(ctx context.Context, userID string, filter ledger.Filter, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error) {
	resp, err := s.expenses.Page(ctx, userID, filter, page)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return resp, nil
}

// ListInstallments returns every row that belongs to a multi-installment purchase.
func (s *expenseService) ListInstallments(ctx context.Context, userID string) ([]models.Expense, error) {
	rows, err := s.expenses.Find(ctx, userID, ledger.Filter{Installments: true, Ascending: true})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return rows, nil
}

// ListFutureExpenses returns expenses dated after today, optionally within one month.
func (s *expenseService) ListFutureExpenses(ctx context.Context, userID string, period *dates.Period) ([]models.Expense, error) {
	today := dates.Day(s.now())
	rows, err := s.expenses.Find(ctx, userID, ledger.Filter{After: &today, Period: period, Ascending: true})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return rows, nil
}

// GetExpense returns one expense owned by the user.
func (s *expenseService) GetExpense(ctx context.Context, userID, id string) (*models.Expense, error) {
	row, err := s.expenses.Get(ctx, userID, id)
	if err != nil {
		return nil, ledgerError(err, apperrors.ErrExpenseNotFound)
	}
	return row, nil
}

// UpdateExpense changes the given fields of one expense.
func (s *expenseService) UpdateExpense(ctx context.Context, userID, id string, upd ExpenseUpdate) (*models.Expense, error) {
	current, err := s.GetExpense(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]any)
	if err := setText(fields, "description", upd.Description); err != nil {
		return nil, err
	}
	if err := setText(fields, "category", upd.Category); err != nil {
		return nil, err
	}
	if err := setText(fields, "payment_method", upd.PaymentMethod); err != nil {
		return nil, err
	}
	if err := setText(fields, "emotion", upd.Emotion); err != nil {
		return nil, err
	}
	setOptional(fields, "subcategory", upd.Subcategory)
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
	if upd.Essential != nil {
		fields["essential"] = *upd.Essential
	}
	if upd.Recurring != nil {
		if *upd.Recurring && (!current.IsRoot() || current.Installments > 1) {
			return nil, invalid("only single, non-generated expenses can be recurring")
		}
		fields["recurring"] = *upd.Recurring
	}

	row, err := s.expenses.Update(ctx, userID, id, fields)
	if err != nil {
		return nil, ledgerError(err, apperrors.ErrExpenseNotFound)
	}
	return row, nil
}

// DeleteExpense removes one expense. Deleting a root removes its whole group
// (installments or generated occurrences); deleting any other row removes
// only that row. It returns the number of rows removed.
func (s *expenseService) DeleteExpense(ctx context.Context, userID, id string) (int64, error) {
	row, err := s.GetExpense(ctx, userID, id)
	if err != nil {
		return 0, err
	}

	if !row.IsRoot() {
		if err := s.expenses.Delete(ctx, userID, id); err != nil {
			return 0, ledgerError(err, apperrors.ErrExpenseNotFound)
		}
		return 1, nil
	}

	var removed int64
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		removed, err = s.expenses.WithTx(tx).DeleteGroup(ctx, userID, id)
		return err
	})
	if err != nil {
		return 0, ledgerError(err, apperrors.ErrExpenseNotFound)
	}
	return removed, nil
}

// setText copies a trimmed string into fields, rejecting a blank value.
func setText(fields map[string]any, column string, value *string) error {
	if value == nil {
		return nil
	}
	v := strings.TrimSpace(*value)
	if v == "" {
		return invalid(strings.ReplaceAll(column, "_", " ") + " cannot be empty")
	}
	fields[column] = v
	return nil
}

// setOptional copies a trimmed string into fields; blank clears the column.
func setOptional(fields map[string]any, column string, value *string) {
	if value != nil {
		fields[column] = strings.TrimSpace(*value)
	}
}
