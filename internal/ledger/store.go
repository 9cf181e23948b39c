// Package ledger persists expense and income rows. Every query is scoped to
// one owner; rows belonging to another user behave as if they do not exist.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"cofre/internal/dates"
	"cofre/internal/models"
	"cofre/internal/pagination"
)

var (
	// ErrNotFound is returned when no row matches the owner and id.
	ErrNotFound = errors.New("ledger: row not found")
	// ErrDuplicate is returned when an insert collides with the
	// (user, group, date) uniqueness rule.
	ErrDuplicate = errors.New("ledger: duplicate occurrence")
)

const uniqueViolation = "23505"

// Row constrains Store to pointers of models embedding models.Entry.
type Row[T any] interface {
	*T
	models.Ledgered
}

// Store is a gorm-backed ledger for one row type.
type Store[T any, P Row[T]] struct {
	db *gorm.DB
}

// NewStore returns a store over db.
func NewStore[T any, P Row[T]](db *gorm.DB) *Store[T, P] {
	return &Store[T, P]{db: db}
}

// Expenses returns the expense ledger.
func Expenses(db *gorm.DB) *Store[models.Expense, *models.Expense] {
	return NewStore[models.Expense, *models.Expense](db)
}

// Incomes returns the income ledger.
func Incomes(db *gorm.DB) *Store[models.Income, *models.Income] {
	return NewStore[models.Income, *models.Income](db)
}

// WithTx returns a copy of the store bound to tx.
func (s *Store[T, P]) WithTx(tx *gorm.DB) *Store[T, P] {
	return &Store[T, P]{db: tx}
}

func (s *Store[T, P]) scoped(ctx context.Context, userID string) *gorm.DB {
	return s.db.WithContext(ctx).Model(P(new(T))).Where("user_id = ?", userID)
}

// Insert persists row, normalizing its date to a calendar day.
func (s *Store[T, P]) Insert(ctx context.Context, row P) error {
	e := row.LedgerEntry()
	e.Date = dates.Day(e.Date)
	return translate(s.db.WithContext(ctx).Create(row).Error)
}

// Get loads one row owned by userID.
func (s *Store[T, P]) Get(ctx context.Context, userID, id string) (P, error) {
	row := P(new(T))
	err := s.scoped(ctx, userID).Where("id = ?", id).First(row).Error
	if err != nil {
		return nil, translate(err)
	}
	return row, nil
}

// Find returns every row matching f, newest first unless f.Ascending.
func (s *Store[T, P]) Find(ctx context.Context, userID string, f Filter) ([]T, error) {
	var rows []T
	err := f.apply(s.scoped(ctx, userID)).Order(f.order()).Find(&rows).Error
	return rows, translate(err)
}

// Page returns one page of rows matching f.
func (s *Store[T, P]) Page(ctx context.Context, userID string, f Filter, page pagination.PageRequest) (*pagination.PageResponse[T], error) {
	page.Defaults()

	var total int64
	if err := f.apply(s.scoped(ctx, userID)).Count(&total).Error; err != nil {
		return nil, translate(err)
	}

	var rows []T
	err := f.apply(s.scoped(ctx, userID)).
		Order(f.order()).
		Scopes(pagination.Paginate(page)).
		Find(&rows).Error
	if err != nil {
		return nil, translate(err)
	}

	resp := pagination.NewPageResponse(rows, page.Page, page.PageSize, total)
	return &resp, nil
}

// AttachToGroup points the given rows at rootID.
func (s *Store[T, P]) AttachToGroup(ctx context.Context, userID, rootID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	res := s.scoped(ctx, userID).Where("id IN ?", ids).Update("group_id", rootID)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected != int64(len(ids)) {
		return fmt.Errorf("attach to group %s: updated %d of %d rows", rootID, res.RowsAffected, len(ids))
	}
	return nil
}

// Exists reports whether the occurrence has already been recorded.
func (s *Store[T, P]) Exists(ctx context.Context, userID string, o Occurrence) (bool, error) {
	var n int64
	err := s.scoped(ctx, userID).
		Where("date = ? AND description = ? AND amount = ? AND group_id = ?",
			dates.Day(o.Date), o.Description, o.Amount, o.GroupID).
		Count(&n).Error
	return n > 0, translate(err)
}

// Update applies column updates to one row and returns the reloaded row.
func (s *Store[T, P]) Update(ctx context.Context, userID, id string, fields map[string]any) (P, error) {
	if d, ok := fields["date"].(time.Time); ok {
		fields["date"] = dates.Day(d)
	}
	if len(fields) > 0 {
		res := s.scoped(ctx, userID).Where("id = ?", id).Updates(fields)
		if res.Error != nil {
			return nil, translate(res.Error)
		}
	}
	return s.Get(ctx, userID, id)
}

// Delete removes one row. It returns ErrNotFound when nothing was deleted.
func (s *Store[T, P]) Delete(ctx context.Context, userID, id string) error {
	res := s.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, id).Delete(P(new(T)))
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteGroup removes a root and every row pointing at it, children first.
// It returns the number of rows removed.
func (s *Store[T, P]) DeleteGroup(ctx context.Context, userID, rootID string) (int64, error) {
	children := s.db.WithContext(ctx).Where("user_id = ? AND group_id = ?", userID, rootID).Delete(P(new(T)))
	if children.Error != nil {
		return 0, translate(children.Error)
	}
	if err := s.Delete(ctx, userID, rootID); err != nil {
		return children.RowsAffected, err
	}
	return children.RowsAffected + 1, nil
}

// Sum totals the amounts of rows matching f.
func (s *Store[T, P]) Sum(ctx context.Context, userID string, f Filter) (int64, error) {
	var total int64
	err := f.apply(s.scoped(ctx, userID)).Select("COALESCE(SUM(amount), 0)").Scan(&total).Error
	return total, translate(err)
}

// MonthlyTotals returns the amount recorded in each month of year,
// index 0 being January.
func (s *Store[T, P]) MonthlyTotals(ctx context.Context, userID string, year int) ([12]int64, error) {
	var totals [12]int64
	var rows []struct {
		Date   time.Time
		Amount int64
	}
	err := Filter{Year: year}.apply(s.scoped(ctx, userID)).Select("date, amount").Scan(&rows).Error
	if err != nil {
		return totals, translate(err)
	}
	for _, r := range rows {
		totals[r.Date.Month()-1] += r.Amount
	}
	return totals, nil
}

// Owners returns the distinct owners holding at least one recurring root.
func (s *Store[T, P]) Owners(ctx context.Context) ([]string, error) {
	var ids []string
	err := s.db.WithContext(ctx).Model(P(new(T))).
		Where("recurring = ? AND group_id IS NULL", true).
		Distinct("user_id").
		Pluck("user_id", &ids).Error
	return ids, translate(err)
}

// IsDuplicate reports whether err is a uniqueness violation.
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errors.Join(ErrDuplicate, err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return errors.Join(ErrDuplicate, err)
	}
	return err
}
