package services

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"cofre/internal/dates"
	apperrors "cofre/internal/errors"
	"cofre/internal/events"
	"cofre/internal/ledger"
	"cofre/internal/logger"
	"cofre/internal/models"
)

const recurringLabel = "Recurring"

var errAlreadyGenerated = errors.New("occurrence already generated")

// recurrenceService materializes monthly occurrences of recurring roots.
type recurrenceService struct {
	db        *gorm.DB
	expenses  *ledger.Store[models.Expense, *models.Expense]
	incomes   *ledger.Store[models.Income, *models.Income]
	publisher events.Publisher
	now       func() time.Time
}

// NewRecurrenceService creates a new RecurrenceServicer.
func NewRecurrenceService(db *gorm.DB, publisher events.Publisher) RecurrenceServicer {
	return &recurrenceService{
		db:        db,
		expenses:  ledger.Expenses(db),
		incomes:   ledger.Incomes(db),
		publisher: publisher,
		now:       time.Now,
	}
}

func (s *recurrenceService) reference(ref *dates.Period) (dates.Period, error) {
	if ref == nil {
		return dates.PeriodOf(s.now()).Next(), nil
	}
	if err := ref.Validate(); err != nil {
		return dates.Period{}, apperrors.Wrap(apperrors.ErrInvalidPeriod, err)
	}
	return *ref, nil
}

// Advance generates, for every recurring root of both ledgers, the
// occurrence that falls in ref (next month when ref is nil). Occurrences that
// already exist are skipped, so repeated runs create nothing new. Each root
// runs in its own savepoint: a failing root is logged, counted and rolled
// back while the others proceed. Only the initial scan or the final commit
// can fail the call.
func (s *recurrenceService) Advance(ctx context.Context, userID string, ref *dates.Period) (*AdvanceResult, error) {
	period, err := s.reference(ref)
	if err != nil {
		return nil, err
	}

	result := &AdvanceResult{UserID: userID, Period: period}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := advanceLedger(ctx, tx, s.expenses, userID, period, result); err != nil {
			return err
		}
		return advanceLedger(ctx, tx, s.incomes, userID, period, result)
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if result.Created > 0 {
		publish(ctx, s.publisher, events.New(events.TypeRecurrenceAdvanced, userID, "", map[string]any{
			"period":  period.String(),
			"created": result.Created,
		}))
	}
	return result, nil
}

func advanceLedger[T any, P ledger.Row[T]](ctx context.Context, tx *gorm.DB, store *ledger.Store[T, P], userID string, period dates.Period, result *AdvanceResult) error {
	roots, err := store.WithTx(tx).Find(ctx, userID, ledger.Filter{RecurringOnly: true, RootsOnly: true, Ascending: true})
	if err != nil {
		return err
	}

	log := logger.Named("recurrence")
	for i := range roots {
		root := P(&roots[i]).LedgerEntry()

		offset := period.MonthsSince(dates.PeriodOf(root.Date))
		if offset <= 0 {
			// The root already covers this month.
			result.Skipped++
			continue
		}
		target := dates.Project(root.Date, offset)

		err := tx.Transaction(func(sp *gorm.DB) error {
			st := store.WithTx(sp)
			exists, err := st.Exists(ctx, userID, ledger.Occurrence{
				Date:        target,
				Description: root.Description,
				Amount:      root.Amount,
				GroupID:     root.ID,
			})
			if err != nil {
				return err
			}
			if exists {
				return errAlreadyGenerated
			}
			return st.Insert(ctx, occurrenceOf[T, P](&roots[i], target))
		})

		switch {
		case err == nil:
			result.Created++
		case errors.Is(err, errAlreadyGenerated), ledger.IsDuplicate(err):
			result.Skipped++
		default:
			result.Failed++
			log.Errorw("failed to generate recurring occurrence",
				"user_id", userID,
				"root_id", root.ID,
				"period", period.String(),
				"error", err,
			)
		}
	}
	return nil
}

// occurrenceOf copies root into a non-recurring row dated target that points back at root.
func occurrenceOf[T any, P ledger.Row[T]](root *T, target time.Time) P {
	occ := new(T)
	*occ = *root

	e := P(occ).LedgerEntry()
	rootID := e.ID
	e.ID = ""
	e.Date = target
	e.Recurring = false
	e.GroupID = &rootID
	e.Installments = 1
	e.InstallmentNumber = 1
	e.Note = annotate(recurringLabel, e.Note)
	e.CreatedAt = time.Time{}
	e.UpdatedAt = time.Time{}
	return P(occ)
}

// AdvanceAll runs Advance for every active owner of a recurring root, at most
// concurrency owners at a time. Each owner is processed once per call. An
// owner whose run fails is reported in FailedOwners and does not stop the others.
func (s *recurrenceService) AdvanceAll(ctx context.Context, ref *dates.Period, concurrency int) (*BatchResult, error) {
	period, err := s.reference(ref)
	if err != nil {
		return nil, err
	}

	owners, err := s.activeOwners(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	batch := &BatchResult{Period: period, Owners: len(owners), FailedOwners: []string{}}
	if concurrency < 1 {
		concurrency = 1
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for _, userID := range owners {
		userID := userID
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := s.Advance(gctx, userID, &period)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				logger.Named("recurrence").Errorw("recurrence run failed", "user_id", userID, "error", err)
				batch.FailedOwners = append(batch.FailedOwners, userID)
				return nil
			}
			batch.Created += res.Created
			batch.Skipped += res.Skipped
			batch.Failed += res.Failed
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return batch, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	sort.Strings(batch.FailedOwners)
	logger.Named("recurrence").Infow("recurrence batch finished",
		"period", period.String(),
		"owners", batch.Owners,
		"created", batch.Created,
		"skipped", batch.Skipped,
		"failed", batch.Failed,
	)
	return batch, nil
}

func (s *recurrenceService) activeOwners(ctx context.Context) ([]string, error) {
	expenseOwners, err := s.expenses.Owners(ctx)
	if err != nil {
		return nil, err
	}
	incomeOwners, err := s.incomes.Owners(ctx)
	if err != nil {
		return nil, err
	}

	candidates := append(expenseOwners, incomeOwners...)
	if len(candidates) == 0 {
		return nil, nil
	}

	var active []string
	err = s.db.WithContext(ctx).Model(&models.User{}).
		Where("id IN ? AND is_active = ?", candidates, true).
		Order("id").
		Pluck("id", &active).Error
	return active, err
}

// ListRecurring returns the recurring roots of both ledgers, newest first.
func (s *recurrenceService) ListRecurring(ctx context.Context, userID string) (*RecurringEntries, error) {
	filter := ledger.Filter{RecurringOnly: true, RootsOnly: true}
	expenses, err := s.expenses.Find(ctx, userID, filter)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	incomes, err := s.incomes.Find(ctx, userID, filter)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if expenses == nil {
		expenses = []models.Expense{}
	}
	if incomes == nil {
		incomes = []models.Income{}
	}
	return &RecurringEntries{Expenses: expenses, Incomes: incomes}, nil
}

// StopRecurring clears the recurring flag of a root. Occurrences already
// generated are kept.
func (s *recurrenceService) StopRecurring(ctx context.Context, userID string, kind LedgerKind, id string) error {
	switch kind {
	case KindExpense:
		return stopRecurring(ctx, s.expenses, userID, id)
	case KindIncome:
		return stopRecurring(ctx, s.incomes, userID, id)
	default:
		return invalid("unknown ledger " + string(kind))
	}
}

func stopRecurring[T any, P ledger.Row[T]](ctx context.Context, store *ledger.Store[T, P], userID, id string) error {
	row, err := store.Get(ctx, userID, id)
	if err != nil {
		return ledgerError(err, apperrors.ErrRecurringNotFound)
	}
	if e := row.LedgerEntry(); !e.Recurring || !e.IsRoot() {
		return apperrors.ErrRecurringNotFound
	}
	if _, err := store.Update(ctx, userID, id, map[string]any{"recurring": false}); err != nil {
		return ledgerError(err, apperrors.ErrRecurringNotFound)
	}
	return nil
}
