package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"cofre/internal/dates"
	apperrors "cofre/internal/errors"
	"cofre/internal/models"
	"cofre/internal/money"
	"cofre/internal/pagination"
)

const signupMonths = 6

// adminService handles user administration.
type adminService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewAdminService creates a new AdminServicer.
func NewAdminService(db *gorm.DB) AdminServicer {
	return &adminService{db: db, now: time.Now}
}

// ListUsers returns a page of users, newest first, with global stats.
func (s *adminService) ListUsers(ctx context.Context, page pagination.PageRequest) (*UserListing, error) {
	page.Defaults()

	stats, err := s.stats(ctx)
	if err != nil {
		return nil, err
	}

	var users []models.User
	err = s.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Scopes(pagination.Paginate(page)).
		Find(&users).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &UserListing{
		Users: pagination.NewPageResponse(users, page.Page, page.PageSize, stats.Total),
		Stats: *stats,
	}, nil
}

func (s *adminService) stats(ctx context.Context) (*UserStats, error) {
	count := func(dst *int64, query string, args ...any) error {
		q := s.db.WithContext(ctx).Model(&models.User{})
		if query != "" {
			q = q.Where(query, args...)
		}
		return q.Count(dst).Error
	}

	var st UserStats
	today := dates.Day(s.now())
	for _, err := range []error{
		count(&st.Total, ""),
		count(&st.Active, "is_active = ?", true),
		count(&st.Admins, "role = ?", models.RoleAdmin),
		count(&st.NewToday, "created_at >= ?", today),
	} {
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	st.Inactive = st.Total - st.Active
	return &st, nil
}

func (s *adminService) target(ctx context.Context, actorID, userID string) (*models.User, error) {
	if actorID == userID {
		return nil, apperrors.ErrSelfAction
	}
	var user models.User
	if err := s.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error; err != nil {
		return nil, recordError(err, apperrors.ErrUserNotFound)
	}
	return &user, nil
}

// ToggleActive flips a user's active flag. Admins cannot toggle themselves.
func (s *adminService) ToggleActive(ctx context.Context, actorID, userID string) (*models.User, error) {
	user, err := s.target(ctx, actorID, userID)
	if err != nil {
		return nil, err
	}
	user.IsActive = !user.IsActive
	if err := s.db.WithContext(ctx).Model(user).Update("is_active", user.IsActive).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return user, nil
}

// SetRole changes a user's role. Admins cannot change their own role.
func (s *adminService) SetRole(ctx context.Context, actorID, userID string, role models.Role) (*models.User, error) {
	if role != models.RoleUser && role != models.RoleAdmin {
		return nil, invalid("role must be user or admin")
	}
	user, err := s.target(ctx, actorID, userID)
	if err != nil {
		return nil, err
	}
	user.Role = role
	if err := s.db.WithContext(ctx).Model(user).Update("role", role).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return user, nil
}

// DeleteUser permanently removes a user and everything they own.
func (s *adminService) DeleteUser(ctx context.Context, actorID, userID string) error {
	user, err := s.target(ctx, actorID, userID)
	if err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		owned := []any{
			&models.Expense{},
			&models.Income{},
			&models.Goal{},
			&models.MonthlyReflection{},
			&models.MonthlyIncome{},
			&models.AuditLog{},
		}
		for _, m := range owned {
			if err := tx.Unscoped().Where("user_id = ?", user.ID).Delete(m).Error; err != nil {
				return err
			}
		}
		return tx.Unscoped().Delete(user).Error
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// Dashboard returns user stats, the activation rate and monthly sign-ups for
// the last six months, oldest first.
func (s *adminService) Dashboard(ctx context.Context) (*AdminDashboard, error) {
	stats, err := s.stats(ctx)
	if err != nil {
		return nil, err
	}

	current := dates.PeriodOf(s.now())
	first := current.AddMonths(-(signupMonths - 1))

	var created []time.Time
	err = s.db.WithContext(ctx).Model(&models.User{}).
		Where("created_at >= ?", first.Start()).
		Pluck("created_at", &created).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	buckets := make([]SignupBucket, signupMonths)
	index := make(map[dates.Period]int, signupMonths)
	for i := range buckets {
		p := first.AddMonths(i)
		buckets[i] = SignupBucket{Period: p}
		index[p] = i
	}
	for _, t := range created {
		if i, ok := index[dates.PeriodOf(t)]; ok {
			buckets[i].Count++
		}
	}

	return &AdminDashboard{
		Stats:          *stats,
		ActivationRate: money.Round(money.Percent(stats.Active, stats.Total), 2),
		Signups:        buckets,
	}, nil
}
