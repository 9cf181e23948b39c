package services

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"cofre/internal/dates"
	apperrors "cofre/internal/errors"
	"cofre/internal/models"
)

const (
	DefaultEmotionalScore = 5
	MinEmotionalScore     = 1
	MaxEmotionalScore     = 10
)

// periodConflict targets the (user_id, year, month) unique index of the
// per-month tables.
var periodConflict = []clause.Column{{Name: "user_id"}, {Name: "year"}, {Name: "month"}}

// reflectionService handles monthly reflections.
type reflectionService struct {
	db *gorm.DB
}

// NewReflectionService creates a new ReflectionServicer.
func NewReflectionService(db *gorm.DB) ReflectionServicer {
	return &reflectionService{db: db}
}

// UpsertReflection stores the reflection for a month, replacing any earlier one.
func (s *reflectionService) UpsertReflection(ctx context.Context, userID string, in ReflectionInput) (*models.MonthlyReflection, error) {
	if err := validPeriod(in.Period); err != nil {
		return nil, err
	}
	score := in.EmotionalScore
	if score == 0 {
		score = DefaultEmotionalScore
	}
	if score < MinEmotionalScore || score > MaxEmotionalScore {
		return nil, invalid("emotional score must be between 1 and 10")
	}

	row := &models.MonthlyReflection{
		UserID:         userID,
		Year:           in.Period.Year,
		Month:          int(in.Period.Month),
		MoneyFeeling:   strings.TrimSpace(in.MoneyFeeling),
		WhatWorked:     strings.TrimSpace(in.WhatWorked),
		WhatToAdjust:   strings.TrimSpace(in.WhatToAdjust),
		EmotionalScore: score,
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   periodConflict,
		DoUpdates: clause.AssignmentColumns([]string{"money_feeling", "what_worked", "what_to_adjust", "emotional_score", "updated_at", "deleted_at"}),
	}).Create(row).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return s.GetReflection(ctx, userID, in.Period)
}

// ListReflections returns the user's reflections, most recent month first.
func (s *reflectionService) ListReflections(ctx context.Context, userID string) ([]models.MonthlyReflection, error) {
	rows := []models.MonthlyReflection{}
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("year DESC, month DESC").
		Find(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return rows, nil
}

// GetReflection returns the reflection recorded for period.
func (s *reflectionService) GetReflection(ctx context.Context, userID string, period dates.Period) (*models.MonthlyReflection, error) {
	if err := validPeriod(period); err != nil {
		return nil, err
	}
	var row models.MonthlyReflection
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND year = ? AND month = ?", userID, period.Year, int(period.Month)).
		First(&row).Error
	if err != nil {
		return nil, recordError(err, apperrors.ErrReflectionNotFound)
	}
	return &row, nil
}

// DeleteReflection removes a reflection permanently so the month can be
// recorded again.
func (s *reflectionService) DeleteReflection(ctx context.Context, userID, id string) error {
	res := s.db.WithContext(ctx).Unscoped().
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.MonthlyReflection{})
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrReflectionNotFound
	}
	return nil
}
