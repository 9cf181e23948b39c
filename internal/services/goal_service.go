package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	apperrors "cofre/internal/errors"
	"cofre/internal/models"
	"cofre/internal/money"
)

// goalService handles savings goals.
type goalService struct {
	db *gorm.DB
}

// NewGoalService creates a new GoalServicer.
func NewGoalService(db *gorm.DB) GoalServicer {
	return &goalService{db: db}
}

// withProgress fills the computed progress percentage. It is not capped at 100.
func withProgress(g *models.Goal) *models.Goal {
	g.Progress = money.Round(money.Percent(g.AchievedAmount, g.TargetAmount), 2)
	return g
}

// CreateGoal creates a new savings goal.
func (s *goalService) CreateGoal(ctx context.Context, userID string, in GoalInput) (*models.Goal, error) {
	if blank(in.Name) {
		return nil, invalid("name is required")
	}
	if in.TargetAmount <= 0 {
		return nil, invalid("target amount must be greater than zero")
	}
	if in.AchievedAmount < 0 {
		return nil, invalid("achieved amount cannot be negative")
	}

	goal := &models.Goal{
		UserID:         userID,
		Name:           strings.TrimSpace(in.Name),
		TargetAmount:   in.TargetAmount,
		AchievedAmount: in.AchievedAmount,
		Deadline:       strings.TrimSpace(in.Deadline),
		Motivation:     strings.TrimSpace(in.Motivation),
	}
	if err := s.db.WithContext(ctx).Create(goal).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return withProgress(goal), nil
}

// ListGoals returns the user's goals, newest first.
func (s *goalService) ListGoals(ctx context.Context, userID string) ([]models.Goal, error) {
	goals := []models.Goal{}
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&goals).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for i := range goals {
		withProgress(&goals[i])
	}
	return goals, nil
}

// GetGoal returns a goal if it belongs to the user.
func (s *goalService) GetGoal(ctx context.Context, userID, id string) (*models.Goal, error) {
	var goal models.Goal
	err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&goal).Error
	if err != nil {
		return nil, recordError(err, apperrors.ErrGoalNotFound)
	}
	return withProgress(&goal), nil
}

// UpdateGoal updates an existing goal's fields.
func (s *goalService) UpdateGoal(ctx context.Context, userID, id string, upd GoalUpdate) (*models.Goal, error) {
	goal, err := s.GetGoal(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]any)
	if err := setText(updates, "name", upd.Name); err != nil {
		return nil, err
	}
	setOptional(updates, "deadline", upd.Deadline)
	setOptional(updates, "motivation", upd.Motivation)
	if upd.TargetAmount != nil {
		if *upd.TargetAmount <= 0 {
			return nil, invalid("target amount must be greater than zero")
		}
		updates["target_amount"] = *upd.TargetAmount
	}
	if upd.AchievedAmount != nil {
		if *upd.AchievedAmount < 0 {
			return nil, invalid("achieved amount cannot be negative")
		}
		updates["achieved_amount"] = *upd.AchievedAmount
	}

	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(goal).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return s.GetGoal(ctx, userID, id)
}

// DeleteGoal soft-deletes a goal.
func (s *goalService) DeleteGoal(ctx context.Context, userID, id string) error {
	goal, err := s.GetGoal(ctx, userID, id)
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Delete(goal).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
