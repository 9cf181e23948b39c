package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "cofre/internal/errors"
	"cofre/internal/events"
	"cofre/internal/ledger"
	"cofre/internal/logger"
)

// ledgerError maps store errors onto AppErrors.
func ledgerError(err error, notFound *apperrors.AppError) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ledger.ErrNotFound):
		return notFound
	case ledger.IsDuplicate(err):
		return apperrors.Wrap(apperrors.ErrDuplicateOccurrence, err)
	default:
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
}

// recordError maps gorm errors for non-ledger tables onto AppErrors.
func recordError(err error, notFound *apperrors.AppError) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound
	default:
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
}

func invalid(msg string) error {
	return apperrors.WithMessage(apperrors.ErrInvalidInput, msg)
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// publish sends e and logs failures. Events never fail the operation that emitted them.
func publish(ctx context.Context, p events.Publisher, e events.Event) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, e); err != nil {
		logger.Get().Warnw("failed to publish event", "type", e.Type, "user_id", e.UserID, "error", err)
	}
}

// annotate prefixes note with label, keeping the original note after a separator.
func annotate(label, note string) string {
	if note = strings.TrimSpace(note); note == "" {
		return label
	}
	return label + " - " + note
}
