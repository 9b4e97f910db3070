// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"

	"barterly/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// translateError maps driver-level failures onto the application error
// taxonomy. Unique-constraint violations become conflicts so the storage
// layer's atomic guard surfaces as a user-facing duplicate error; cancelled
// or timed-out calls become transient errors the caller may retry (reads
// only).
func translateError(err error, conflictMessage string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return models.NewConflictError(conflictMessage)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return models.NewTransientError(err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return models.NewConflictError(conflictMessage)
	}

	return models.NewInternalError(err)
}
