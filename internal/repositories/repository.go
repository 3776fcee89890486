package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repository aggregates the entity repositories behind one injection point.
type Repository interface {
	Progress() ProgressRepository
	StudentProfile() StudentProfileRepository
	Badge() BadgeRepository
	Chapter() ChapterRepository

	// WithTx runs fn with a Repository bound to a single transaction.
	// The transaction commits when fn returns nil and rolls back otherwise.
	WithTx(ctx context.Context, fn func(Repository) error) error
}

// IsNotFoundError reports whether err is the storage layer's missing-row error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// IsDuplicateError reports whether err came from a unique-constraint conflict.
func IsDuplicateError(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
