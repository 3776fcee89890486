package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/yububu-edu/progress-service/internal/models"
)

// ProgressRepository persists per-(student, chapter) progress records.
// The storage layer enforces the pair-uniqueness constraint.
type ProgressRepository interface {
	Create(ctx context.Context, progress *models.Progress) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Progress, error)
	GetByStudentAndChapter(ctx context.Context, studentID, chapterID uuid.UUID) (*models.Progress, error)
	Update(ctx context.Context, progress *models.Progress) error

	ListByStudent(ctx context.Context, studentID uuid.UUID, filters ProgressFilters) ([]*models.Progress, int64, error)

	// GetCompletedCount returns the number of chapters the student completed.
	GetCompletedCount(ctx context.Context, studentID uuid.UUID) (int, error)
	// GetCompletedCountByDifficulty counts completions within one difficulty track.
	GetCompletedCountByDifficulty(ctx context.Context, studentID uuid.UUID, difficulty models.LearningDifficulty) (int, error)

	GetAnalytics(ctx context.Context, studentID uuid.UUID) (*ProgressAnalytics, error)
}
