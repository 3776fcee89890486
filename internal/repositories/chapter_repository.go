package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/yububu-edu/progress-service/internal/models"
)

// ChapterRepository is the read-mostly chapter catalog. The progress engine
// needs pass thresholds, expected durations and track sizes from it.
type ChapterRepository interface {
	Create(ctx context.Context, chapter *models.Chapter) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Chapter, error)
	Update(ctx context.Context, chapter *models.Chapter) error

	List(ctx context.Context, filters ChapterFilters) ([]*models.Chapter, int64, error)

	// CountActiveByDifficulty returns the size of one difficulty track,
	// used by the mastery badge check.
	CountActiveByDifficulty(ctx context.Context, difficulty models.LearningDifficulty) (int, error)
}
