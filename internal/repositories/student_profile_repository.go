package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/yububu-edu/progress-service/internal/models"
)

// StudentProfileRepository owns total_score, current/previous level,
// streak_days and last_activity_date. No other component writes them.
type StudentProfileRepository interface {
	Create(ctx context.Context, profile *models.StudentProfile) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.StudentProfile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.StudentProfile, error)
	Update(ctx context.Context, profile *models.StudentProfile) error

	ListByDifficulty(ctx context.Context, difficulty models.LearningDifficulty, limit, offset int) ([]*models.StudentProfile, error)

	// UpdateScore adds delta to total_score, snapshots the level into
	// previous_level, recomputes current_level and bumps last_activity_date.
	UpdateScore(ctx context.Context, id uuid.UUID, delta int) (*models.StudentProfile, error)

	// UpdateStreak sets streak_days and last_activity_date.
	UpdateStreak(ctx context.Context, id uuid.UUID, streakDays int) (*models.StudentProfile, error)

	// GetTotalScores returns every student's total score for leaderboards.
	GetTotalScores(ctx context.Context) ([]StudentScore, error)
}
