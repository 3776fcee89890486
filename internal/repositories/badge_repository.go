package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/yububu-edu/progress-service/internal/models"
)

// BadgeRepository persists one-time achievement grants. The
// (student_id, badge_type) unique index rejects double awards.
type BadgeRepository interface {
	Create(ctx context.Context, badge *models.Badge) error
	GetByStudent(ctx context.Context, studentID uuid.UUID) ([]*models.Badge, error)
	HasBadge(ctx context.Context, studentID uuid.UUID, badgeType models.BadgeType) (bool, error)
	CountByStudent(ctx context.Context, studentID uuid.UUID) (int, error)
}
