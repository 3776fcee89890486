package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/yububu-edu/progress-service/internal/models"
	"github.com/yububu-edu/progress-service/internal/repositories"
	"gorm.io/gorm"
)

type BadgePostgreSQL struct {
	db *gorm.DB
}

func NewBadgePostgreSQL(db *gorm.DB) repositories.BadgeRepository {
	return &BadgePostgreSQL{db: db}
}

func (b BadgePostgreSQL) Create(ctx context.Context, badge *models.Badge) error {
	return b.db.WithContext(ctx).Create(badge).Error
}

func (b BadgePostgreSQL) GetByStudent(ctx context.Context, studentID uuid.UUID) ([]*models.Badge, error) {
	var badges []*models.Badge
	if err := b.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("earned_at DESC").
		Find(&badges).Error; err != nil {
		return nil, err
	}

	return badges, nil
}

func (b BadgePostgreSQL) HasBadge(ctx context.Context, studentID uuid.UUID, badgeType models.BadgeType) (bool, error) {
	var count int64
	if err := b.db.WithContext(ctx).
		Model(&models.Badge{}).
		Where("student_id = ? AND badge_type = ?", studentID, badgeType).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (b BadgePostgreSQL) CountByStudent(ctx context.Context, studentID uuid.UUID) (int, error) {
	var count int64
	if err := b.db.WithContext(ctx).
		Model(&models.Badge{}).
		Where("student_id = ?", studentID).
		Count(&count).Error; err != nil {
		return 0, err
	}

	return int(count), nil
}
