package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/yububu-edu/progress-service/internal/models"
	"github.com/yububu-edu/progress-service/internal/repositories"
	"gorm.io/gorm"
)

type ChapterPostgreSQL struct {
	db *gorm.DB
}

func NewChapterPostgreSQL(db *gorm.DB) repositories.ChapterRepository {
	return &ChapterPostgreSQL{db: db}
}

func (c ChapterPostgreSQL) Create(ctx context.Context, chapter *models.Chapter) error {
	return c.db.WithContext(ctx).Create(chapter).Error
}

func (c ChapterPostgreSQL) GetByID(ctx context.Context, id uuid.UUID) (*models.Chapter, error) {
	var chapter models.Chapter
	if err := c.db.WithContext(ctx).First(&chapter, "id = ?", id).Error; err != nil {
		return nil, err
	}

	return &chapter, nil
}

func (c ChapterPostgreSQL) Update(ctx context.Context, chapter *models.Chapter) error {
	return c.db.WithContext(ctx).Save(chapter).Error
}

func (c ChapterPostgreSQL) List(ctx context.Context, filters repositories.ChapterFilters) ([]*models.Chapter, int64, error) {
	var chapters []*models.Chapter
	var total int64

	query := c.db.WithContext(ctx).Model(&models.Chapter{})
	if filters.DifficultyType != nil {
		query = query.Where("difficulty_type = ?", *filters.DifficultyType)
	}
	if filters.DifficultyLevel != nil {
		query = query.Where("difficulty_level = ?", *filters.DifficultyLevel)
	}
	if filters.ActiveOnly {
		query = query.Where("is_active = true")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("chapter_number ASC")
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	if err := query.Find(&chapters).Error; err != nil {
		return nil, 0, err
	}

	return chapters, total, nil
}

func (c ChapterPostgreSQL) CountActiveByDifficulty(ctx context.Context, difficulty models.LearningDifficulty) (int, error) {
	var count int64
	if err := c.db.WithContext(ctx).
		Model(&models.Chapter{}).
		Where("difficulty_type = ? AND is_active = true", difficulty).
		Count(&count).Error; err != nil {
		return 0, err
	}

	return int(count), nil
}
