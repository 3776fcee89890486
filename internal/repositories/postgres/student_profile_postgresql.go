package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/yububu-edu/progress-service/internal/models"
	"github.com/yububu-edu/progress-service/internal/repositories"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StudentProfilePostgreSQL struct {
	db *gorm.DB
}

func NewStudentProfilePostgreSQL(db *gorm.DB) repositories.StudentProfileRepository {
	return &StudentProfilePostgreSQL{db: db}
}

func (s StudentProfilePostgreSQL) Create(ctx context.Context, profile *models.StudentProfile) error {
	return s.db.WithContext(ctx).Create(profile).Error
}

func (s StudentProfilePostgreSQL) GetByID(ctx context.Context, id uuid.UUID) (*models.StudentProfile, error) {
	var profile models.StudentProfile
	if err := s.db.WithContext(ctx).First(&profile, "id = ?", id).Error; err != nil {
		return nil, err
	}

	return &profile, nil
}

func (s StudentProfilePostgreSQL) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.StudentProfile, error) {
	var profile models.StudentProfile
	if err := s.db.WithContext(ctx).First(&profile, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}

	return &profile, nil
}

func (s StudentProfilePostgreSQL) Update(ctx context.Context, profile *models.StudentProfile) error {
	return s.db.WithContext(ctx).Save(profile).Error
}

func (s StudentProfilePostgreSQL) ListByDifficulty(ctx context.Context, difficulty models.LearningDifficulty, limit, offset int) ([]*models.StudentProfile, error) {
	var profiles []*models.StudentProfile
	query := s.db.WithContext(ctx).
		Where("learning_difficulty = ?", difficulty).
		Order("total_score DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&profiles).Error; err != nil {
		return nil, err
	}

	return profiles, nil
}

// UpdateScore is read-modify-write inside one transaction so the level
// snapshot and the score delta stay consistent under concurrent attempts.
func (s StudentProfilePostgreSQL) UpdateScore(ctx context.Context, id uuid.UUID, delta int) (*models.StudentProfile, error) {
	var updated models.StudentProfile

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var profile models.StudentProfile
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&profile, "id = ?", id).Error; err != nil {
			return err
		}

		now := time.Now().UTC()
		profile.PreviousLevel = profile.CurrentLevel
		profile.TotalScore += delta
		profile.CurrentLevel = models.LevelForScore(profile.TotalScore)
		profile.LastActivityDate = &now

		if err := tx.Save(&profile).Error; err != nil {
			return err
		}

		updated = profile
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (s StudentProfilePostgreSQL) UpdateStreak(ctx context.Context, id uuid.UUID, streakDays int) (*models.StudentProfile, error) {
	now := time.Now().UTC()
	result := s.db.WithContext(ctx).
		Model(&models.StudentProfile{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"streak_days":        streakDays,
			"last_activity_date": now,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return s.GetByID(ctx, id)
}

func (s StudentProfilePostgreSQL) GetTotalScores(ctx context.Context) ([]repositories.StudentScore, error) {
	var scores []repositories.StudentScore
	if err := s.db.WithContext(ctx).
		Model(&models.StudentProfile{}).
		Select("id::text AS student_id, total_score").
		Order("total_score DESC").
		Scan(&scores).Error; err != nil {
		return nil, err
	}

	return scores, nil
}
