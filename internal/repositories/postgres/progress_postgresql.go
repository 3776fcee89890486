package postgres

import (
	"context"
	"math"

	"github.com/google/uuid"
	"github.com/yububu-edu/progress-service/internal/models"
	"github.com/yububu-edu/progress-service/internal/repositories"
	"gorm.io/gorm"
)

type ProgressPostgreSQL struct {
	db *gorm.DB
}

func NewProgressPostgreSQL(db *gorm.DB) repositories.ProgressRepository {
	return &ProgressPostgreSQL{db: db}
}

func (p ProgressPostgreSQL) Create(ctx context.Context, progress *models.Progress) error {
	return p.db.WithContext(ctx).Create(progress).Error
}

func (p ProgressPostgreSQL) GetByID(ctx context.Context, id uuid.UUID) (*models.Progress, error) {
	var progress models.Progress
	if err := p.db.WithContext(ctx).First(&progress, "id = ?", id).Error; err != nil {
		return nil, err
	}

	return &progress, nil
}

func (p ProgressPostgreSQL) GetByStudentAndChapter(ctx context.Context, studentID, chapterID uuid.UUID) (*models.Progress, error) {
	var progress models.Progress
	if err := p.db.WithContext(ctx).
		Where("student_id = ? AND chapter_id = ?", studentID, chapterID).
		First(&progress).Error; err != nil {
		return nil, err
	}

	return &progress, nil
}

func (p ProgressPostgreSQL) Update(ctx context.Context, progress *models.Progress) error {
	return p.db.WithContext(ctx).Save(progress).Error
}

func (p ProgressPostgreSQL) ListByStudent(ctx context.Context, studentID uuid.UUID, filters repositories.ProgressFilters) ([]*models.Progress, int64, error) {
	var records []*models.Progress
	var total int64

	query := p.db.WithContext(ctx).Model(&models.Progress{}).Where("student_id = ?", studentID)
	query = p.applyFilters(query, filters)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = p.applyPaginationAndSort(query, filters)

	if err := query.Find(&records).Error; err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

func (p ProgressPostgreSQL) GetCompletedCount(ctx context.Context, studentID uuid.UUID) (int, error) {
	var count int64
	if err := p.db.WithContext(ctx).
		Model(&models.Progress{}).
		Where("student_id = ? AND completed = true", studentID).
		Count(&count).Error; err != nil {
		return 0, err
	}

	return int(count), nil
}

func (p ProgressPostgreSQL) GetCompletedCountByDifficulty(ctx context.Context, studentID uuid.UUID, difficulty models.LearningDifficulty) (int, error) {
	var count int64
	if err := p.db.WithContext(ctx).
		Model(&models.Progress{}).
		Joins("JOIN chapters ON chapters.id = progress_records.chapter_id").
		Where("progress_records.student_id = ? AND progress_records.completed = true AND chapters.difficulty_type = ?", studentID, difficulty).
		Count(&count).Error; err != nil {
		return 0, err
	}

	return int(count), nil
}

func (p ProgressPostgreSQL) GetAnalytics(ctx context.Context, studentID uuid.UUID) (*repositories.ProgressAnalytics, error) {
	var row struct {
		TotalAttempted   int64
		TotalCompleted   int64
		AverageScore     float64
		BestScore        int64
		TotalTimeSeconds int64
		TotalAttempts    int64
	}

	err := p.db.WithContext(ctx).
		Model(&models.Progress{}).
		Where("student_id = ?", studentID).
		Select(`COUNT(*) AS total_attempted,
			COUNT(*) FILTER (WHERE completed) AS total_completed,
			COALESCE(AVG(score) FILTER (WHERE score > 0), 0) AS average_score,
			COALESCE(MAX(score), 0) AS best_score,
			COALESCE(SUM(time_spent_seconds), 0) AS total_time_seconds,
			COALESCE(SUM(attempts), 0) AS total_attempts`).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}

	analytics := &repositories.ProgressAnalytics{
		TotalAttempted:   int(row.TotalAttempted),
		TotalCompleted:   int(row.TotalCompleted),
		AverageScore:     roundTo1(row.AverageScore),
		BestScore:        int(row.BestScore),
		TotalTimeSeconds: int(row.TotalTimeSeconds),
		TotalTimeMinutes: roundTo1(float64(row.TotalTimeSeconds) / 60),
		TotalAttempts:    int(row.TotalAttempts),
	}
	if row.TotalAttempted > 0 {
		analytics.CompletionRate = roundTo1(float64(row.TotalCompleted) / float64(row.TotalAttempted) * 100)
	}

	return analytics, nil
}

func roundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}

func (p ProgressPostgreSQL) applyFilters(query *gorm.DB, filters repositories.ProgressFilters) *gorm.DB {
	if filters.Completed != nil {
		query = query.Where("completed = ?", *filters.Completed)
	}
	if filters.DateFrom != nil {
		query = query.Where("updated_at >= ?", *filters.DateFrom)
	}
	if filters.DateTo != nil {
		query = query.Where("updated_at <= ?", *filters.DateTo)
	}
	return query
}

func (p ProgressPostgreSQL) applyPaginationAndSort(query *gorm.DB, filters repositories.ProgressFilters) *gorm.DB {
	sortBy := filters.SortBy
	switch sortBy {
	case "score", "attempts", "updated_at":
	default:
		sortBy = "updated_at"
	}

	order := "desc"
	if filters.SortOrder == "asc" {
		order = "asc"
	}
	query = query.Order(sortBy + " " + order)

	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}
	return query
}
