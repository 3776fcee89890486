package postgres

import (
	"context"

	"github.com/yububu-edu/progress-service/internal/repositories"
	"gorm.io/gorm"
)

type gormRepository struct {
	db             *gorm.DB
	progress       repositories.ProgressRepository
	studentProfile repositories.StudentProfileRepository
	badge          repositories.BadgeRepository
	chapter        repositories.ChapterRepository
}

func NewRepository(db *gorm.DB) repositories.Repository {
	return &gormRepository{
		db:             db,
		progress:       NewProgressPostgreSQL(db),
		studentProfile: NewStudentProfilePostgreSQL(db),
		badge:          NewBadgePostgreSQL(db),
		chapter:        NewChapterPostgreSQL(db),
	}
}

func (r *gormRepository) Progress() repositories.ProgressRepository {
	return r.progress
}

func (r *gormRepository) StudentProfile() repositories.StudentProfileRepository {
	return r.studentProfile
}

func (r *gormRepository) Badge() repositories.BadgeRepository {
	return r.badge
}

func (r *gormRepository) Chapter() repositories.ChapterRepository {
	return r.chapter
}

func (r *gormRepository) WithTx(ctx context.Context, fn func(repositories.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}
