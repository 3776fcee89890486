package models

import (
	"time"

	"github.com/google/uuid"
)

type BadgeType string

const (
	BadgeFirstChapter BadgeType = "first_chapter"
	BadgePerfectScore BadgeType = "perfect_score"
	BadgeStreak3      BadgeType = "streak_3"
	BadgeStreak7      BadgeType = "streak_7"
	BadgeStreak30     BadgeType = "streak_30"
	BadgeLevelUp      BadgeType = "level_up"
	BadgeSpeedDemon   BadgeType = "speed_demon"
	BadgePersistent   BadgeType = "persistent"
	BadgeExplorer     BadgeType = "explorer"
	BadgeMaster       BadgeType = "master"
)

// AllBadgeTypes lists the full badge catalog in evaluation order.
var AllBadgeTypes = []BadgeType{
	BadgeFirstChapter,
	BadgePerfectScore,
	BadgeStreak3,
	BadgeStreak7,
	BadgeStreak30,
	BadgeLevelUp,
	BadgeSpeedDemon,
	BadgePersistent,
	BadgeExplorer,
	BadgeMaster,
}

// Badge is a one-time achievement grant. The (student_id, badge_type)
// unique index is what makes awards at-most-once under concurrency.
type Badge struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StudentID uuid.UUID `json:"student_id" gorm:"type:uuid;not null;uniqueIndex:idx_badge_student_type;index"`
	BadgeType BadgeType `json:"badge_type" gorm:"not null;size:30;uniqueIndex:idx_badge_student_type" validate:"required,badge_type"`

	Title       string    `json:"title" gorm:"not null;size:100"`
	Description string    `json:"description" gorm:"size:300"`
	Icon        string    `json:"icon" gorm:"size:10"`
	EarnedAt    time.Time `json:"earned_at" gorm:"autoCreateTime"`
}

func (Badge) TableName() string {
	return "badges"
}
