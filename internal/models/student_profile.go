package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type LearningDifficulty string

const (
	DifficultyDyslexia    LearningDifficulty = "dyslexia"
	DifficultyAutism      LearningDifficulty = "autism"
	DifficultyDyscalculia LearningDifficulty = "dyscalculia"
	DifficultyADHD        LearningDifficulty = "adhd"
)

// StudentProfile holds a student's learning profile together with the
// gamification counters owned by the progress engine: total score, level,
// streak and last activity date.
type StudentProfile struct {
	ID                 uuid.UUID          `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID             uuid.UUID          `json:"user_id" gorm:"type:uuid;not null;uniqueIndex"`
	Age                int                `json:"age" gorm:"default:0" validate:"omitempty,min=3,max=18"`
	LearningDifficulty LearningDifficulty `json:"learning_difficulty" gorm:"not null;size:20;index" validate:"required,learning_difficulty"`

	// Gamification counters. TotalScore never decreases; CurrentLevel is
	// derived from it (500 points per level). PreviousLevel is the level
	// before the most recent score update and drives level-up detection.
	TotalScore    int `json:"total_score" gorm:"default:0"`
	CurrentLevel  int `json:"current_level" gorm:"default:1"`
	PreviousLevel int `json:"previous_level" gorm:"default:1"`

	StreakDays       int        `json:"streak_days" gorm:"default:0"`
	LastActivityDate *time.Time `json:"last_activity_date"`

	Preferences datatypes.JSON `json:"preferences" gorm:"type:jsonb"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (StudentProfile) TableName() string {
	return "student_profiles"
}

// LevelForScore derives the level tier from a cumulative score: every 500
// points is one level, floor of level 1. Total function, no failure modes.
func LevelForScore(totalScore int) int {
	level := totalScore/500 + 1
	if level < 1 {
		level = 1
	}
	return level
}

// CalculateLevel returns the level implied by the profile's total score.
func (p *StudentProfile) CalculateLevel() int {
	return LevelForScore(p.TotalScore)
}
