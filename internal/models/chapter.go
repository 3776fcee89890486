package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ActivityType string

const (
	ActivityWordRecognition ActivityType = "word_recognition"
	ActivityLetterMatching  ActivityType = "letter_matching"
	ActivityReadingExercise ActivityType = "reading_exercise"
	ActivityPhonicsGame     ActivityType = "phonics_game"
	ActivityStepByStep      ActivityType = "step_by_step"
	ActivityPatternMatch    ActivityType = "pattern_recognition"
	ActivityNumberLine      ActivityType = "number_line"
	ActivityVisualMath      ActivityType = "visual_math"
	ActivityQuickChallenge  ActivityType = "quick_challenge"
	ActivityFocusExercise   ActivityType = "focus_exercise"
)

// DifficultyLevel ranges from 1 (beginner) to 5 (advanced).
type DifficultyLevel int

const (
	LevelBeginner DifficultyLevel = 1
	LevelEasy     DifficultyLevel = 2
	LevelMedium   DifficultyLevel = 3
	LevelHard     DifficultyLevel = 4
	LevelAdvanced DifficultyLevel = 5
)

// Chapter is a learning unit belonging to one difficulty track. The
// progress engine only reads MinScoreToPass, ExpectedDurationMinutes and
// DifficultyType from it.
type Chapter struct {
	ID             uuid.UUID          `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DifficultyType LearningDifficulty `json:"difficulty_type" gorm:"not null;size:20;index" validate:"required,learning_difficulty"`
	ChapterNumber  int                `json:"chapter_number" gorm:"not null" validate:"required,min=1"`
	Title          string             `json:"title" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Description    string             `json:"description" gorm:"type:text" validate:"omitempty,max=1000"`

	ContentConfig datatypes.JSON  `json:"content_config" gorm:"type:jsonb"`
	ActivityType  ActivityType    `json:"activity_type" gorm:"size:40"`
	DifficultyLevel DifficultyLevel `json:"difficulty_level" gorm:"default:1" validate:"omitempty,min=1,max=5"`

	ExpectedDurationMinutes int  `json:"expected_duration_minutes" gorm:"default:15" validate:"omitempty,min=1,max=120"`
	MinScoreToPass          int  `json:"min_score_to_pass" gorm:"default:60" validate:"omitempty,min=0,max=100"`
	IsActive                bool `json:"is_active" gorm:"default:true"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Chapter) TableName() string {
	return "chapters"
}

// ExpectedDurationSeconds converts the configured duration for speed bonus math.
func (c *Chapter) ExpectedDurationSeconds() int {
	return c.ExpectedDurationMinutes * 60
}
