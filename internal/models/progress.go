package models

import (
	"time"

	"github.com/google/uuid"
)

// Progress is the unique per-(student, chapter) record. Score keeps the
// best raw score ever submitted, Attempts counts every recorded attempt and
// TimeSpentSeconds accumulates across attempts. Completed flips to true at
// most once; CompletedAt is refreshed on later passing attempts.
type Progress struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StudentID uuid.UUID `json:"student_id" gorm:"type:uuid;not null;uniqueIndex:idx_progress_student_chapter;index"`
	ChapterID uuid.UUID `json:"chapter_id" gorm:"type:uuid;not null;uniqueIndex:idx_progress_student_chapter"`

	Completed        bool       `json:"completed" gorm:"default:false"`
	Score            int        `json:"score" gorm:"default:0" validate:"omitempty,min=0,max=100"`
	Attempts         int        `json:"attempts" gorm:"default:0"`
	TimeSpentSeconds int        `json:"time_spent_seconds" gorm:"default:0"`
	CompletedAt      *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Student StudentProfile `json:"-" gorm:"foreignKey:StudentID"`
	Chapter Chapter        `json:"-" gorm:"foreignKey:ChapterID"`
}

func (Progress) TableName() string {
	return "progress_records"
}

// MarkCompleted records a passing attempt, keeping the best score.
func (p *Progress) MarkCompleted(score, timeSpent int, now time.Time) {
	p.Completed = true
	if score > p.Score {
		p.Score = score
	}
	p.Attempts++
	p.TimeSpentSeconds += timeSpent
	p.CompletedAt = &now
}

// AddAttempt records a failing attempt without touching completion state.
func (p *Progress) AddAttempt(score, timeSpent int) {
	if score > p.Score {
		p.Score = score
	}
	p.Attempts++
	p.TimeSpentSeconds += timeSpent
}

// AverageTimePerAttempt returns the mean seconds spent per attempt.
func (p *Progress) AverageTimePerAttempt() float64 {
	if p.Attempts == 0 {
		return 0
	}
	return float64(p.TimeSpentSeconds) / float64(p.Attempts)
}
