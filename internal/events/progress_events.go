package events

import (
	"time"

	"github.com/google/uuid"
)

// ProgressEventType identifies the kind of progress event
type ProgressEventType string

const (
	EventChapterCompleted ProgressEventType = "chapter_completed"
	EventBadgeAwarded     ProgressEventType = "badge_awarded"
	EventLevelUp          ProgressEventType = "level_up"
)

// ProgressEvent is the envelope for all events published by this service
type ProgressEvent struct {
	ID        string            `json:"id"`
	Type      ProgressEventType `json:"type"`
	Source    string            `json:"source"`
	Version   string            `json:"version"`
	Timestamp time.Time         `json:"timestamp"`
	Data      interface{}       `json:"data"`
}

// NewProgressEvent creates an event envelope with the service defaults
func NewProgressEvent(eventType ProgressEventType, data interface{}) *ProgressEvent {
	return &ProgressEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Source:    "progress-service",
		Version:   "1.0",
		Timestamp: time.Now().UTC(),
		Data:      data,
	}
}

// ChapterCompletedEvent is emitted for every recorded attempt that passed
type ChapterCompletedEvent struct {
	StudentID       string `json:"student_id"`
	ChapterID       string `json:"chapter_id"`
	Score           int    `json:"score"`
	PointsEarned    int    `json:"points_earned"`
	IsNewCompletion bool   `json:"is_new_completion"`
	StreakDays      int    `json:"streak_days"`
}

// BadgeAwardedEvent is emitted once per newly earned badge
type BadgeAwardedEvent struct {
	StudentID string `json:"student_id"`
	BadgeType string `json:"badge_type"`
	Title     string `json:"title"`
}

// LevelUpEvent is emitted when a score update crosses a level boundary
type LevelUpEvent struct {
	StudentID     string `json:"student_id"`
	PreviousLevel int    `json:"previous_level"`
	CurrentLevel  int    `json:"current_level"`
	TotalScore    int    `json:"total_score"`
}
