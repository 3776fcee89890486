package repositories

import (
	"time"

	"github.com/yububu-edu/progress-service/internal/models"
)

// ===== SHARED FILTER STRUCTS =====

type ProgressFilters struct {
	Completed *bool      `json:"completed"`
	DateFrom  *time.Time `json:"date_from"`
	DateTo    *time.Time `json:"date_to"`
	Limit     int        `json:"limit"`
	Offset    int        `json:"offset"`
	SortBy    string     `json:"sort_by"`    // "updated_at", "score", "attempts"
	SortOrder string     `json:"sort_order"` // "asc", "desc"
}

type ChapterFilters struct {
	DifficultyType  *models.LearningDifficulty `json:"difficulty_type"`
	DifficultyLevel *models.DifficultyLevel    `json:"difficulty_level"`
	ActiveOnly      bool                       `json:"active_only"`
	Limit           int                        `json:"limit"`
	Offset          int                        `json:"offset"`
}

// ===== SHARED STATISTICS STRUCTS =====

// ProgressAnalytics is the read-only rollup over all progress records of
// one student. Rates and averages are rounded to one decimal.
type ProgressAnalytics struct {
	TotalAttempted   int     `json:"total_chapters_attempted"`
	TotalCompleted   int     `json:"total_chapters_completed"`
	CompletionRate   float64 `json:"completion_rate"`
	AverageScore     float64 `json:"average_score"`
	BestScore        int     `json:"best_score"`
	TotalTimeSeconds int     `json:"total_time_spent_seconds"`
	TotalTimeMinutes float64 `json:"total_time_spent_minutes"`
	TotalAttempts    int     `json:"total_attempts"`
}

// StudentScore is a leaderboard row.
type StudentScore struct {
	StudentID  string `json:"student_id"`
	TotalScore int    `json:"total_score"`
}
