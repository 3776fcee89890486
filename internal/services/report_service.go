package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"github.com/yububu-edu/progress-service/internal/repositories"
)

// ReportService exports a student's progress as a downloadable workbook for
// parents and teachers.
type ReportService interface {
	ExportStudentReportExcel(ctx context.Context, studentID uuid.UUID) ([]byte, error)
}

type reportService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewReportService(repo repositories.Repository, logger *slog.Logger) ReportService {
	return &reportService{
		repo:   repo,
		logger: logger,
	}
}

// ExportStudentReportExcel builds a two-sheet workbook: one progress row per
// chapter attempted, plus a summary sheet with the analytics rollup.
func (s *reportService) ExportStudentReportExcel(ctx context.Context, studentID uuid.UUID) ([]byte, error) {
	profile, err := s.repo.StudentProfile().GetByID(ctx, studentID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to get student profile: %w", err)
	}

	records, _, err := s.repo.Progress().ListByStudent(ctx, studentID, repositories.ProgressFilters{})
	if err != nil {
		return nil, fmt.Errorf("failed to list progress: %w", err)
	}

	analytics, err := s.repo.Progress().GetAnalytics(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get analytics: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const progressSheet = "Progress"
	f.SetSheetName("Sheet1", progressSheet)

	headers := []string{"Chapter", "Track", "Completed", "Best Score", "Attempts", "Time (min)", "Completed At"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(progressSheet, cell, header)
	}

	for i, record := range records {
		row := i + 2

		chapterTitle := record.ChapterID.String()
		track := ""
		if chapter, err := s.repo.Chapter().GetByID(ctx, record.ChapterID); err == nil {
			chapterTitle = chapter.Title
			track = string(chapter.DifficultyType)
		} else {
			s.logger.Warn("Chapter lookup failed for report", "chapter_id", record.ChapterID, "error", err)
		}

		completedAt := ""
		if record.CompletedAt != nil {
			completedAt = record.CompletedAt.Format("2006-01-02 15:04")
		}

		values := []interface{}{
			chapterTitle,
			track,
			record.Completed,
			record.Score,
			record.Attempts,
			float64(record.TimeSpentSeconds) / 60,
			completedAt,
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(progressSheet, cell, value)
		}
	}

	const summarySheet = "Summary"
	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, fmt.Errorf("failed to create summary sheet: %w", err)
	}

	summary := [][]interface{}{
		{"Learning difficulty", string(profile.LearningDifficulty)},
		{"Level", profile.CurrentLevel},
		{"Total score", profile.TotalScore},
		{"Streak days", profile.StreakDays},
		{"Chapters attempted", analytics.TotalAttempted},
		{"Chapters completed", analytics.TotalCompleted},
		{"Completion rate (%)", analytics.CompletionRate},
		{"Average score", analytics.AverageScore},
		{"Best score", analytics.BestScore},
		{"Total time (min)", analytics.TotalTimeMinutes},
		{"Total attempts", analytics.TotalAttempts},
	}
	for i, pair := range summary {
		keyCell, _ := excelize.CoordinatesToCellName(1, i+1)
		valueCell, _ := excelize.CoordinatesToCellName(2, i+1)
		f.SetCellValue(summarySheet, keyCell, pair[0])
		f.SetCellValue(summarySheet, valueCell, pair[1])
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	s.logger.Info("Student report exported",
		"student_id", studentID,
		"rows", len(records))

	return buf.Bytes(), nil
}
