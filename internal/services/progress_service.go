package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/yububu-edu/progress-service/internal/cache"
	"github.com/yububu-edu/progress-service/internal/events"
	"github.com/yububu-edu/progress-service/internal/models"
	"github.com/yububu-edu/progress-service/internal/repositories"
	"github.com/yububu-edu/progress-service/internal/validator"
)

const analyticsCacheTTL = 5 * time.Minute

// ProgressService records chapter completion attempts and serves progress
// reads. It is the single writer of student score, level and streak state.
type ProgressService interface {
	CompleteChapter(ctx context.Context, req *CompleteChapterRequest) (*CompletionResult, error)
	GetStudentProgress(ctx context.Context, studentID uuid.UUID, filters repositories.ProgressFilters) ([]*models.Progress, int64, error)
	GetAnalytics(ctx context.Context, studentID uuid.UUID) (*StudentAnalytics, error)
}

type CompleteChapterRequest struct {
	StudentID        uuid.UUID `json:"student_id" validate:"required"`
	ChapterID        uuid.UUID `json:"chapter_id" validate:"required"`
	Score            int       `json:"score" validate:"min=0,max=100"`
	TimeSpentSeconds int       `json:"time_spent_seconds" validate:"min=0"`
}

// CompletionResult is the composite outcome of one recorded attempt.
type CompletionResult struct {
	ProgressID      uuid.UUID       `json:"progress_id"`
	Completed       bool            `json:"completed"`
	Score           int             `json:"score"`
	Attempts        int             `json:"attempts"`
	Breakdown       ScoreBreakdown  `json:"breakdown"`
	IsNewCompletion bool            `json:"is_new_completion"`
	StreakDays      int             `json:"streak_days"`
	CurrentLevel    int             `json:"current_level"`
	TotalScore      int             `json:"total_score"`
	NewBadges       []*models.Badge `json:"new_badges"`
}

// StudentAnalytics combines the progress rollup with profile counters.
type StudentAnalytics struct {
	repositories.ProgressAnalytics
	Level              int                       `json:"level"`
	TotalScore         int                       `json:"total_score"`
	StreakDays         int                       `json:"streak_days"`
	LearningDifficulty models.LearningDifficulty `json:"learning_difficulty"`
}

type progressService struct {
	repo         repositories.Repository
	gamification GamificationService
	cache        cache.CacheService
	publisher    events.EventPublisher
	logger       *slog.Logger
	validator    *validator.Validator
}

func NewProgressService(
	repo repositories.Repository,
	gamification GamificationService,
	cacheService cache.CacheService,
	publisher events.EventPublisher,
	logger *slog.Logger,
	validator *validator.Validator,
) ProgressService {
	return &progressService{
		repo:         repo,
		gamification: gamification,
		cache:        cacheService,
		publisher:    publisher,
		logger:       logger,
		validator:    validator,
	}
}

// CompleteChapter records one attempt against a (student, chapter) pair.
//
// Unknown students or chapters fail before any write. Every recorded
// attempt bumps the attempt counter, the cumulative time and the daily
// streak; score, level and badges only move on the first passing attempt.
func (s *progressService) CompleteChapter(ctx context.Context, req *CompleteChapterRequest) (*CompletionResult, error) {
	s.logger.Info("Recording chapter attempt",
		"student_id", req.StudentID,
		"chapter_id", req.ChapterID,
		"score", req.Score)

	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	chapter, err := s.repo.Chapter().GetByID(ctx, req.ChapterID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrChapterNotFound
		}
		return nil, fmt.Errorf("failed to get chapter: %w", err)
	}
	if !chapter.IsActive {
		return nil, ErrChapterInactive
	}

	profile, err := s.repo.StudentProfile().GetByID(ctx, req.StudentID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to get student profile: %w", err)
	}

	now := time.Now().UTC()
	breakdown := ComputePoints(req.Score, chapter.MinScoreToPass, req.TimeSpentSeconds, chapter.ExpectedDurationSeconds())

	// The streak is computed from the profile as it was before this
	// attempt; engagement counts whether or not the attempt passed.
	newStreak := NextStreak(profile.LastActivityDate, profile.StreakDays, now)

	var progress *models.Progress
	var isNewCompletion bool
	currentLevel := profile.CurrentLevel
	previousLevel := profile.CurrentLevel
	totalScore := profile.TotalScore

	err = s.repo.WithTx(ctx, func(txRepo repositories.Repository) error {
		progress, isNewCompletion, err = s.upsertProgress(ctx, txRepo, req, chapter, now)
		if err != nil {
			return err
		}

		if isNewCompletion && breakdown.Total > 0 {
			updated, err := txRepo.StudentProfile().UpdateScore(ctx, req.StudentID, breakdown.Total)
			if err != nil {
				return fmt.Errorf("failed to update score: %w", err)
			}
			currentLevel = updated.CurrentLevel
			previousLevel = updated.PreviousLevel
			totalScore = updated.TotalScore
		}

		if _, err := txRepo.StudentProfile().UpdateStreak(ctx, req.StudentID, newStreak); err != nil {
			return fmt.Errorf("failed to update streak: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	badgeCtx := BadgeContext{
		RawScore:                req.Score,
		Attempts:                progress.Attempts,
		TimeSpentSeconds:        req.TimeSpentSeconds,
		ExpectedDurationSeconds: chapter.ExpectedDurationSeconds(),
		StreakDays:              newStreak,
		CurrentLevel:            currentLevel,
		PreviousLevel:           previousLevel,
		LearningDifficulty:      profile.LearningDifficulty,
	}
	newBadges, err := s.gamification.CheckAndAwardBadges(ctx, req.StudentID, badgeCtx)
	if err != nil {
		// Badge evaluation is isolated from the attempt itself.
		s.logger.Error("Badge evaluation failed", "student_id", req.StudentID, "error", err)
		newBadges = nil
	}

	s.invalidateStudentCaches(ctx, req.StudentID)
	passed := req.Score >= chapter.MinScoreToPass
	s.publishAttemptEvents(ctx, req, passed, breakdown, isNewCompletion, newStreak, currentLevel, previousLevel, totalScore, newBadges)

	s.logger.Info("Chapter attempt recorded",
		"student_id", req.StudentID,
		"chapter_id", req.ChapterID,
		"points", breakdown.Total,
		"new_completion", isNewCompletion)

	return &CompletionResult{
		ProgressID:      progress.ID,
		Completed:       progress.Completed,
		Score:           progress.Score,
		Attempts:        progress.Attempts,
		Breakdown:       breakdown,
		IsNewCompletion: isNewCompletion,
		StreakDays:      newStreak,
		CurrentLevel:    currentLevel,
		TotalScore:      totalScore,
		NewBadges:       newBadges,
	}, nil
}

// upsertProgress creates or mutates the unique per-pair progress record and
// reports whether this attempt is the pair's first pass.
func (s *progressService) upsertProgress(ctx context.Context, txRepo repositories.Repository, req *CompleteChapterRequest, chapter *models.Chapter, now time.Time) (*models.Progress, bool, error) {
	passed := req.Score >= chapter.MinScoreToPass

	progress, err := txRepo.Progress().GetByStudentAndChapter(ctx, req.StudentID, req.ChapterID)
	if err != nil {
		if !repositories.IsNotFoundError(err) {
			return nil, false, fmt.Errorf("failed to get progress: %w", err)
		}

		progress = &models.Progress{
			StudentID:        req.StudentID,
			ChapterID:        req.ChapterID,
			Completed:        passed,
			Score:            req.Score,
			Attempts:         1,
			TimeSpentSeconds: req.TimeSpentSeconds,
		}
		if passed {
			progress.CompletedAt = &now
		}
		if err := txRepo.Progress().Create(ctx, progress); err != nil {
			return nil, false, fmt.Errorf("failed to create progress: %w", err)
		}

		return progress, passed, nil
	}

	wasCompleted := progress.Completed
	if passed {
		progress.MarkCompleted(req.Score, req.TimeSpentSeconds, now)
	} else {
		progress.AddAttempt(req.Score, req.TimeSpentSeconds)
	}
	if err := txRepo.Progress().Update(ctx, progress); err != nil {
		return nil, false, fmt.Errorf("failed to update progress: %w", err)
	}

	return progress, passed && !wasCompleted, nil
}

func (s *progressService) GetStudentProgress(ctx context.Context, studentID uuid.UUID, filters repositories.ProgressFilters) ([]*models.Progress, int64, error) {
	if _, err := s.repo.StudentProfile().GetByID(ctx, studentID); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, 0, ErrStudentNotFound
		}
		return nil, 0, fmt.Errorf("failed to get student profile: %w", err)
	}

	records, total, err := s.repo.Progress().ListByStudent(ctx, studentID, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list progress: %w", err)
	}

	return records, total, nil
}

func (s *progressService) GetAnalytics(ctx context.Context, studentID uuid.UUID) (*StudentAnalytics, error) {
	cacheKey := analyticsCacheKey(studentID)

	var cached StudentAnalytics
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
		return &cached, nil
	}

	profile, err := s.repo.StudentProfile().GetByID(ctx, studentID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to get student profile: %w", err)
	}

	rollup, err := s.repo.Progress().GetAnalytics(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get analytics: %w", err)
	}

	analytics := &StudentAnalytics{
		ProgressAnalytics:  *rollup,
		Level:              profile.CurrentLevel,
		TotalScore:         profile.TotalScore,
		StreakDays:         profile.StreakDays,
		LearningDifficulty: profile.LearningDifficulty,
	}

	if err := s.cache.Set(ctx, cacheKey, analytics, analyticsCacheTTL); err != nil {
		s.logger.Warn("Failed to cache analytics", "student_id", studentID, "error", err)
	}

	return analytics, nil
}

// invalidateStudentCaches is best effort; a brief stale-read window after a
// completion is accepted.
func (s *progressService) invalidateStudentCaches(ctx context.Context, studentID uuid.UUID) {
	for _, pattern := range []string{
		fmt.Sprintf("student_profile:%s*", studentID),
		fmt.Sprintf("progress:%s*", studentID),
	} {
		if err := s.cache.DeletePattern(ctx, pattern); err != nil {
			s.logger.Warn("Cache invalidation failed", "pattern", pattern, "error", err)
		}
	}
}

func (s *progressService) publishAttemptEvents(
	ctx context.Context,
	req *CompleteChapterRequest,
	passed bool,
	breakdown ScoreBreakdown,
	isNewCompletion bool,
	streakDays, currentLevel, previousLevel, totalScore int,
	newBadges []*models.Badge,
) {
	if passed {
		s.publish(ctx, events.NewProgressEvent(events.EventChapterCompleted, events.ChapterCompletedEvent{
			StudentID:       req.StudentID.String(),
			ChapterID:       req.ChapterID.String(),
			Score:           req.Score,
			PointsEarned:    breakdown.Total,
			IsNewCompletion: isNewCompletion,
			StreakDays:      streakDays,
		}))
	}

	if currentLevel > previousLevel {
		s.publish(ctx, events.NewProgressEvent(events.EventLevelUp, events.LevelUpEvent{
			StudentID:     req.StudentID.String(),
			PreviousLevel: previousLevel,
			CurrentLevel:  currentLevel,
			TotalScore:    totalScore,
		}))
	}

	for _, badge := range newBadges {
		s.publish(ctx, events.NewProgressEvent(events.EventBadgeAwarded, events.BadgeAwardedEvent{
			StudentID: req.StudentID.String(),
			BadgeType: string(badge.BadgeType),
			Title:     badge.Title,
		}))
	}
}

// publish is fire and forget; event delivery never fails an attempt.
func (s *progressService) publish(ctx context.Context, event *events.ProgressEvent) {
	if err := s.publisher.PublishProgressEvent(ctx, event); err != nil {
		s.logger.Warn("Failed to publish event", "event_type", event.Type, "error", err)
	}
}

func analyticsCacheKey(studentID uuid.UUID) string {
	return fmt.Sprintf("progress:%s:analytics", studentID)
}
