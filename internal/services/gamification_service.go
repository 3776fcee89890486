package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"
	"github.com/yububu-edu/progress-service/internal/models"
	"github.com/yububu-edu/progress-service/internal/repositories"
)

// GamificationService evaluates badge awards and leaderboard standing.
type GamificationService interface {
	// CheckAndAwardBadges evaluates the full badge catalog against the
	// given attempt context and persists any newly earned badges. Each
	// badge is awarded at most once per student.
	CheckAndAwardBadges(ctx context.Context, studentID uuid.UUID, bctx BadgeContext) ([]*models.Badge, error)

	GetStudentBadges(ctx context.Context, studentID uuid.UUID) ([]*models.Badge, error)
	GetLeaderboardPosition(ctx context.Context, studentID uuid.UUID) (int, error)
}

// BadgeContext carries the freshly updated counters of one completion
// attempt, so predicates never re-read state the caller already has.
type BadgeContext struct {
	RawScore                int
	Attempts                int
	TimeSpentSeconds        int
	ExpectedDurationSeconds int
	StreakDays              int
	CurrentLevel            int
	PreviousLevel           int
	LearningDifficulty      models.LearningDifficulty
}

type badgeDefinition struct {
	Title       string
	Description string
	Icon        string
}

// badgeDefinitions is the static badge catalog. Read-only; never mutated at
// runtime.
var badgeDefinitions = map[models.BadgeType]badgeDefinition{
	models.BadgeFirstChapter: {
		Title:       "İlk Adım! 🎉",
		Description: "İlk bölümünü tamamladın!",
		Icon:        "🎉",
	},
	models.BadgePerfectScore: {
		Title:       "Mükemmel Puan! 💯",
		Description: "Bir bölümde 100 puan aldın!",
		Icon:        "💯",
	},
	models.BadgeStreak3: {
		Title:       "3 Gün Serisi! 🔥",
		Description: "3 gün arka arkaya çalıştın!",
		Icon:        "🔥",
	},
	models.BadgeStreak7: {
		Title:       "Haftalık Kahraman! 🌟",
		Description: "7 gün arka arkaya çalıştın!",
		Icon:        "🌟",
	},
	models.BadgeStreak30: {
		Title:       "Aylık Şampiyon! 👑",
		Description: "30 gün arka arkaya çalıştın!",
		Icon:        "👑",
	},
	models.BadgeLevelUp: {
		Title:       "Seviye Atladın! ⬆️",
		Description: "Yeni bir seviyeye ulaştın!",
		Icon:        "⬆️",
	},
	models.BadgeSpeedDemon: {
		Title:       "Hız Canavarı! ⚡",
		Description: "Bir bölümü beklenen sürenin yarısında tamamladın!",
		Icon:        "⚡",
	},
	models.BadgePersistent: {
		Title:       "Vazgeçmeyen! 💪",
		Description: "Bir bölümü 3'ten fazla denemede tamamladın!",
		Icon:        "💪",
	},
	models.BadgeExplorer: {
		Title:       "Kaşif! 🗺️",
		Description: "5 farklı bölümü tamamladın!",
		Icon:        "🗺️",
	},
	models.BadgeMaster: {
		Title:       "Usta! 🏆",
		Description: "Bir güçlük kategorisindeki tüm bölümleri tamamladın!",
		Icon:        "🏆",
	},
}

type gamificationService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewGamificationService(repo repositories.Repository, logger *slog.Logger) GamificationService {
	return &gamificationService{
		repo:   repo,
		logger: logger,
	}
}

// badgeCheck pairs a badge type with its uniform predicate. Every predicate
// has the same signature regardless of whether it touches storage.
type badgeCheck struct {
	badgeType models.BadgeType
	condition func(ctx context.Context) (bool, error)
}

func (s *gamificationService) CheckAndAwardBadges(ctx context.Context, studentID uuid.UUID, bctx BadgeContext) ([]*models.Badge, error) {
	checks := []badgeCheck{
		{models.BadgeFirstChapter, func(ctx context.Context) (bool, error) {
			count, err := s.repo.Progress().GetCompletedCount(ctx, studentID)
			return count >= 1, err
		}},
		{models.BadgePerfectScore, func(ctx context.Context) (bool, error) {
			return bctx.RawScore >= 100, nil
		}},
		{models.BadgeStreak3, s.streakCheck(bctx.StreakDays, 3)},
		{models.BadgeStreak7, s.streakCheck(bctx.StreakDays, 7)},
		{models.BadgeStreak30, s.streakCheck(bctx.StreakDays, 30)},
		{models.BadgeLevelUp, func(ctx context.Context) (bool, error) {
			return bctx.CurrentLevel > bctx.PreviousLevel, nil
		}},
		{models.BadgeSpeedDemon, func(ctx context.Context) (bool, error) {
			if bctx.ExpectedDurationSeconds <= 0 {
				return false, nil
			}
			return float64(bctx.TimeSpentSeconds) < float64(bctx.ExpectedDurationSeconds)*0.5, nil
		}},
		{models.BadgePersistent, func(ctx context.Context) (bool, error) {
			return bctx.Attempts >= 3, nil
		}},
		{models.BadgeExplorer, func(ctx context.Context) (bool, error) {
			count, err := s.repo.Progress().GetCompletedCount(ctx, studentID)
			return count >= 5, err
		}},
		{models.BadgeMaster, func(ctx context.Context) (bool, error) {
			return s.checkMastery(ctx, studentID, bctx.LearningDifficulty)
		}},
	}

	newBadges := make([]*models.Badge, 0)
	for _, check := range checks {
		badge, err := s.evaluateCheck(ctx, studentID, check, bctx)
		if err != nil {
			// One failing predicate never aborts the rest of the catalog.
			s.logger.Error("Badge check failed",
				"badge_type", check.badgeType,
				"student_id", studentID,
				"error", err)
			continue
		}
		if badge != nil {
			newBadges = append(newBadges, badge)
		}
	}

	return newBadges, nil
}

func (s *gamificationService) evaluateCheck(ctx context.Context, studentID uuid.UUID, check badgeCheck, bctx BadgeContext) (*models.Badge, error) {
	hasIt, err := s.repo.Badge().HasBadge(ctx, studentID, check.badgeType)
	if err != nil {
		return nil, fmt.Errorf("failed to look up badge: %w", err)
	}
	if hasIt {
		return nil, nil
	}

	earned, err := check.condition(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate condition: %w", err)
	}
	if !earned {
		return nil, nil
	}

	definition, ok := badgeDefinitions[check.badgeType]
	if !ok {
		return nil, ErrUnknownBadgeType
	}

	badge := &models.Badge{
		StudentID:   studentID,
		BadgeType:   check.badgeType,
		Title:       definition.Title,
		Description: definition.Description,
		Icon:        definition.Icon,
	}
	if check.badgeType == models.BadgeLevelUp {
		badge.Description = fmt.Sprintf("Seviye %d'e ulaştın!", bctx.CurrentLevel)
	}

	if err := s.repo.Badge().Create(ctx, badge); err != nil {
		// A concurrent attempt may have won the unique constraint race.
		if repositories.IsDuplicateError(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to persist badge: %w", err)
	}

	s.logger.Info("Badge awarded",
		"badge_type", check.badgeType,
		"student_id", studentID)

	return badge, nil
}

func (s *gamificationService) streakCheck(streakDays, required int) func(ctx context.Context) (bool, error) {
	return func(ctx context.Context) (bool, error) {
		return streakDays >= required, nil
	}
}

// checkMastery reports whether the student completed every active chapter of
// their difficulty track. Empty tracks never count as mastered.
func (s *gamificationService) checkMastery(ctx context.Context, studentID uuid.UUID, difficulty models.LearningDifficulty) (bool, error) {
	trackSize, err := s.repo.Chapter().CountActiveByDifficulty(ctx, difficulty)
	if err != nil {
		return false, err
	}
	if trackSize == 0 {
		return false, nil
	}

	completed, err := s.repo.Progress().GetCompletedCountByDifficulty(ctx, studentID, difficulty)
	if err != nil {
		return false, err
	}

	return completed >= trackSize, nil
}

func (s *gamificationService) GetStudentBadges(ctx context.Context, studentID uuid.UUID) ([]*models.Badge, error) {
	badges, err := s.repo.Badge().GetByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get badges: %w", err)
	}

	return badges, nil
}

func (s *gamificationService) GetLeaderboardPosition(ctx context.Context, studentID uuid.UUID) (int, error) {
	profile, err := s.repo.StudentProfile().GetByID(ctx, studentID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return 0, ErrStudentNotFound
		}
		return 0, fmt.Errorf("failed to get student profile: %w", err)
	}

	scores, err := s.repo.StudentProfile().GetTotalScores(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get total scores: %w", err)
	}

	allScores := make([]int, len(scores))
	for i, score := range scores {
		allScores[i] = score.TotalScore
	}

	return LeaderboardPosition(profile.TotalScore, allScores), nil
}

// LeaderboardPosition returns the 1-based rank of totalScore among allScores.
// An unknown score ranks last.
func LeaderboardPosition(totalScore int, allScores []int) int {
	sorted := make([]int, len(allScores))
	copy(sorted, allScores)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	for i, score := range sorted {
		if score == totalScore {
			return i + 1
		}
	}
	return len(sorted) + 1
}
