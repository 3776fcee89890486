package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/yububu-edu/progress-service/internal/cache"
	"github.com/yububu-edu/progress-service/internal/models"
	"github.com/yububu-edu/progress-service/internal/repositories"
)

// ===== REPOSITORY MOCKS =====

// MockProgressRepository is a mock implementation of ProgressRepository
type MockProgressRepository struct {
	mock.Mock
}

func (m *MockProgressRepository) Create(ctx context.Context, progress *models.Progress) error {
	args := m.Called(ctx, progress)
	return args.Error(0)
}

func (m *MockProgressRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Progress, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Progress), args.Error(1)
}

func (m *MockProgressRepository) GetByStudentAndChapter(ctx context.Context, studentID, chapterID uuid.UUID) (*models.Progress, error) {
	args := m.Called(ctx, studentID, chapterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Progress), args.Error(1)
}

func (m *MockProgressRepository) Update(ctx context.Context, progress *models.Progress) error {
	args := m.Called(ctx, progress)
	return args.Error(0)
}

func (m *MockProgressRepository) ListByStudent(ctx context.Context, studentID uuid.UUID, filters repositories.ProgressFilters) ([]*models.Progress, int64, error) {
	args := m.Called(ctx, studentID, filters)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*models.Progress), args.Get(1).(int64), args.Error(2)
}

func (m *MockProgressRepository) GetCompletedCount(ctx context.Context, studentID uuid.UUID) (int, error) {
	args := m.Called(ctx, studentID)
	return args.Int(0), args.Error(1)
}

func (m *MockProgressRepository) GetCompletedCountByDifficulty(ctx context.Context, studentID uuid.UUID, difficulty models.LearningDifficulty) (int, error) {
	args := m.Called(ctx, studentID, difficulty)
	return args.Int(0), args.Error(1)
}

func (m *MockProgressRepository) GetAnalytics(ctx context.Context, studentID uuid.UUID) (*repositories.ProgressAnalytics, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repositories.ProgressAnalytics), args.Error(1)
}

// MockStudentProfileRepository is a mock implementation of StudentProfileRepository
type MockStudentProfileRepository struct {
	mock.Mock
}

func (m *MockStudentProfileRepository) Create(ctx context.Context, profile *models.StudentProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockStudentProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.StudentProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StudentProfile), args.Error(1)
}

func (m *MockStudentProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.StudentProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StudentProfile), args.Error(1)
}

func (m *MockStudentProfileRepository) Update(ctx context.Context, profile *models.StudentProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockStudentProfileRepository) ListByDifficulty(ctx context.Context, difficulty models.LearningDifficulty, limit, offset int) ([]*models.StudentProfile, error) {
	args := m.Called(ctx, difficulty, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.StudentProfile), args.Error(1)
}

func (m *MockStudentProfileRepository) UpdateScore(ctx context.Context, id uuid.UUID, delta int) (*models.StudentProfile, error) {
	args := m.Called(ctx, id, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StudentProfile), args.Error(1)
}

func (m *MockStudentProfileRepository) UpdateStreak(ctx context.Context, id uuid.UUID, streakDays int) (*models.StudentProfile, error) {
	args := m.Called(ctx, id, streakDays)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StudentProfile), args.Error(1)
}

func (m *MockStudentProfileRepository) GetTotalScores(ctx context.Context) ([]repositories.StudentScore, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repositories.StudentScore), args.Error(1)
}

// MockBadgeRepository is a mock implementation of BadgeRepository
type MockBadgeRepository struct {
	mock.Mock
}

func (m *MockBadgeRepository) Create(ctx context.Context, badge *models.Badge) error {
	args := m.Called(ctx, badge)
	return args.Error(0)
}

func (m *MockBadgeRepository) GetByStudent(ctx context.Context, studentID uuid.UUID) ([]*models.Badge, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Badge), args.Error(1)
}

func (m *MockBadgeRepository) HasBadge(ctx context.Context, studentID uuid.UUID, badgeType models.BadgeType) (bool, error) {
	args := m.Called(ctx, studentID, badgeType)
	return args.Bool(0), args.Error(1)
}

func (m *MockBadgeRepository) CountByStudent(ctx context.Context, studentID uuid.UUID) (int, error) {
	args := m.Called(ctx, studentID)
	return args.Int(0), args.Error(1)
}

// MockChapterRepository is a mock implementation of ChapterRepository
type MockChapterRepository struct {
	mock.Mock
}

func (m *MockChapterRepository) Create(ctx context.Context, chapter *models.Chapter) error {
	args := m.Called(ctx, chapter)
	return args.Error(0)
}

func (m *MockChapterRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Chapter, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Chapter), args.Error(1)
}

func (m *MockChapterRepository) Update(ctx context.Context, chapter *models.Chapter) error {
	args := m.Called(ctx, chapter)
	return args.Error(0)
}

func (m *MockChapterRepository) List(ctx context.Context, filters repositories.ChapterFilters) ([]*models.Chapter, int64, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*models.Chapter), args.Get(1).(int64), args.Error(2)
}

func (m *MockChapterRepository) CountActiveByDifficulty(ctx context.Context, difficulty models.LearningDifficulty) (int, error) {
	args := m.Called(ctx, difficulty)
	return args.Int(0), args.Error(1)
}

// MockRepository aggregates the entity mocks. WithTx runs fn against the
// same mock set, so transactional paths are observable from the outside.
type MockRepository struct {
	progressRepo *MockProgressRepository
	profileRepo  *MockStudentProfileRepository
	badgeRepo    *MockBadgeRepository
	chapterRepo  *MockChapterRepository
}

func newMockRepository() *MockRepository {
	return &MockRepository{
		progressRepo: &MockProgressRepository{},
		profileRepo:  &MockStudentProfileRepository{},
		badgeRepo:    &MockBadgeRepository{},
		chapterRepo:  &MockChapterRepository{},
	}
}

func (m *MockRepository) Progress() repositories.ProgressRepository             { return m.progressRepo }
func (m *MockRepository) StudentProfile() repositories.StudentProfileRepository { return m.profileRepo }
func (m *MockRepository) Badge() repositories.BadgeRepository                   { return m.badgeRepo }
func (m *MockRepository) Chapter() repositories.ChapterRepository               { return m.chapterRepo }

func (m *MockRepository) WithTx(ctx context.Context, fn func(repositories.Repository) error) error {
	return fn(m)
}

// ===== GAMIFICATION MOCK =====

// MockGamificationService is a mock implementation of GamificationService
type MockGamificationService struct {
	mock.Mock
}

func (m *MockGamificationService) CheckAndAwardBadges(ctx context.Context, studentID uuid.UUID, bctx BadgeContext) ([]*models.Badge, error) {
	args := m.Called(ctx, studentID, bctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Badge), args.Error(1)
}

func (m *MockGamificationService) GetStudentBadges(ctx context.Context, studentID uuid.UUID) ([]*models.Badge, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Badge), args.Error(1)
}

func (m *MockGamificationService) GetLeaderboardPosition(ctx context.Context, studentID uuid.UUID) (int, error) {
	args := m.Called(ctx, studentID)
	return args.Int(0), args.Error(1)
}

// ===== IN-MEMORY CACHE =====

// memoryCache is an in-memory CacheService for tests.
type memoryCache struct {
	entries map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]byte)}
}

func (c *memoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = data
	return nil
}

func (c *memoryCache) Get(ctx context.Context, key string, dest interface{}) error {
	data, ok := c.entries[key]
	if !ok {
		return cache.ErrCacheMiss
	}
	return json.Unmarshal(data, dest)
}

func (c *memoryCache) Delete(ctx context.Context, key string) error {
	delete(c.entries, key)
	return nil
}

func (c *memoryCache) DeletePattern(ctx context.Context, pattern string) error {
	// Pattern matching is a storage concern; dropping everything is a safe
	// over-approximation for tests.
	c.entries = make(map[string][]byte)
	return nil
}
