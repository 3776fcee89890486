package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextStreak(t *testing.T) {
	today := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)

	yesterday := today.AddDate(0, 0, -1)
	sameDayMorning := time.Date(2025, 3, 10, 6, 0, 0, 0, time.UTC)
	threeDaysAgo := today.AddDate(0, 0, -3)
	tomorrow := today.AddDate(0, 0, 1)

	tests := []struct {
		name         string
		lastActivity *time.Time
		priorStreak  int
		want         int
	}{
		{
			name:         "first ever activity starts at one",
			lastActivity: nil,
			priorStreak:  0,
			want:         1,
		},
		{
			name:         "second attempt on the same day keeps the streak",
			lastActivity: &sameDayMorning,
			priorStreak:  4,
			want:         4,
		},
		{
			name:         "activity the day after extends the streak",
			lastActivity: &yesterday,
			priorStreak:  4,
			want:         5,
		},
		{
			name:         "multi-day gap resets to one",
			lastActivity: &threeDaysAgo,
			priorStreak:  12,
			want:         1,
		},
		{
			name:         "future last activity resets to one",
			lastActivity: &tomorrow,
			priorStreak:  4,
			want:         1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextStreak(tt.lastActivity, tt.priorStreak, today))
		})
	}
}

func TestNextStreakAcrossMidnight(t *testing.T) {
	// 23:59 yesterday followed by 00:01 today is a one-day gap at date
	// granularity even though only two minutes of wall time passed.
	lateNight := time.Date(2025, 3, 9, 23, 59, 0, 0, time.UTC)
	earlyMorning := time.Date(2025, 3, 10, 0, 1, 0, 0, time.UTC)

	assert.Equal(t, 6, NextStreak(&lateNight, 5, earlyMorning))
}

func TestNextStreakAcrossMonthBoundary(t *testing.T) {
	endOfMonth := time.Date(2025, 1, 31, 20, 0, 0, 0, time.UTC)
	startOfNext := time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, 8, NextStreak(&endOfMonth, 7, startOfNext))
}
