package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputePoints(t *testing.T) {
	tests := []struct {
		name             string
		rawScore         int
		minScoreToPass   int
		timeSpent        int
		expectedDuration int
		wantEarned       int
		wantBonus        int
		wantTotal        int
	}{
		{
			name:             "passing score with fast completion",
			rawScore:         85,
			minScoreToPass:   60,
			timeSpent:        300,
			expectedDuration: 900,
			wantEarned:       100, // 50 + 2*(85-60)
			wantBonus:        30,  // ratio 0.33 < 0.5
			wantTotal:        130,
		},
		{
			name:             "exact pass threshold earns base only",
			rawScore:         60,
			minScoreToPass:   60,
			timeSpent:        900,
			expectedDuration: 900,
			wantEarned:       50,
			wantBonus:        0, // ratio 1.0 is not under the slowest tier
			wantTotal:        50,
		},
		{
			name:             "failing score keeps partial credit floor",
			rawScore:         20,
			minScoreToPass:   60,
			timeSpent:        600,
			expectedDuration: 900,
			wantEarned:       10, // 20/4 = 5, floored to 10
			wantBonus:        20, // ratio 0.67 < 0.75
			wantTotal:        30,
		},
		{
			name:             "failing score above the floor",
			rawScore:         55,
			minScoreToPass:   60,
			timeSpent:        1000,
			expectedDuration: 900,
			wantEarned:       13, // 55/4
			wantBonus:        0,
			wantTotal:        13,
		},
		{
			name:             "perfect score mid-speed tier",
			rawScore:         100,
			minScoreToPass:   60,
			timeSpent:        600,
			expectedDuration: 900,
			wantEarned:       130, // 50 + 2*40
			wantBonus:        20,  // ratio 0.666 < 0.75
			wantTotal:        150,
		},
		{
			name:             "slowest bonus tier just under expected",
			rawScore:         70,
			minScoreToPass:   60,
			timeSpent:        899,
			expectedDuration: 900,
			wantEarned:       70,
			wantBonus:        10,
			wantTotal:        80,
		},
		{
			name:             "zero time spent earns no bonus",
			rawScore:         70,
			minScoreToPass:   60,
			timeSpent:        0,
			expectedDuration: 900,
			wantEarned:       70,
			wantBonus:        0,
			wantTotal:        70,
		},
		{
			name:             "zero expected duration earns no bonus",
			rawScore:         70,
			minScoreToPass:   60,
			timeSpent:        300,
			expectedDuration: 0,
			wantEarned:       70,
			wantBonus:        0,
			wantTotal:        70,
		},
		{
			name:             "zero score still earns the floor",
			rawScore:         0,
			minScoreToPass:   60,
			timeSpent:        100,
			expectedDuration: 900,
			wantEarned:       10,
			wantBonus:        30,
			wantTotal:        40,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputePoints(tt.rawScore, tt.minScoreToPass, tt.timeSpent, tt.expectedDuration)

			assert.Equal(t, tt.wantEarned, got.ScoreEarned)
			assert.Equal(t, tt.wantBonus, got.SpeedBonus)
			assert.Equal(t, tt.wantTotal, got.Total)
		})
	}
}

func TestSpeedBonusTierBoundaries(t *testing.T) {
	// 1000-second expected duration makes the tier edges exact.
	tests := []struct {
		timeSpent int
		want      int
	}{
		{499, 30},
		{500, 20}, // ratio exactly 0.5 falls out of the fastest tier
		{749, 20},
		{750, 10},
		{999, 10},
		{1000, 0},
		{2000, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, speedBonus(tt.timeSpent, 1000), "timeSpent=%d", tt.timeSpent)
	}
}
