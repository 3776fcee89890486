package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelForScore(t *testing.T) {
	tests := []struct {
		totalScore int
		want       int
	}{
		{0, 1},
		{1, 1},
		{499, 1},
		{500, 2},
		{999, 2},
		{1000, 3},
		{2500, 6},
		{-50, 1}, // defensive floor; scores never go negative in practice
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelForScore(tt.totalScore), "totalScore=%d", tt.totalScore)
	}
}

func TestStudentProfileCalculateLevel(t *testing.T) {
	profile := StudentProfile{TotalScore: 1200}
	assert.Equal(t, 3, profile.CalculateLevel())
}
