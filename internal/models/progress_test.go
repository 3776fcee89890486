package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProgressMarkCompleted(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("first pass sets completion state", func(t *testing.T) {
		p := Progress{Score: 40, Attempts: 2, TimeSpentSeconds: 900}
		p.MarkCompleted(80, 300, now)

		assert.True(t, p.Completed)
		assert.Equal(t, 80, p.Score)
		assert.Equal(t, 3, p.Attempts)
		assert.Equal(t, 1200, p.TimeSpentSeconds)
		assert.Equal(t, now, *p.CompletedAt)
	})

	t.Run("lower passing score keeps the best score", func(t *testing.T) {
		p := Progress{Completed: true, Score: 95, Attempts: 1}
		p.MarkCompleted(70, 200, now)

		assert.Equal(t, 95, p.Score)
		assert.Equal(t, 2, p.Attempts)
	})
}

func TestProgressAddAttempt(t *testing.T) {
	p := Progress{Score: 50, Attempts: 1, TimeSpentSeconds: 600}
	p.AddAttempt(55, 400)

	assert.False(t, p.Completed)
	assert.Nil(t, p.CompletedAt)
	assert.Equal(t, 55, p.Score)
	assert.Equal(t, 2, p.Attempts)
	assert.Equal(t, 1000, p.TimeSpentSeconds)
}

func TestProgressAverageTimePerAttempt(t *testing.T) {
	assert.Equal(t, 0.0, (&Progress{}).AverageTimePerAttempt())
	assert.Equal(t, 300.0, (&Progress{Attempts: 3, TimeSpentSeconds: 900}).AverageTimePerAttempt())
}
