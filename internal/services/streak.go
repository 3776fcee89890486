package services

import "time"

// NextStreak computes the new daily streak for an activity happening today.
//
// The streak counts consecutive calendar days with at least one recorded
// attempt, pass or fail. A repeated attempt on the same day keeps the prior
// streak unchanged; a one-day gap extends it; anything else, including a
// last-activity date in the future from clock skew, resets it to 1.
func NextStreak(lastActivity *time.Time, priorStreak int, today time.Time) int {
	if lastActivity == nil {
		return 1
	}

	gap := daysBetween(*lastActivity, today)
	switch gap {
	case 0:
		return priorStreak
	case 1:
		return priorStreak + 1
	default:
		return 1
	}
}

// daysBetween returns the number of calendar days from a to b, comparing at
// date granularity in UTC.
func daysBetween(a, b time.Time) int {
	a = a.UTC()
	b = b.UTC()
	aDay := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bDay := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bDay.Sub(aDay).Hours() / 24)
}
