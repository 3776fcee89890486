package services

// ScoreBreakdown is the point breakdown for one completion attempt.
type ScoreBreakdown struct {
	ScoreEarned int `json:"score_earned"`
	SpeedBonus  int `json:"speed_bonus"`
	Total       int `json:"total_points"`
}

// ComputePoints turns a raw chapter score into gamification points.
//
// A failing attempt (rawScore below the pass threshold) still earns partial
// credit of max(10, rawScore/4). A passing attempt earns a flat 50 plus 2
// points per raw point above the threshold. The speed bonus is tiered on the
// ratio of time spent to the expected duration.
//
// This is the single authoritative formula for the completion path; chapter
// difficulty does not enter the point math.
func ComputePoints(rawScore, minScoreToPass, timeSpentSeconds, expectedDurationSeconds int) ScoreBreakdown {
	breakdown := ScoreBreakdown{
		ScoreEarned: scoreEarned(rawScore, minScoreToPass),
		SpeedBonus:  speedBonus(timeSpentSeconds, expectedDurationSeconds),
	}
	breakdown.Total = breakdown.ScoreEarned + breakdown.SpeedBonus
	return breakdown
}

func scoreEarned(rawScore, minScoreToPass int) int {
	if rawScore < minScoreToPass {
		// Partial credit, no pass.
		earned := rawScore / 4
		if earned < 10 {
			earned = 10
		}
		return earned
	}

	base := 50
	bonus := rawScore - minScoreToPass
	if bonus < 0 {
		bonus = 0
	}
	return base + bonus*2
}

func speedBonus(timeSpentSeconds, expectedDurationSeconds int) int {
	if timeSpentSeconds <= 0 || expectedDurationSeconds <= 0 {
		return 0
	}

	ratio := float64(timeSpentSeconds) / float64(expectedDurationSeconds)
	switch {
	case ratio < 0.5:
		return 30
	case ratio < 0.75:
		return 20
	case ratio < 1.0:
		return 10
	default:
		return 0
	}
}
