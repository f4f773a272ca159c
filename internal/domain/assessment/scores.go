package assessment

// Score banding for field captures that record raw metrics only. Each raw
// metric maps onto a 0-100 scale anchored to the club's age-group reference
// ranges; captures that already carry a score keep it untouched.

const maxScore = 100

// DeriveScores fills the score columns of a staging sheet from its raw
// metrics where the capture form left them at zero.
func DeriveScores(u Unassigned) Unassigned {
	if u.Speed == 0 && u.SprintTime > 0 {
		u.Speed = speedScoreFromSprint(u.SprintTime)
	}
	if u.Power == 0 && u.VerticalJump > 0 {
		u.Power = powerScoreFromVertical(u.VerticalJump)
	}
	return u
}

// speedScoreFromSprint maps a 30m sprint time (seconds, lower is better) onto
// 0-100. 4.0s or faster scores 100; 7.0s or slower scores 0.
func speedScoreFromSprint(seconds float64) float64 {
	return clampScore((7.0 - seconds) / 3.0 * maxScore)
}

// powerScoreFromVertical maps a standing vertical jump (cm) onto 0-100.
// 60cm or higher scores 100.
func powerScoreFromVertical(centimeters float64) float64 {
	return clampScore(centimeters / 60.0 * maxScore)
}

// EnduranceScoreFromYirt maps a Yo-Yo IR1 distance (meters) onto 0-100.
// 1600m or more scores 100.
func EnduranceScoreFromYirt(meters float64) float64 {
	return clampScore(meters / 1600.0 * maxScore)
}

// AgilityScoreFromShuttle maps a 5-10-5 shuttle time (seconds, lower is
// better) onto 0-100. 4.5s or faster scores 100; 7.5s or slower scores 0.
func AgilityScoreFromShuttle(seconds float64) float64 {
	return clampScore((7.5 - seconds) / 3.0 * maxScore)
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > maxScore {
		return maxScore
	}
	return score
}
