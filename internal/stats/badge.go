package stats

import (
	"math"

	"github.com/hooprivals/stats-service/internal/model"
)

// ClassifyBadge maps a challenge attempt to its performance tier. Efficiency
// is the made/attempted ratio rounded to a whole percentage (0 when nothing
// was attempted); boundary values belong to the lower tier, so exactly 70%
// still earns silver, not gold.
func ClassifyBadge(made, attempted int) model.Badge {
	efficiency := 0
	if attempted > 0 {
		efficiency = int(math.Round(float64(made) / float64(attempted) * 100))
	}
	switch {
	case efficiency <= 40:
		return model.BadgeBronze
	case efficiency <= 70:
		return model.BadgeSilver
	case efficiency <= 90:
		return model.BadgeGold
	default:
		return model.BadgePlatinum
	}
}

// SummarizeChallenges tallies lifetime badge counts and shooting totals for a
// list of challenges. Used both for a user's own record and per friend on the
// leaderboard. An empty list summarizes to zeroes.
func SummarizeChallenges(challenges []model.Challenge) model.ChallengeSummary {
	var s model.ChallengeSummary
	for _, c := range challenges {
		switch c.Badge {
		case model.BadgeBronze:
			s.WorstBadges++
		case model.BadgeSilver:
			s.ThirdPlace++
		case model.BadgeGold:
			s.SecondPlace++
		case model.BadgePlatinum:
			s.FirstPlace++
		}
		s.AllTimeShotsMade += c.ShotsMade
		s.AllTimeShotsTaken += c.ShotsTaken
	}
	s.AllTimeTotalChallenges = len(challenges)
	if s.AllTimeShotsTaken > 0 {
		s.AllTimeEfficiency = float64(s.AllTimeShotsMade) / float64(s.AllTimeShotsTaken)
	}
	return s
}
