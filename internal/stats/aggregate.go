package stats

import "github.com/hooprivals/stats-service/internal/model"

// Norm targets for the duration-normalized scoring rate. Leagues playing 5 or
// 10 minute quarters are conventionally compared against a 40-minute
// (college-style) game; every other duration against the 48-minute pro game.
const (
	normTargetShort   = 40
	normTargetDefault = 48
)

// Aggregate folds a set of matches into a single AggregatedStats record for
// one player. A match counts towards totalGames only if the player has at
// least one stat line in it; win counting is decoupled and runs for every
// match, since a team can win on teammates' stats alone. All per-game and
// percentage rates are zero when their denominator is zero.
//
// normDuration, when non-nil, marks the input as a same-quarter-duration
// group and enables the normalized points rate.
func Aggregate(matches []model.Match, playerID string, normDuration *int) model.AggregatedStats {
	var (
		totalPoints, totalRebounds, totalAssists int
		totalFreeThrowsMade, totalBlocks         int
		totalWins, totalGames                    int

		totalTwoMade, totalTwoAttempted     int
		totalThreeMade, totalThreeAttempted int
		totalFreeThrowsAttempted            int

		totalMinutes int // bookkeeping only, see pointsGameMinutes
	)

	for _, m := range matches {
		if Won(m, playerID) {
			totalWins++
		}

		hadStats := false
		for _, unit := range scoringUnits(m) {
			for _, line := range unit.stats {
				if line.PlayerID != playerID {
					continue
				}
				hadStats = true
				totalPoints += Score(line)
				totalRebounds += line.Rebounds
				totalAssists += line.Assists
				totalFreeThrowsMade += line.FreeThrowsScored
				totalBlocks += line.Blocks
				totalTwoMade += line.TwoPointsScored
				totalTwoAttempted += line.TwoPointsAttempted
				totalThreeMade += line.ThreePointsScored
				totalThreeAttempted += line.ThreePointsAttempted
				totalFreeThrowsAttempted += line.FreeThrowsAttempted
			}
			if normDuration != nil && m.MatchType == model.MatchTypeQuarters {
				totalMinutes += *normDuration
			} else {
				totalMinutes += unit.minutes
			}
		}
		if hadStats {
			totalGames++
		}
	}

	out := model.AggregatedStats{
		TotalPoints:       totalPoints,
		TotalRebounds:     totalRebounds,
		TotalAssists:      totalAssists,
		TotalFreeThrows:   totalFreeThrowsMade,
		TotalBlocks:       totalBlocks,
		TotalGames:        totalGames,
		TotalWins:         totalWins,
		PPG:               perGame(totalPoints, totalGames),
		RPG:               perGame(totalRebounds, totalGames),
		APG:               perGame(totalAssists, totalGames),
		FTPG:              perGame(totalFreeThrowsMade, totalGames),
		BPG:               perGame(totalBlocks, totalGames),
		FGPercentage:      percentage(totalTwoMade+totalThreeMade, totalTwoAttempted+totalThreeAttempted),
		TwoPtPercentage:   percentage(totalTwoMade, totalTwoAttempted),
		ThreePtPercentage: percentage(totalThreeMade, totalThreeAttempted),
		FTPercentage:      percentage(totalFreeThrowsMade, totalFreeThrowsAttempted),
	}

	if normDuration != nil && totalGames > 0 {
		expectedMinutes := float64(*normDuration * 4)
		target := float64(normTargetDefault)
		if *normDuration == 5 || *normDuration == 10 {
			target = normTargetShort
		}
		norm := out.PPG / expectedMinutes * target
		out.PointsPerNorm = &norm
	}

	return out
}

func perGame(total, games int) float64 {
	if games == 0 {
		return 0
	}
	return float64(total) / float64(games)
}

func percentage(made, attempted int) float64 {
	if attempted == 0 {
		return 0
	}
	return float64(made) / float64(attempted) * 100
}
