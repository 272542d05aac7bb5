package stats

import (
	"strconv"

	"github.com/hooprivals/stats-service/internal/model"
)

// BuildReport partitions a player's full match history into the scopes the
// drill-down UI needs and aggregates each partition independently:
//
//   - overall: every match,
//   - quarter games: grouped by team size, then by first-quarter duration
//     (with the duration-normalized scoring rate enabled),
//   - points games: grouped by team size, then by points target.
//
// A QUARTERS match with no quarters has no duration key and is excluded from
// every quarter partition; a POINTS match without a points target is likewise
// excluded from the points partitions. Both still count towards the overall
// scope. A player with no matches gets a fully populated zero report.
func BuildReport(matches []model.Match, playerID string) model.StatsReport {
	report := model.StatsReport{
		OverallStats:                Aggregate(matches, playerID, nil),
		QuartersStatsByTeamSize:     make(map[string]map[string]model.AggregatedStats),
		PointsStatsByTeamSizeAndMax: make(map[string]map[string]model.AggregatedStats),
	}

	quarterGroups := make(map[string]map[string][]model.Match)
	pointsGroups := make(map[string]map[string][]model.Match)

	for _, m := range matches {
		switch m.MatchType {
		case model.MatchTypeQuarters:
			if len(m.Quarters) == 0 {
				continue
			}
			size := strconv.Itoa(m.TeamSize)
			duration := strconv.Itoa(m.Quarters[0].Duration)
			if quarterGroups[size] == nil {
				quarterGroups[size] = make(map[string][]model.Match)
			}
			quarterGroups[size][duration] = append(quarterGroups[size][duration], m)
		case model.MatchTypePoints:
			if m.PointsToWin == nil {
				continue
			}
			size := strconv.Itoa(m.TeamSize)
			target := strconv.Itoa(*m.PointsToWin)
			if pointsGroups[size] == nil {
				pointsGroups[size] = make(map[string][]model.Match)
			}
			pointsGroups[size][target] = append(pointsGroups[size][target], m)
		}
	}

	for size, byDuration := range quarterGroups {
		report.QuartersStatsByTeamSize[size] = make(map[string]model.AggregatedStats, len(byDuration))
		for durationKey, subset := range byDuration {
			duration, _ := strconv.Atoi(durationKey)
			report.QuartersStatsByTeamSize[size][durationKey] = Aggregate(subset, playerID, &duration)
		}
	}
	for size, byTarget := range pointsGroups {
		report.PointsStatsByTeamSizeAndMax[size] = make(map[string]model.AggregatedStats, len(byTarget))
		for target, subset := range byTarget {
			report.PointsStatsByTeamSizeAndMax[size][target] = Aggregate(subset, playerID, nil)
		}
	}

	return report
}
