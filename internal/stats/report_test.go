package stats_test

import (
	"testing"

	"github.com/hooprivals/stats-service/internal/model"
	"github.com/hooprivals/stats-service/internal/stats"
)

func TestBuildReport_Empty(t *testing.T) {
	report := stats.BuildReport(nil, "a1")

	if report.OverallStats != (model.AggregatedStats{}) {
		t.Fatalf("overall not zero: %+v", report.OverallStats)
	}
	if report.QuartersStatsByTeamSize == nil || len(report.QuartersStatsByTeamSize) != 0 {
		t.Fatalf("quarter partitions must be an empty map, got %v", report.QuartersStatsByTeamSize)
	}
	if report.PointsStatsByTeamSizeAndMax == nil || len(report.PointsStatsByTeamSizeAndMax) != 0 {
		t.Fatalf("points partitions must be an empty map, got %v", report.PointsStatsByTeamSizeAndMax)
	}
}

func TestBuildReport_Partitions(t *testing.T) {
	q2v2 := quartersMatch(2, 10, []string{"a1", "a2"}, []string{"b1", "b2"},
		model.Quarter{Stats: []model.StatLine{line("a1", 3, 0, 0)}})
	q2v2short := quartersMatch(2, 5, []string{"a1", "a2"}, []string{"b1", "b2"},
		model.Quarter{Stats: []model.StatLine{line("a1", 1, 0, 0)}})
	q3v3 := quartersMatch(3, 10, []string{"a1", "a2", "a3"}, []string{"b1", "b2", "b3"},
		model.Quarter{Stats: []model.StatLine{line("a1", 2, 0, 0)}})
	p1v1 := pointsMatch(1, 21, []string{"a1"}, []string{"b1"}, line("a1", 10, 0, 1))
	p1v1short := pointsMatch(1, 11, []string{"a1"}, []string{"b1"}, line("a1", 5, 0, 1))

	report := stats.BuildReport([]model.Match{q2v2, q2v2short, q3v3, p1v1, p1v1short}, "a1")

	if report.OverallStats.TotalGames != 5 {
		t.Fatalf("overall totalGames = %d, want 5", report.OverallStats.TotalGames)
	}

	if len(report.QuartersStatsByTeamSize) != 2 {
		t.Fatalf("quarter sizes = %v, want keys 2 and 3", report.QuartersStatsByTeamSize)
	}
	bySize2 := report.QuartersStatsByTeamSize["2"]
	if len(bySize2) != 2 {
		t.Fatalf("size-2 durations = %v, want keys 10 and 5", bySize2)
	}
	if g := bySize2["10"]; g.TotalGames != 1 || g.TotalPoints != 6 {
		t.Fatalf("size-2/10min group wrong: %+v", g)
	}
	if g := bySize2["10"]; g.PointsPerNorm == nil {
		t.Fatalf("quarter groups must carry the normalized rate")
	}
	if g := report.QuartersStatsByTeamSize["3"]["10"]; g.TotalPoints != 4 {
		t.Fatalf("size-3 group wrong: %+v", g)
	}

	bySize1 := report.PointsStatsByTeamSizeAndMax["1"]
	if len(bySize1) != 2 {
		t.Fatalf("points targets = %v, want keys 21 and 11", bySize1)
	}
	if g := bySize1["21"]; g.TotalPoints != 21 || g.TotalWins != 1 {
		t.Fatalf("points-21 group wrong: %+v", g)
	}
	if g := bySize1["11"]; g.PointsPerNorm != nil {
		t.Fatalf("points groups must not carry the normalized rate")
	}
}

func TestBuildReport_ExcludesDegenerateMatches(t *testing.T) {
	noQuarters := model.Match{
		ID:        1,
		MatchType: model.MatchTypeQuarters,
		TeamSize:  1,
		Teams:     []model.Team{{ID: 1, Players: []string{"a1"}}, {ID: 2, Players: []string{"b1"}}},
	}
	noTarget := model.Match{
		ID:         2,
		MatchType:  model.MatchTypePoints,
		TeamSize:   1,
		Teams:      []model.Team{{ID: 1, Players: []string{"a1"}}, {ID: 2, Players: []string{"b1"}}},
		PointsUnit: &model.GameUnit{Stats: []model.StatLine{line("a1", 2, 0, 0)}},
	}

	report := stats.BuildReport([]model.Match{noQuarters, noTarget}, "a1")

	if len(report.QuartersStatsByTeamSize) != 0 {
		t.Fatalf("quarterless match leaked into quarter partitions: %v", report.QuartersStatsByTeamSize)
	}
	if len(report.PointsStatsByTeamSizeAndMax) != 0 {
		t.Fatalf("targetless match leaked into points partitions: %v", report.PointsStatsByTeamSizeAndMax)
	}
	// Both still feed the overall scope.
	if report.OverallStats.TotalGames != 1 || report.OverallStats.TotalPoints != 4 {
		t.Fatalf("overall scope wrong: %+v", report.OverallStats)
	}
}
