// Package model contains domain entities and DTOs used across layers.
// I keep it lean and focused on data shapes without behavior.
package model

import "time"

// MatchType distinguishes the two game structures the league supports.
type MatchType string

const (
	// MatchTypeQuarters is a fixed-quarter game: timed quarters, stats recorded
	// per quarter.
	MatchTypeQuarters MatchType = "QUARTERS"
	// MatchTypePoints is a race-to-points game: one scoring unit for the whole
	// game, first team to reach PointsToWin.
	MatchTypePoints MatchType = "POINTS"
)

// Match is a single game instance. Exactly one of Quarters / PointsUnit is
// populated, matching MatchType. A match owns exactly two teams.
type Match struct {
	ID          int64     `json:"id"`
	MatchType   MatchType `json:"match_type"`
	TeamSize    int       `json:"team_size"`
	PointsToWin *int      `json:"points_to_win,omitempty"`
	Date        time.Time `json:"date"`
	ArenaID     int64     `json:"arena_id"`
	Teams       []Team    `json:"teams"`
	Quarters    []Quarter `json:"quarters,omitempty"`
	PointsUnit  *GameUnit `json:"points_unit,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Team groups the players on one side of a match. Player order is irrelevant.
type Team struct {
	ID      int64    `json:"id"`
	MatchID int64    `json:"match_id"`
	Players []string `json:"players"`
}

// Quarter is the scoring unit of a QUARTERS match.
type Quarter struct {
	ID       int64      `json:"id"`
	Number   int        `json:"number"`
	Duration int        `json:"duration"` // minutes
	Stats    []StatLine `json:"stats"`
}

// GameUnit is the single whole-game scoring unit of a POINTS match.
type GameUnit struct {
	ID    int64      `json:"id"`
	Stats []StatLine `json:"stats"`
}

// StatLine is one player's raw counts for one scoring unit. At most one line
// exists per (scoring unit, player); corrections replace the row in place.
type StatLine struct {
	ID                   int64  `json:"id"`
	PlayerID             string `json:"player_id"`
	TwoPointsScored      int    `json:"two_points_scored"`
	TwoPointsAttempted   int    `json:"two_points_attempted"`
	ThreePointsScored    int    `json:"three_points_scored"`
	ThreePointsAttempted int    `json:"three_points_attempted"`
	FreeThrowsScored     int    `json:"free_throws_scored"`
	FreeThrowsAttempted  int    `json:"free_throws_attempted"`
	Rebounds             int    `json:"rebounds"`
	Assists              int    `json:"assists"` // only meaningful when team size > 1
	Blocks               int    `json:"blocks"`
}

// AggregatedStats summarizes a collection of matches for one player.
// Derived, never persisted. Percentages are on a 0-100 scale.
type AggregatedStats struct {
	TotalPoints       int     `json:"totalPoints"`
	TotalRebounds     int     `json:"totalRebounds"`
	TotalAssists      int     `json:"totalAssists"`
	TotalFreeThrows   int     `json:"totalFreeThrows"`
	TotalBlocks       int     `json:"totalBlocks"`
	TotalGames        int     `json:"totalGames"`
	TotalWins         int     `json:"totalWins"`
	PPG               float64 `json:"ppg"`
	RPG               float64 `json:"rpg"`
	APG               float64 `json:"apg"`
	FTPG              float64 `json:"ftpg"`
	BPG               float64 `json:"bpg"`
	FGPercentage      float64 `json:"fgPercentage"`
	TwoPtPercentage   float64 `json:"twoPtPercentage"`
	ThreePtPercentage float64 `json:"threePtPercentage"`
	FTPercentage      float64 `json:"ftPercentage"`
	// PointsPerNorm is only set for duration-homogeneous quarter groups: the
	// scoring rate rescaled to a standard 40- or 48-minute game.
	PointsPerNorm *float64 `json:"pointsPerNorm,omitempty"`
}

// StatsReport is the nested drill-down shape consumed by the presentation
// layer: overall, then quarter games by team size and quarter duration, then
// points games by team size and points target. Keys are stringified dimension
// values; consumers must not depend on key order.
type StatsReport struct {
	OverallStats                AggregatedStats                       `json:"overallStats"`
	QuartersStatsByTeamSize     map[string]map[string]AggregatedStats `json:"quartersStatsByTeamSize"`
	PointsStatsByTeamSizeAndMax map[string]map[string]AggregatedStats `json:"pointsStatsByTeamSizeAndMax"`
}

// Badge is a discrete performance tier keyed by shooting efficiency.
type Badge int

const (
	BadgeBronze   Badge = 1 // efficiency <= 40
	BadgeSilver   Badge = 2 // 40 < efficiency <= 70
	BadgeGold     Badge = 3 // 70 < efficiency <= 90
	BadgePlatinum Badge = 4 // efficiency > 90
)

// Challenge is a dated free-throw challenge attempt with its derived badge.
type Challenge struct {
	ID         int64     `json:"id"`
	UserID     string    `json:"user_id"`
	Date       time.Time `json:"date"`
	ShotsMade  int       `json:"shots_made"`
	ShotsTaken int       `json:"shots_taken"`
	Badge      Badge     `json:"badge"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ChallengeSummary tallies a user's lifetime free-throw challenge record.
// AllTimeEfficiency is a 0-1 ratio, matching the leaderboard display contract.
type ChallengeSummary struct {
	WorstBadges            int     `json:"worstBadges"`
	ThirdPlace             int     `json:"thirdPlace"`
	SecondPlace            int     `json:"secondPlace"`
	FirstPlace             int     `json:"firstPlace"`
	AllTimeEfficiency      float64 `json:"allTimeEfficiency"`
	AllTimeShotsMade       int     `json:"allTimeShotsMade"`
	AllTimeShotsTaken      int     `json:"allTimeShotsTaken"`
	AllTimeTotalChallenges int     `json:"allTimeTotalChallenges"`
}

// LeaderboardEntry pairs a player with their challenge summary for the
// friends leaderboard.
type LeaderboardEntry struct {
	PlayerID string           `json:"player_id"`
	Stats    ChallengeSummary `json:"stats"`
}
