// Package stats is the aggregation core: pure functions that fold a player's
// match history into aggregated performance figures. No I/O happens here; the
// service layer fetches fully hydrated matches first and hands them in.
package stats

import (
	"fmt"

	"github.com/hooprivals/stats-service/internal/model"
)

// Score derives the point contribution of a single stat line.
func Score(line model.StatLine) int {
	return line.TwoPointsScored*2 + line.ThreePointsScored*3 + line.FreeThrowsScored
}

// ValidateLine checks a raw stat line for internal consistency. Scored counts
// above attempted counts are a hard rejection at ingestion time, never
// clamped.
func ValidateLine(line model.StatLine) error {
	categories := []struct {
		name              string
		scored, attempted int
	}{
		{"two_points", line.TwoPointsScored, line.TwoPointsAttempted},
		{"three_points", line.ThreePointsScored, line.ThreePointsAttempted},
		{"free_throws", line.FreeThrowsScored, line.FreeThrowsAttempted},
	}
	for _, c := range categories {
		if c.scored < 0 || c.attempted < 0 {
			return fmt.Errorf("%s: counts must be >= 0", c.name)
		}
		if c.scored > c.attempted {
			return fmt.Errorf("%s: scored cannot be greater than attempted", c.name)
		}
	}
	if line.Rebounds < 0 || line.Assists < 0 || line.Blocks < 0 {
		return fmt.Errorf("rebounds, assists and blocks must be >= 0")
	}
	return nil
}

// pointsGameMinutes is the nominal duration assumed for a race-to-points game.
// Bookkeeping only; the value never reaches the report.
const pointsGameMinutes = 48

// scoringUnit is the granularity stat lines are recorded at: one quarter of a
// QUARTERS match, or the whole game of a POINTS match.
type scoringUnit struct {
	minutes int
	stats   []model.StatLine
}

// scoringUnits flattens a match into its scoring units regardless of match
// type, so the outcome resolver and the aggregator never branch per type.
// A match missing its expected sub-record (e.g. a freshly created QUARTERS
// match with no quarters yet) yields no units and thereby drops out of
// aggregation instead of failing it.
func scoringUnits(m model.Match) []scoringUnit {
	switch m.MatchType {
	case model.MatchTypeQuarters:
		units := make([]scoringUnit, 0, len(m.Quarters))
		for _, q := range m.Quarters {
			units = append(units, scoringUnit{minutes: q.Duration, stats: q.Stats})
		}
		return units
	case model.MatchTypePoints:
		if m.PointsUnit == nil {
			return nil
		}
		return []scoringUnit{{minutes: pointsGameMinutes, stats: m.PointsUnit.Stats}}
	default:
		return nil
	}
}
