package stats

import "github.com/hooprivals/stats-service/internal/model"

// TeamScore totals the derived points of every stat line recorded for the
// given team's players across all scoring units of the match.
func TeamScore(m model.Match, team model.Team) int {
	members := make(map[string]struct{}, len(team.Players))
	for _, p := range team.Players {
		members[p] = struct{}{}
	}
	score := 0
	for _, unit := range scoringUnits(m) {
		for _, line := range unit.stats {
			if _, ok := members[line.PlayerID]; ok {
				score += Score(line)
			}
		}
	}
	return score
}

// Won reports whether the given player's team won the match: strictly more
// points than the best of the other teams. Ties count as non-wins, and a
// match with no recorded stats at all (0-0) is never credited as a win.
// A player appearing on no team of the match cannot win it.
func Won(m model.Match, playerID string) bool {
	var playerTeam *model.Team
	for i := range m.Teams {
		for _, p := range m.Teams[i].Players {
			if p == playerID {
				playerTeam = &m.Teams[i]
				break
			}
		}
		if playerTeam != nil {
			break
		}
	}
	if playerTeam == nil {
		return false
	}

	own := TeamScore(m, *playerTeam)
	best := 0
	for i := range m.Teams {
		if m.Teams[i].ID == playerTeam.ID {
			continue
		}
		if s := TeamScore(m, m.Teams[i]); s > best {
			best = s
		}
	}
	return own > best
}
