package service

import (
	"github.com/hooprivals/stats-service/internal/model"
	"github.com/hooprivals/stats-service/internal/repository"
	"github.com/hooprivals/stats-service/internal/stats"
)

const (
	minTeamSize = 1
	maxTeamSize = 5
)

func normalizePage(p repository.Page) repository.Page {
	limit := p.Limit
	offset := p.Offset
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return repository.Page{Limit: limit, Offset: offset}
}

func isValidMatchType(t model.MatchType) bool {
	switch t {
	case model.MatchTypeQuarters, model.MatchTypePoints:
		return true
	default:
		return false
	}
}

// duplicatePlayer returns the first player identity appearing more than once
// across both rosters; a player can stand on at most one side of a match.
func duplicatePlayer(teamA, teamB []string) (string, bool) {
	seen := make(map[string]struct{}, len(teamA)+len(teamB))
	for _, roster := range [][]string{teamA, teamB} {
		for _, p := range roster {
			if _, ok := seen[p]; ok {
				return p, true
			}
			seen[p] = struct{}{}
		}
	}
	return "", false
}

// validateLines turns per-category consistency violations into field errors,
// prefixed so a client can tell which player's submission was rejected.
func validateLines(lines []PlayerStats) []FieldError {
	var ferrs []FieldError
	for _, l := range lines {
		if l.PlayerID == "" {
			ferrs = append(ferrs, FieldError{Field: "player_id", Message: "must not be empty"})
			continue
		}
		if err := stats.ValidateLine(l.Stats); err != nil {
			ferrs = append(ferrs, FieldError{Field: "stats[" + l.PlayerID + "]", Message: err.Error()})
		}
	}
	return ferrs
}
