package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/hooprivals/stats-service/internal/model"
	"github.com/hooprivals/stats-service/internal/repository"
)

type matchService struct {
	matches repository.MatchRepository
	tx      repository.TxManager
	log     zerolog.Logger
}

func NewMatchService(matches repository.MatchRepository, tx repository.TxManager, logger zerolog.Logger) MatchService {
	l := logger.With().Str("module", "service").Str("component", "match").Logger()
	return &matchService{matches: matches, tx: tx, log: l}
}

func (s *matchService) CreateMatch(ctx context.Context, p CreateMatchParams) (model.Match, error) {
	var ferrs []FieldError
	if !isValidMatchType(p.MatchType) {
		ferrs = append(ferrs, FieldError{Field: "match_type", Message: "must be QUARTERS or POINTS"})
	}
	if p.TeamSize < minTeamSize || p.TeamSize > maxTeamSize {
		ferrs = append(ferrs, FieldError{Field: "team_size", Message: "must be between 1 and 5"})
	}
	if p.Date.IsZero() {
		ferrs = append(ferrs, FieldError{Field: "date", Message: "must be set"})
	}
	if p.ArenaID <= 0 {
		ferrs = append(ferrs, FieldError{Field: "arena_id", Message: "must be > 0"})
	}
	if p.TeamSize >= minTeamSize && p.TeamSize <= maxTeamSize {
		if len(p.TeamA) != p.TeamSize || len(p.TeamB) != p.TeamSize {
			ferrs = append(ferrs, FieldError{Field: "teams", Message: "both rosters must match team_size"})
		}
	}
	if dup, ok := duplicatePlayer(p.TeamA, p.TeamB); ok {
		ferrs = append(ferrs, FieldError{Field: "teams", Message: fmt.Sprintf("player %s appears more than once", dup)})
	}

	switch p.MatchType {
	case model.MatchTypeQuarters:
		if len(p.Quarters) == 0 {
			ferrs = append(ferrs, FieldError{Field: "quarters", Message: "must not be empty"})
		}
		for _, quarter := range p.Quarters {
			if quarter.Duration <= 0 || quarter.Number <= 0 {
				ferrs = append(ferrs, FieldError{Field: "quarters", Message: "duration and number must be > 0"})
				break
			}
		}
		if p.PointsToWin != nil {
			ferrs = append(ferrs, FieldError{Field: "points_to_win", Message: "not allowed for a QUARTERS match"})
		}
	case model.MatchTypePoints:
		if p.PointsToWin == nil || *p.PointsToWin <= 0 {
			ferrs = append(ferrs, FieldError{Field: "points_to_win", Message: "must be > 0"})
		}
		if len(p.Quarters) > 0 {
			ferrs = append(ferrs, FieldError{Field: "quarters", Message: "not allowed for a POINTS match"})
		}
	}

	if err := NewInvalidInputError(ferrs); err != nil {
		s.log.Debug().Interface("field_errors", ferrs).Msg("match validation failed")
		return model.Match{}, err
	}

	start := time.Now()
	match := model.Match{
		MatchType:   p.MatchType,
		TeamSize:    p.TeamSize,
		PointsToWin: p.PointsToWin,
		Date:        p.Date,
		ArenaID:     p.ArenaID,
		Teams: []model.Team{
			{Players: p.TeamA},
			{Players: p.TeamB},
		},
		Quarters: p.Quarters,
	}

	// The match graph (header, teams, memberships, units) must land atomically.
	var out model.Match
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		created, err := s.matches.Create(ctx, match)
		if err != nil {
			return err
		}
		out = created
		return nil
	})
	if err != nil {
		s.log.Error().Err(err).Str("match_type", string(p.MatchType)).Msg("create match failed")
		return model.Match{}, err
	}
	s.log.Info().Dur("took", time.Since(start)).Int64("match_id", out.ID).Msg("match created")
	return out, nil
}

func (s *matchService) GetMatch(ctx context.Context, id int64) (model.Match, error) {
	if id <= 0 {
		return model.Match{}, NewInvalidInputError([]FieldError{{Field: "id", Message: "must be > 0"}})
	}
	return s.matches.GetByID(ctx, id)
}

func (s *matchService) ListMatches(ctx context.Context, playerID string) ([]model.Match, error) {
	if playerID == "" {
		return nil, NewInvalidInputError([]FieldError{{Field: "player_id", Message: "must not be empty"}})
	}
	matches, err := s.matches.ListByPlayer(ctx, playerID)
	if err != nil {
		s.log.Error().Err(err).Str("player_id", playerID).Msg("list matches failed")
		return nil, err
	}
	return matches, nil
}

func (s *matchService) DeleteMatch(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewInvalidInputError([]FieldError{{Field: "id", Message: "must be > 0"}})
	}
	if err := s.matches.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("match_id", id).Msg("match deleted")
	return nil
}
