package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/hooprivals/stats-service/internal/model"
	"github.com/hooprivals/stats-service/internal/repository"
)

type statsService struct {
	matches repository.MatchRepository
	stats   repository.StatRepository
	tx      repository.TxManager
	log     zerolog.Logger
}

func NewStatsService(matches repository.MatchRepository, stats repository.StatRepository, tx repository.TxManager, logger zerolog.Logger) StatsService {
	l := logger.With().Str("module", "service").Str("component", "stats").Logger()
	return &statsService{matches: matches, stats: stats, tx: tx, log: l}
}

// RecordQuarterStats validates and persists per-quarter stat lines for a
// QUARTERS match. Every line of every quarter is checked before any write:
// a single bad row rejects the whole submission, never a partial one.
func (s *statsService) RecordQuarterStats(ctx context.Context, matchID int64, quarters []QuarterSubmission) error {
	if matchID <= 0 {
		return NewInvalidInputError([]FieldError{{Field: "match_id", Message: "must be > 0"}})
	}
	if len(quarters) == 0 {
		return NewInvalidInputError([]FieldError{{Field: "quarters", Message: "must not be empty"}})
	}

	var ferrs []FieldError
	for _, quarter := range quarters {
		if quarter.QuarterID <= 0 {
			ferrs = append(ferrs, FieldError{Field: "quarter_id", Message: "must be > 0"})
		}
		ferrs = append(ferrs, validateLines(quarter.Lines)...)
	}
	if err := NewInvalidInputError(ferrs); err != nil {
		s.log.Debug().Int64("match_id", matchID).Interface("field_errors", ferrs).Msg("quarter stats rejected")
		return err
	}

	match, err := s.matches.GetByID(ctx, matchID)
	if err != nil {
		return err
	}
	if match.MatchType != model.MatchTypeQuarters {
		return NewInvalidInputError([]FieldError{{Field: "match_id", Message: "match is not a QUARTERS match"}})
	}
	known := make(map[int64]struct{}, len(match.Quarters))
	for _, quarter := range match.Quarters {
		known[quarter.ID] = struct{}{}
	}
	for _, quarter := range quarters {
		if _, ok := known[quarter.QuarterID]; !ok {
			return repository.ErrNotFound
		}
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		for _, quarter := range quarters {
			for _, line := range quarter.Lines {
				stat := line.Stats
				stat.PlayerID = line.PlayerID
				if _, err := s.stats.UpsertQuarterStat(ctx, quarter.QuarterID, stat); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		s.log.Error().Err(err).Int64("match_id", matchID).Msg("record quarter stats failed")
		return err
	}
	s.log.Info().Int64("match_id", matchID).Int("quarters", len(quarters)).Msg("quarter stats recorded")
	return nil
}

// RecordGameStats validates and persists whole-game stat lines for a POINTS
// match, with the same all-or-nothing semantics as the quarter path.
func (s *statsService) RecordGameStats(ctx context.Context, matchID int64, lines []PlayerStats) error {
	if matchID <= 0 {
		return NewInvalidInputError([]FieldError{{Field: "match_id", Message: "must be > 0"}})
	}
	if len(lines) == 0 {
		return NewInvalidInputError([]FieldError{{Field: "stats", Message: "must not be empty"}})
	}
	if ferrs := validateLines(lines); len(ferrs) > 0 {
		s.log.Debug().Int64("match_id", matchID).Interface("field_errors", ferrs).Msg("game stats rejected")
		return NewInvalidInputError(ferrs)
	}

	match, err := s.matches.GetByID(ctx, matchID)
	if err != nil {
		return err
	}
	if match.MatchType != model.MatchTypePoints {
		return NewInvalidInputError([]FieldError{{Field: "match_id", Message: "match is not a POINTS match"}})
	}
	if match.PointsUnit == nil {
		// Declared POINTS but the scoring unit is missing; nothing to attach to.
		return repository.ErrNotFound
	}

	unitID := match.PointsUnit.ID
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		for _, line := range lines {
			stat := line.Stats
			stat.PlayerID = line.PlayerID
			if _, err := s.stats.UpsertGameStat(ctx, unitID, stat); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.log.Error().Err(err).Int64("match_id", matchID).Msg("record game stats failed")
		return err
	}
	s.log.Info().Int64("match_id", matchID).Int("lines", len(lines)).Msg("game stats recorded")
	return nil
}
