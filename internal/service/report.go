package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/hooprivals/stats-service/internal/model"
	"github.com/hooprivals/stats-service/internal/repository"
	"github.com/hooprivals/stats-service/internal/stats"
)

type reportService struct {
	matches repository.MatchRepository
	log     zerolog.Logger
}

func NewReportService(matches repository.MatchRepository, logger zerolog.Logger) ReportService {
	l := logger.With().Str("module", "service").Str("component", "report").Logger()
	return &reportService{matches: matches, log: l}
}

// GetStatsReport fetches the player's full match history once and folds it in
// memory. The fetch is the only I/O; everything after runs on the snapshot,
// so a concurrent stat correction is simply picked up by the next request.
func (s *reportService) GetStatsReport(ctx context.Context, playerID string) (model.StatsReport, error) {
	if playerID == "" {
		return model.StatsReport{}, NewInvalidInputError([]FieldError{{Field: "player_id", Message: "must not be empty"}})
	}

	start := time.Now()
	matches, err := s.matches.ListByPlayer(ctx, playerID)
	if err != nil {
		s.log.Error().Err(err).Str("player_id", playerID).Msg("fetch match history failed")
		return model.StatsReport{}, err
	}

	report := stats.BuildReport(matches, playerID)
	s.log.Debug().
		Str("player_id", playerID).
		Int("matches", len(matches)).
		Dur("took", time.Since(start)).
		Msg("stats report built")
	return report, nil
}
