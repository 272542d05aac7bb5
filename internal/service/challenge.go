package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/hooprivals/stats-service/internal/model"
	"github.com/hooprivals/stats-service/internal/repository"
	"github.com/hooprivals/stats-service/internal/stats"
)

type challengeService struct {
	challenges repository.ChallengeRepository
	log        zerolog.Logger
}

func NewChallengeService(challenges repository.ChallengeRepository, logger zerolog.Logger) ChallengeService {
	l := logger.With().Str("module", "service").Str("component", "challenge").Logger()
	return &challengeService{challenges: challenges, log: l}
}

func validateAttempt(userID string, made, attempts int) []FieldError {
	var ferrs []FieldError
	if userID == "" {
		ferrs = append(ferrs, FieldError{Field: "user_id", Message: "must not be empty"})
	}
	if attempts <= 0 {
		ferrs = append(ferrs, FieldError{Field: "attempts", Message: "must be > 0"})
	}
	if made < 0 {
		ferrs = append(ferrs, FieldError{Field: "made_shots", Message: "must be >= 0"})
	}
	if made > attempts {
		ferrs = append(ferrs, FieldError{Field: "made_shots", Message: "cannot exceed attempts"})
	}
	return ferrs
}

func (s *challengeService) SubmitChallenge(ctx context.Context, userID string, date time.Time, made, attempts int) (model.Challenge, error) {
	if err := NewInvalidInputError(validateAttempt(userID, made, attempts)); err != nil {
		return model.Challenge{}, err
	}
	if date.IsZero() {
		date = time.Now()
	}
	out, err := s.challenges.Create(ctx, model.Challenge{
		UserID:     userID,
		Date:       date,
		ShotsMade:  made,
		ShotsTaken: attempts,
		Badge:      stats.ClassifyBadge(made, attempts),
	})
	if err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("submit challenge failed")
		return model.Challenge{}, err
	}
	s.log.Info().Int64("challenge_id", out.ID).Int("badge", int(out.Badge)).Msg("challenge submitted")
	return out, nil
}

// CorrectChallenge replaces an attempt's counts and re-derives its badge; the
// stored tier always reflects the current counts.
func (s *challengeService) CorrectChallenge(ctx context.Context, userID string, id int64, date time.Time, made, attempts int) (model.Challenge, error) {
	ferrs := validateAttempt(userID, made, attempts)
	if id <= 0 {
		ferrs = append(ferrs, FieldError{Field: "id", Message: "must be > 0"})
	}
	if err := NewInvalidInputError(ferrs); err != nil {
		return model.Challenge{}, err
	}
	if date.IsZero() {
		date = time.Now()
	}
	out, err := s.challenges.Update(ctx, model.Challenge{
		ID:         id,
		UserID:     userID,
		Date:       date,
		ShotsMade:  made,
		ShotsTaken: attempts,
		Badge:      stats.ClassifyBadge(made, attempts),
	})
	if err != nil {
		s.log.Error().Err(err).Int64("challenge_id", id).Msg("correct challenge failed")
		return model.Challenge{}, err
	}
	return out, nil
}

func (s *challengeService) DeleteChallenge(ctx context.Context, userID string, id int64) error {
	var ferrs []FieldError
	if userID == "" {
		ferrs = append(ferrs, FieldError{Field: "user_id", Message: "must not be empty"})
	}
	if id <= 0 {
		ferrs = append(ferrs, FieldError{Field: "id", Message: "must be > 0"})
	}
	if err := NewInvalidInputError(ferrs); err != nil {
		return err
	}
	return s.challenges.Delete(ctx, id, userID)
}

func (s *challengeService) ListChallenges(ctx context.Context, userID string, page repository.Page) (repository.PageResult[model.Challenge], error) {
	if userID == "" {
		return repository.PageResult[model.Challenge]{}, NewInvalidInputError([]FieldError{{Field: "user_id", Message: "must not be empty"}})
	}
	p := normalizePage(page)
	res, err := s.challenges.ListByUser(ctx, userID, p)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("list challenges failed")
		return repository.PageResult[model.Challenge]{}, err
	}
	return res, nil
}

func (s *challengeService) GetChallengeSummary(ctx context.Context, userID string) (model.ChallengeSummary, error) {
	if userID == "" {
		return model.ChallengeSummary{}, NewInvalidInputError([]FieldError{{Field: "user_id", Message: "must not be empty"}})
	}
	byUser, err := s.challenges.ListByUsers(ctx, []string{userID})
	if err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("challenge summary failed")
		return model.ChallengeSummary{}, err
	}
	return stats.SummarizeChallenges(byUser[userID]), nil
}

// GetLeaderboard summarizes each friend's lifetime challenge record. Entries
// come back in the order the friend identities were given (deduplicated), so
// the output is deterministic for identical inputs.
func (s *challengeService) GetLeaderboard(ctx context.Context, friendIDs []string) ([]model.LeaderboardEntry, error) {
	unique := make([]string, 0, len(friendIDs))
	seen := make(map[string]struct{}, len(friendIDs))
	for _, id := range friendIDs {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	if len(unique) == 0 {
		return []model.LeaderboardEntry{}, nil
	}

	byUser, err := s.challenges.ListByUsers(ctx, unique)
	if err != nil {
		s.log.Error().Err(err).Int("friends", len(unique)).Msg("leaderboard fetch failed")
		return nil, err
	}

	entries := make([]model.LeaderboardEntry, 0, len(unique))
	for _, id := range unique {
		entries = append(entries, model.LeaderboardEntry{
			PlayerID: id,
			Stats:    stats.SummarizeChallenges(byUser[id]),
		})
	}
	return entries, nil
}
