// Package service holds business logic orchestration across repositories and handlers.
// Kept intentionally lean: only use-case coordination, validation and domain error shaping.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/hooprivals/stats-service/internal/model"
	"github.com/hooprivals/stats-service/internal/repository"
)

// ErrInvalidInput is the marker error for aggregated validation failures (maps to HTTP 400).
// Field-level details are retrieved via FieldErrors(err).
var ErrInvalidInput = errors.New("invalid input")

// FieldError describes a single invalid field in a client request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// invalidInputError aggregates multiple FieldError instances and unwraps to ErrInvalidInput.
type invalidInputError struct {
	fields []FieldError
}

func (e *invalidInputError) Error() string        { return ErrInvalidInput.Error() }
func (e *invalidInputError) Unwrap() error        { return ErrInvalidInput }
func (e *invalidInputError) Fields() []FieldError { return e.fields }

// NewInvalidInputError builds an aggregated validation error if any field errors are present.
func NewInvalidInputError(fe []FieldError) error {
	if len(fe) == 0 {
		return nil
	}
	return &invalidInputError{fields: fe}
}

// FieldErrors extracts field errors from an aggregated validation error.
func FieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	type feIface interface{ Fields() []FieldError }
	if v, ok := err.(feIface); ok && errors.Is(err, ErrInvalidInput) {
		return v.Fields()
	}
	return nil
}

// CreateMatchParams is everything needed to log a new match.
type CreateMatchParams struct {
	MatchType   model.MatchType
	TeamSize    int
	PointsToWin *int
	Date        time.Time
	ArenaID     int64
	TeamA       []string
	TeamB       []string
	Quarters    []model.Quarter
}

// PlayerStats is one player's raw stat counts inside a submission.
type PlayerStats struct {
	PlayerID string
	Stats    model.StatLine
}

// QuarterSubmission carries the stat lines of both teams for one quarter.
type QuarterSubmission struct {
	QuarterID int64
	Lines     []PlayerStats
}

// MatchService defines match-lifecycle use cases.
type MatchService interface {
	CreateMatch(ctx context.Context, p CreateMatchParams) (model.Match, error)
	GetMatch(ctx context.Context, id int64) (model.Match, error)
	ListMatches(ctx context.Context, playerID string) ([]model.Match, error)
	DeleteMatch(ctx context.Context, id int64) error
}

// StatsService defines stat line ingestion. Recording and correcting share
// one path: the store keeps at most one line per (scoring unit, player) and a
// resubmission replaces the row atomically.
type StatsService interface {
	RecordQuarterStats(ctx context.Context, matchID int64, quarters []QuarterSubmission) error
	RecordGameStats(ctx context.Context, matchID int64, lines []PlayerStats) error
}

// ReportService computes the aggregated performance report for a player.
type ReportService interface {
	GetStatsReport(ctx context.Context, playerID string) (model.StatsReport, error)
}

// ChallengeService defines free-throw challenge use cases, including the
// lifetime summary and the friends leaderboard.
type ChallengeService interface {
	SubmitChallenge(ctx context.Context, userID string, date time.Time, made, attempts int) (model.Challenge, error)
	CorrectChallenge(ctx context.Context, userID string, id int64, date time.Time, made, attempts int) (model.Challenge, error)
	DeleteChallenge(ctx context.Context, userID string, id int64) error
	ListChallenges(ctx context.Context, userID string, page repository.Page) (repository.PageResult[model.Challenge], error)
	GetChallengeSummary(ctx context.Context, userID string) (model.ChallengeSummary, error)
	GetLeaderboard(ctx context.Context, friendIDs []string) ([]model.LeaderboardEntry, error)
}
