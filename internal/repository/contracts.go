package repository

import (
	"context"

	"github.com/hooprivals/stats-service/internal/model"
)

// Pinger represents a minimal readiness probe capability.
// I use it to decouple health checks from storage implementation details.
type Pinger interface {
	Ping(ctx context.Context) error
}

// TxFunc is the unit of work executed within a transaction boundary.
// I pass context through so nested calls can honor cancellations and deadlines.
type TxFunc func(ctx context.Context) error

// TxManager abstracts transactional execution for repositories that support it.
// I prefer a single entry point to keep transaction boundaries explicit and testable.
type TxManager interface {
	WithinTx(ctx context.Context, fn TxFunc) error
}

// MatchRepository declares persistence operations for matches. Reads return
// fully hydrated matches: teams with memberships plus, per match type, the
// quarters with their stat lines or the whole-game unit with its stat lines.
// The aggregation core depends on that hydration happening here, before it runs.
type MatchRepository interface {
	// Create persists a match together with its two teams, memberships and
	// (for QUARTERS) its quarters or (for POINTS) its empty game unit.
	Create(ctx context.Context, m model.Match) (model.Match, error)
	GetByID(ctx context.Context, id int64) (model.Match, error)
	// ListByPlayer returns every match the player appears in. The report is
	// computed over the whole history, so this is deliberately unpaged.
	ListByPlayer(ctx context.Context, playerID string) ([]model.Match, error)
	Delete(ctx context.Context, id int64) error
}

// StatRepository declares operations for per-player stat lines on scoring
// units. Upserts enforce at most one line per (unit, player): a correction is
// an atomic replace-in-place, so concurrent report reads never observe a
// half-updated row.
type StatRepository interface {
	UpsertQuarterStat(ctx context.Context, quarterID int64, line model.StatLine) (model.StatLine, error)
	UpsertGameStat(ctx context.Context, gameUnitID int64, line model.StatLine) (model.StatLine, error)
}

// ChallengeRepository declares persistence operations for free-throw
// challenges. ListByUsers powers the friends leaderboard with one round trip.
type ChallengeRepository interface {
	Create(ctx context.Context, c model.Challenge) (model.Challenge, error)
	Update(ctx context.Context, c model.Challenge) (model.Challenge, error)
	Delete(ctx context.Context, id int64, userID string) error
	ListByUser(ctx context.Context, userID string, p Page) (PageResult[model.Challenge], error)
	ListByUsers(ctx context.Context, userIDs []string) (map[string][]model.Challenge, error)
}
