package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hooprivals/stats-service/internal/model"
	"github.com/hooprivals/stats-service/internal/repository"
)

type statRepository struct{ pool *pgxpool.Pool }

func NewStatRepository(pool *pgxpool.Pool) repository.StatRepository {
	return &statRepository{pool: pool}
}

// Upserts keep the one-line-per-(unit,player) invariant in the database
// itself: ON CONFLICT rewrites the whole row in one statement, so a
// correction is atomic and concurrent report reads never see a line with
// scored updated but attempted not yet.

func (r *statRepository) UpsertQuarterStat(ctx context.Context, quarterID int64, line model.StatLine) (model.StatLine, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.StatLine{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`INSERT INTO quarter_stats (
			quarter_id, player_id,
			two_points_scored, two_points_attempted,
			three_points_scored, three_points_attempted,
			free_throws_scored, free_throws_attempted,
			rebounds, assists, blocks
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		ON CONFLICT (quarter_id, player_id)
		DO UPDATE SET
			two_points_scored = EXCLUDED.two_points_scored,
			two_points_attempted = EXCLUDED.two_points_attempted,
			three_points_scored = EXCLUDED.three_points_scored,
			three_points_attempted = EXCLUDED.three_points_attempted,
			free_throws_scored = EXCLUDED.free_throws_scored,
			free_throws_attempted = EXCLUDED.free_throws_attempted,
			rebounds = EXCLUDED.rebounds,
			assists = EXCLUDED.assists,
			blocks = EXCLUDED.blocks,
			updated_at = NOW()
		RETURNING id, player_id,
			two_points_scored, two_points_attempted,
			three_points_scored, three_points_attempted,
			free_throws_scored, free_throws_attempted,
			rebounds, assists, blocks`,
		quarterID, line.PlayerID,
		line.TwoPointsScored, line.TwoPointsAttempted,
		line.ThreePointsScored, line.ThreePointsAttempted,
		line.FreeThrowsScored, line.FreeThrowsAttempted,
		line.Rebounds, line.Assists, line.Blocks,
	)
	return scanStatLine(row)
}

func (r *statRepository) UpsertGameStat(ctx context.Context, gameUnitID int64, line model.StatLine) (model.StatLine, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.StatLine{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`INSERT INTO game_stats (
			game_unit_id, player_id,
			two_points_scored, two_points_attempted,
			three_points_scored, three_points_attempted,
			free_throws_scored, free_throws_attempted,
			rebounds, assists, blocks
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		ON CONFLICT (game_unit_id, player_id)
		DO UPDATE SET
			two_points_scored = EXCLUDED.two_points_scored,
			two_points_attempted = EXCLUDED.two_points_attempted,
			three_points_scored = EXCLUDED.three_points_scored,
			three_points_attempted = EXCLUDED.three_points_attempted,
			free_throws_scored = EXCLUDED.free_throws_scored,
			free_throws_attempted = EXCLUDED.free_throws_attempted,
			rebounds = EXCLUDED.rebounds,
			assists = EXCLUDED.assists,
			blocks = EXCLUDED.blocks,
			updated_at = NOW()
		RETURNING id, player_id,
			two_points_scored, two_points_attempted,
			three_points_scored, three_points_attempted,
			free_throws_scored, free_throws_attempted,
			rebounds, assists, blocks`,
		gameUnitID, line.PlayerID,
		line.TwoPointsScored, line.TwoPointsAttempted,
		line.ThreePointsScored, line.ThreePointsAttempted,
		line.FreeThrowsScored, line.FreeThrowsAttempted,
		line.Rebounds, line.Assists, line.Blocks,
	)
	return scanStatLine(row)
}

type rowScanner interface{ Scan(dest ...any) error }

func scanStatLine(row rowScanner) (model.StatLine, error) {
	var out model.StatLine
	if err := row.Scan(&out.ID, &out.PlayerID,
		&out.TwoPointsScored, &out.TwoPointsAttempted,
		&out.ThreePointsScored, &out.ThreePointsAttempted,
		&out.FreeThrowsScored, &out.FreeThrowsAttempted,
		&out.Rebounds, &out.Assists, &out.Blocks); err != nil {
		return model.StatLine{}, repository.MapPgError(err)
	}
	return out, nil
}

var _ repository.StatRepository = (*statRepository)(nil)
