package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hooprivals/stats-service/internal/model"
	"github.com/hooprivals/stats-service/internal/repository"
)

type challengeRepository struct{ pool *pgxpool.Pool }

func NewChallengeRepository(pool *pgxpool.Pool) repository.ChallengeRepository {
	return &challengeRepository{pool: pool}
}

const challengeColumns = `id, user_id, date, shots_made, shots_taken, badge, created_at, updated_at`

func (r *challengeRepository) Create(ctx context.Context, c model.Challenge) (model.Challenge, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Challenge{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`INSERT INTO challenges (user_id, date, shots_made, shots_taken, badge)
		 VALUES ($1,$2,$3,$4,$5)
		 RETURNING `+challengeColumns,
		c.UserID, c.Date, c.ShotsMade, c.ShotsTaken, c.Badge,
	)
	return scanChallenge(row)
}

// Update rewrites the attempt and its derived badge in one statement. Scoped
// to the owning user so one player cannot correct another's record.
func (r *challengeRepository) Update(ctx context.Context, c model.Challenge) (model.Challenge, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Challenge{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`UPDATE challenges
		 SET date = $3, shots_made = $4, shots_taken = $5, badge = $6, updated_at = NOW()
		 WHERE id = $1 AND user_id = $2
		 RETURNING `+challengeColumns,
		c.ID, c.UserID, c.Date, c.ShotsMade, c.ShotsTaken, c.Badge,
	)
	return scanChallenge(row)
}

func (r *challengeRepository) Delete(ctx context.Context, id int64, userID string) error {
	if err := ensurePool(r.pool); err != nil {
		return err
	}
	exec := getQ(ctx, r.pool)
	tag, err := exec.Exec(ctx, `DELETE FROM challenges WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return repository.MapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *challengeRepository) ListByUser(ctx context.Context, userID string, p repository.Page) (repository.PageResult[model.Challenge], error) {
	if err := ensurePool(r.pool); err != nil {
		return repository.PageResult[model.Challenge]{}, err
	}
	limit, offset := sanitizeLimitOffset(p.Limit, p.Offset)
	exec := getQ(ctx, r.pool)
	rows, err := exec.Query(ctx,
		`SELECT `+challengeColumns+`, COUNT(*) OVER() AS total
		 FROM challenges
		 WHERE user_id = $1
		 ORDER BY date DESC, id DESC
		 LIMIT $2 OFFSET $3`,
		userID, limit, offset,
	)
	if err != nil {
		return repository.PageResult[model.Challenge]{}, repository.MapPgError(err)
	}
	defer rows.Close()

	res := repository.PageResult[model.Challenge]{Items: make([]model.Challenge, 0, limit)}
	for rows.Next() {
		var (
			c     model.Challenge
			total int
		)
		if err := rows.Scan(&c.ID, &c.UserID, &c.Date, &c.ShotsMade, &c.ShotsTaken, &c.Badge, &c.CreatedAt, &c.UpdatedAt, &total); err != nil {
			return repository.PageResult[model.Challenge]{}, repository.MapPgError(err)
		}
		res.Items = append(res.Items, c)
		res.Total = total
	}
	return res, repository.MapPgError(rows.Err())
}

// ListByUsers fetches the full challenge history of every given user in one
// round trip, grouped by user. Feeds the lifetime summaries, so no paging.
func (r *challengeRepository) ListByUsers(ctx context.Context, userIDs []string) (map[string][]model.Challenge, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	out := make(map[string][]model.Challenge, len(userIDs))
	if len(userIDs) == 0 {
		return out, nil
	}
	exec := getQ(ctx, r.pool)
	rows, err := exec.Query(ctx,
		`SELECT `+challengeColumns+`
		 FROM challenges
		 WHERE user_id = ANY($1)
		 ORDER BY user_id, date DESC, id DESC`, userIDs,
	)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	defer rows.Close()

	for rows.Next() {
		var c model.Challenge
		if err := rows.Scan(&c.ID, &c.UserID, &c.Date, &c.ShotsMade, &c.ShotsTaken, &c.Badge, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, repository.MapPgError(err)
		}
		out[c.UserID] = append(out[c.UserID], c)
	}
	return out, repository.MapPgError(rows.Err())
}

func scanChallenge(row pgx.Row) (model.Challenge, error) {
	var c model.Challenge
	if err := row.Scan(&c.ID, &c.UserID, &c.Date, &c.ShotsMade, &c.ShotsTaken, &c.Badge, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Challenge{}, repository.ErrNotFound
		}
		return model.Challenge{}, repository.MapPgError(err)
	}
	return c, nil
}

var _ repository.ChallengeRepository = (*challengeRepository)(nil)
