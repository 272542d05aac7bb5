package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hooprivals/stats-service/internal/model"
	"github.com/hooprivals/stats-service/internal/repository"
)

type matchRepository struct{ pool *pgxpool.Pool }

func NewMatchRepository(pool *pgxpool.Pool) repository.MatchRepository {
	return &matchRepository{pool: pool}
}

// Create persists the match header, its two teams with memberships, and the
// per-type scoring units. Callers wrap it in TxManager.WithinTx so the whole
// graph lands atomically; every statement here picks up the tx from context.
func (r *matchRepository) Create(ctx context.Context, m model.Match) (model.Match, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Match{}, err
	}
	exec := getQ(ctx, r.pool)

	row := exec.QueryRow(ctx,
		`INSERT INTO matches (match_type, team_size, points_to_win, date, arena_id)
		 VALUES ($1,$2,$3,$4,$5)
		 RETURNING id, created_at, updated_at`,
		m.MatchType, m.TeamSize, m.PointsToWin, m.Date, m.ArenaID,
	)
	out := m
	if err := row.Scan(&out.ID, &out.CreatedAt, &out.UpdatedAt); err != nil {
		return model.Match{}, repository.MapPgError(err)
	}

	out.Teams = make([]model.Team, 0, len(m.Teams))
	for _, team := range m.Teams {
		created := model.Team{MatchID: out.ID, Players: team.Players}
		if err := exec.QueryRow(ctx,
			`INSERT INTO teams (match_id) VALUES ($1) RETURNING id`, out.ID,
		).Scan(&created.ID); err != nil {
			return model.Match{}, repository.MapPgError(err)
		}
		for _, playerID := range team.Players {
			if _, err := exec.Exec(ctx,
				`INSERT INTO team_players (team_id, player_id) VALUES ($1,$2)`,
				created.ID, playerID,
			); err != nil {
				return model.Match{}, repository.MapPgError(err)
			}
		}
		out.Teams = append(out.Teams, created)
	}

	switch m.MatchType {
	case model.MatchTypeQuarters:
		out.Quarters = make([]model.Quarter, 0, len(m.Quarters))
		for _, quarter := range m.Quarters {
			created := model.Quarter{Number: quarter.Number, Duration: quarter.Duration}
			if err := exec.QueryRow(ctx,
				`INSERT INTO quarters (match_id, number, duration) VALUES ($1,$2,$3) RETURNING id`,
				out.ID, quarter.Number, quarter.Duration,
			).Scan(&created.ID); err != nil {
				return model.Match{}, repository.MapPgError(err)
			}
			out.Quarters = append(out.Quarters, created)
		}
	case model.MatchTypePoints:
		unit := &model.GameUnit{}
		if err := exec.QueryRow(ctx,
			`INSERT INTO game_units (match_id) VALUES ($1) RETURNING id`, out.ID,
		).Scan(&unit.ID); err != nil {
			return model.Match{}, repository.MapPgError(err)
		}
		out.PointsUnit = unit
	}

	return out, nil
}

func (r *matchRepository) GetByID(ctx context.Context, id int64) (model.Match, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Match{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`SELECT id, match_type, team_size, points_to_win, date, arena_id, created_at, updated_at
		 FROM matches WHERE id = $1`, id,
	)
	var m model.Match
	if err := row.Scan(&m.ID, &m.MatchType, &m.TeamSize, &m.PointsToWin, &m.Date, &m.ArenaID, &m.CreatedAt, &m.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Match{}, repository.ErrNotFound
		}
		return model.Match{}, repository.MapPgError(err)
	}
	matches := []model.Match{m}
	if err := r.hydrate(ctx, exec, matches); err != nil {
		return model.Match{}, err
	}
	return matches[0], nil
}

func (r *matchRepository) ListByPlayer(ctx context.Context, playerID string) ([]model.Match, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	exec := getQ(ctx, r.pool)
	rows, err := exec.Query(ctx,
		`SELECT DISTINCT m.id, m.match_type, m.team_size, m.points_to_win, m.date, m.arena_id, m.created_at, m.updated_at
		 FROM matches m
		 JOIN teams t ON t.match_id = m.id
		 JOIN team_players tp ON tp.team_id = t.id
		 WHERE tp.player_id = $1
		 ORDER BY m.date DESC, m.id DESC`, playerID,
	)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	defer rows.Close()

	matches := make([]model.Match, 0, 16)
	for rows.Next() {
		var m model.Match
		if err := rows.Scan(&m.ID, &m.MatchType, &m.TeamSize, &m.PointsToWin, &m.Date, &m.ArenaID, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, repository.MapPgError(err)
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.MapPgError(err)
	}
	if err := r.hydrate(ctx, exec, matches); err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *matchRepository) Delete(ctx context.Context, id int64) error {
	if err := ensurePool(r.pool); err != nil {
		return err
	}
	exec := getQ(ctx, r.pool)
	tag, err := exec.Exec(ctx, `DELETE FROM matches WHERE id = $1`, id)
	if err != nil {
		return repository.MapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// hydrate attaches teams, memberships, quarters and stat lines to the given
// match headers with one batched query per relation instead of N+1 lookups.
func (r *matchRepository) hydrate(ctx context.Context, exec q, matches []model.Match) error {
	if len(matches) == 0 {
		return nil
	}
	byID := make(map[int64]*model.Match, len(matches))
	ids := make([]int64, 0, len(matches))
	for i := range matches {
		byID[matches[i].ID] = &matches[i]
		ids = append(ids, matches[i].ID)
	}

	if err := r.hydrateTeams(ctx, exec, byID, ids); err != nil {
		return err
	}
	if err := r.hydrateQuarters(ctx, exec, byID, ids); err != nil {
		return err
	}
	return r.hydrateGameUnits(ctx, exec, byID, ids)
}

func (r *matchRepository) hydrateTeams(ctx context.Context, exec q, byID map[int64]*model.Match, ids []int64) error {
	rows, err := exec.Query(ctx,
		`SELECT t.id, t.match_id, tp.player_id
		 FROM teams t
		 LEFT JOIN team_players tp ON tp.team_id = t.id
		 WHERE t.match_id = ANY($1)
		 ORDER BY t.id, tp.player_id`, ids,
	)
	if err != nil {
		return repository.MapPgError(err)
	}
	defer rows.Close()

	// Collect first, attach after: appending to match slices while holding
	// pointers into them is how you get stale-backing-array bugs.
	type teamRow struct {
		matchID int64
		players []string
	}
	collected := make(map[int64]*teamRow)
	order := make([]int64, 0, 2*len(ids))
	for rows.Next() {
		var (
			teamID, matchID int64
			playerID        *string
		)
		if err := rows.Scan(&teamID, &matchID, &playerID); err != nil {
			return repository.MapPgError(err)
		}
		team, ok := collected[teamID]
		if !ok {
			team = &teamRow{matchID: matchID}
			collected[teamID] = team
			order = append(order, teamID)
		}
		if playerID != nil {
			team.players = append(team.players, *playerID)
		}
	}
	if err := rows.Err(); err != nil {
		return repository.MapPgError(err)
	}
	for _, teamID := range order {
		team := collected[teamID]
		m := byID[team.matchID]
		m.Teams = append(m.Teams, model.Team{ID: teamID, MatchID: team.matchID, Players: team.players})
	}
	return nil
}

func (r *matchRepository) hydrateQuarters(ctx context.Context, exec q, byID map[int64]*model.Match, ids []int64) error {
	rows, err := exec.Query(ctx,
		`SELECT id, match_id, number, duration FROM quarters
		 WHERE match_id = ANY($1) ORDER BY match_id, number`, ids,
	)
	if err != nil {
		return repository.MapPgError(err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			quarter model.Quarter
			matchID int64
		)
		if err := rows.Scan(&quarter.ID, &matchID, &quarter.Number, &quarter.Duration); err != nil {
			return repository.MapPgError(err)
		}
		byID[matchID].Quarters = append(byID[matchID].Quarters, quarter)
	}
	if err := rows.Err(); err != nil {
		return repository.MapPgError(err)
	}

	// Index quarters only after the slices have stopped growing.
	quarters := make(map[int64]*model.Quarter)
	for _, m := range byID {
		for i := range m.Quarters {
			quarters[m.Quarters[i].ID] = &m.Quarters[i]
		}
	}

	statRows, err := exec.Query(ctx,
		`SELECT qs.id, qs.quarter_id, qs.player_id,
		        qs.two_points_scored, qs.two_points_attempted,
		        qs.three_points_scored, qs.three_points_attempted,
		        qs.free_throws_scored, qs.free_throws_attempted,
		        qs.rebounds, qs.assists, qs.blocks
		 FROM quarter_stats qs
		 JOIN quarters qu ON qu.id = qs.quarter_id
		 WHERE qu.match_id = ANY($1)
		 ORDER BY qs.id`, ids,
	)
	if err != nil {
		return repository.MapPgError(err)
	}
	defer statRows.Close()

	for statRows.Next() {
		var (
			line      model.StatLine
			quarterID int64
		)
		if err := statRows.Scan(&line.ID, &quarterID, &line.PlayerID,
			&line.TwoPointsScored, &line.TwoPointsAttempted,
			&line.ThreePointsScored, &line.ThreePointsAttempted,
			&line.FreeThrowsScored, &line.FreeThrowsAttempted,
			&line.Rebounds, &line.Assists, &line.Blocks); err != nil {
			return repository.MapPgError(err)
		}
		if quarter, ok := quarters[quarterID]; ok {
			quarter.Stats = append(quarter.Stats, line)
		}
	}
	return repository.MapPgError(statRows.Err())
}

func (r *matchRepository) hydrateGameUnits(ctx context.Context, exec q, byID map[int64]*model.Match, ids []int64) error {
	rows, err := exec.Query(ctx,
		`SELECT id, match_id FROM game_units WHERE match_id = ANY($1)`, ids,
	)
	if err != nil {
		return repository.MapPgError(err)
	}
	defer rows.Close()

	units := make(map[int64]*model.GameUnit)
	for rows.Next() {
		var unitID, matchID int64
		if err := rows.Scan(&unitID, &matchID); err != nil {
			return repository.MapPgError(err)
		}
		m := byID[matchID]
		m.PointsUnit = &model.GameUnit{ID: unitID}
		units[unitID] = m.PointsUnit
	}
	if err := rows.Err(); err != nil {
		return repository.MapPgError(err)
	}

	statRows, err := exec.Query(ctx,
		`SELECT gs.id, gs.game_unit_id, gs.player_id,
		        gs.two_points_scored, gs.two_points_attempted,
		        gs.three_points_scored, gs.three_points_attempted,
		        gs.free_throws_scored, gs.free_throws_attempted,
		        gs.rebounds, gs.assists, gs.blocks
		 FROM game_stats gs
		 JOIN game_units gu ON gu.id = gs.game_unit_id
		 WHERE gu.match_id = ANY($1)
		 ORDER BY gs.id`, ids,
	)
	if err != nil {
		return repository.MapPgError(err)
	}
	defer statRows.Close()

	for statRows.Next() {
		var (
			line   model.StatLine
			unitID int64
		)
		if err := statRows.Scan(&line.ID, &unitID, &line.PlayerID,
			&line.TwoPointsScored, &line.TwoPointsAttempted,
			&line.ThreePointsScored, &line.ThreePointsAttempted,
			&line.FreeThrowsScored, &line.FreeThrowsAttempted,
			&line.Rebounds, &line.Assists, &line.Blocks); err != nil {
			return repository.MapPgError(err)
		}
		if unit, ok := units[unitID]; ok {
			unit.Stats = append(unit.Stats, line)
		}
	}
	return repository.MapPgError(statRows.Err())
}

var _ repository.MatchRepository = (*matchRepository)(nil)
