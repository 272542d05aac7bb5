package service_test

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/hooprivals/stats-service/internal/model"
	"github.com/hooprivals/stats-service/internal/repository"
	"github.com/hooprivals/stats-service/internal/service"
)

type fakeMatchRepo struct {
	created []model.Match
	byID    map[int64]model.Match
	history []model.Match
}

func (f *fakeMatchRepo) Create(_ context.Context, m model.Match) (model.Match, error) {
	m.ID = int64(len(f.created) + 1)
	f.created = append(f.created, m)
	return m, nil
}

func (f *fakeMatchRepo) GetByID(_ context.Context, id int64) (model.Match, error) {
	if m, ok := f.byID[id]; ok {
		return m, nil
	}
	return model.Match{}, repository.ErrNotFound
}

func (f *fakeMatchRepo) ListByPlayer(context.Context, string) ([]model.Match, error) {
	return f.history, nil
}

func (f *fakeMatchRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

var _ repository.MatchRepository = (*fakeMatchRepo)(nil)

type fakeTx struct{ calls int }

func (f *fakeTx) WithinTx(ctx context.Context, fn repository.TxFunc) error {
	f.calls++
	return fn(ctx)
}

var _ repository.TxManager = (*fakeTx)(nil)

func isInvalid(err error) bool { return errors.Is(err, service.ErrInvalidInput) }

func hasFieldError(err error, field string) bool {
	for _, fe := range service.FieldErrors(err) {
		if fe.Field == field {
			return true
		}
	}
	return false
}

func intPtr(v int) *int { return &v }

func validQuartersParams() service.CreateMatchParams {
	return service.CreateMatchParams{
		MatchType: model.MatchTypeQuarters,
		TeamSize:  2,
		Date:      time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		ArenaID:   1,
		TeamA:     []string{"a1", "a2"},
		TeamB:     []string{"b1", "b2"},
		Quarters: []model.Quarter{
			{Number: 1, Duration: 10},
			{Number: 2, Duration: 10},
		},
	}
}

func TestMatchService_CreateMatch_Validation(t *testing.T) {
	logger := zerolog.New(io.Discard)

	cases := []struct {
		name   string
		mutate func(*service.CreateMatchParams)
		field  string
	}{
		{"bad match type", func(p *service.CreateMatchParams) { p.MatchType = "OVERTIME" }, "match_type"},
		{"team size too small", func(p *service.CreateMatchParams) { p.TeamSize = 0 }, "team_size"},
		{"team size too big", func(p *service.CreateMatchParams) { p.TeamSize = 6 }, "team_size"},
		{"zero date", func(p *service.CreateMatchParams) { p.Date = time.Time{} }, "date"},
		{"bad arena", func(p *service.CreateMatchParams) { p.ArenaID = 0 }, "arena_id"},
		{"roster size mismatch", func(p *service.CreateMatchParams) { p.TeamA = []string{"a1"} }, "teams"},
		{"player on both teams", func(p *service.CreateMatchParams) { p.TeamB = []string{"a1", "b2"} }, "teams"},
		{"quarters missing", func(p *service.CreateMatchParams) { p.Quarters = nil }, "quarters"},
		{"quarter duration zero", func(p *service.CreateMatchParams) { p.Quarters[0].Duration = 0 }, "quarters"},
		{"points target on quarters match", func(p *service.CreateMatchParams) { p.PointsToWin = intPtr(21) }, "points_to_win"},
		{
			"points match without target",
			func(p *service.CreateMatchParams) {
				p.MatchType = model.MatchTypePoints
				p.Quarters = nil
			},
			"points_to_win",
		},
		{
			"points match with quarters",
			func(p *service.CreateMatchParams) {
				p.MatchType = model.MatchTypePoints
				p.PointsToWin = intPtr(21)
			},
			"quarters",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeMatchRepo{}
			svc := service.NewMatchService(repo, &fakeTx{}, logger)
			p := validQuartersParams()
			tc.mutate(&p)

			_, err := svc.CreateMatch(context.Background(), p)
			if !isInvalid(err) {
				t.Fatalf("want invalid input, got %v", err)
			}
			if !hasFieldError(err, tc.field) {
				t.Fatalf("missing field error %s, got %v", tc.field, service.FieldErrors(err))
			}
			if len(repo.created) != 0 {
				t.Fatalf("invalid match must not be persisted")
			}
		})
	}
}

func TestMatchService_CreateMatch_OK(t *testing.T) {
	repo := &fakeMatchRepo{}
	tx := &fakeTx{}
	svc := service.NewMatchService(repo, tx, zerolog.New(io.Discard))

	out, err := svc.CreateMatch(context.Background(), validQuartersParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.ID != 1 || len(out.Teams) != 2 || len(out.Quarters) != 2 {
		t.Fatalf("unexpected match: %+v", out)
	}
	if tx.calls != 1 {
		t.Fatalf("create must run inside one transaction, got %d", tx.calls)
	}
}

func TestMatchService_CreateMatch_PointsOK(t *testing.T) {
	repo := &fakeMatchRepo{}
	svc := service.NewMatchService(repo, &fakeTx{}, zerolog.New(io.Discard))

	p := validQuartersParams()
	p.MatchType = model.MatchTypePoints
	p.Quarters = nil
	p.PointsToWin = intPtr(21)

	out, err := svc.CreateMatch(context.Background(), p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.PointsToWin == nil || *out.PointsToWin != 21 {
		t.Fatalf("points target lost: %+v", out)
	}
}

func TestMatchService_GetMatch(t *testing.T) {
	repo := &fakeMatchRepo{byID: map[int64]model.Match{7: {ID: 7}}}
	svc := service.NewMatchService(repo, &fakeTx{}, zerolog.New(io.Discard))

	if _, err := svc.GetMatch(context.Background(), 0); !isInvalid(err) {
		t.Fatalf("want invalid input for id 0, got %v", err)
	}
	if _, err := svc.GetMatch(context.Background(), 9); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("want not found, got %v", err)
	}
	m, err := svc.GetMatch(context.Background(), 7)
	if err != nil || m.ID != 7 {
		t.Fatalf("unexpected result: %+v, %v", m, err)
	}
}

func TestMatchService_DeleteMatch(t *testing.T) {
	repo := &fakeMatchRepo{byID: map[int64]model.Match{7: {ID: 7}}}
	svc := service.NewMatchService(repo, &fakeTx{}, zerolog.New(io.Discard))

	if err := svc.DeleteMatch(context.Background(), -1); !isInvalid(err) {
		t.Fatalf("want invalid input, got %v", err)
	}
	if err := svc.DeleteMatch(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.DeleteMatch(context.Background(), 7); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("second delete must be not found, got %v", err)
	}
}

func TestMatchService_ListMatches_RequiresPlayer(t *testing.T) {
	svc := service.NewMatchService(&fakeMatchRepo{}, &fakeTx{}, zerolog.New(io.Discard))
	if _, err := svc.ListMatches(context.Background(), ""); !isInvalid(err) {
		t.Fatalf("want invalid input, got %v", err)
	}
}
