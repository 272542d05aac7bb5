package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hooprivals/stats-service/internal/model"
	"github.com/hooprivals/stats-service/internal/repository"
	"github.com/hooprivals/stats-service/internal/service"
)

type stubMatchService struct {
	create struct {
		got   service.CreateMatchParams
		match model.Match
		err   error
	}
	get struct {
		match model.Match
		err   error
	}
	list struct {
		matches []model.Match
		err     error
	}
	deleteErr error
}

func (s *stubMatchService) CreateMatch(_ context.Context, p service.CreateMatchParams) (model.Match, error) {
	s.create.got = p
	return s.create.match, s.create.err
}
func (s *stubMatchService) GetMatch(context.Context, int64) (model.Match, error) {
	return s.get.match, s.get.err
}
func (s *stubMatchService) ListMatches(context.Context, string) ([]model.Match, error) {
	return s.list.matches, s.list.err
}
func (s *stubMatchService) DeleteMatch(context.Context, int64) error { return s.deleteErr }

var _ service.MatchService = (*stubMatchService)(nil)

func TestMatchHandler_Create_OK(t *testing.T) {
	stub := &stubMatchService{}
	stub.create.match = model.Match{ID: 1, MatchType: model.MatchTypeQuarters}
	r := newRouter(stub, nil, nil, nil)

	body, _ := json.Marshal(map[string]any{
		"match_type": "QUARTERS",
		"team_size":  2,
		"date":       "2026-03-14",
		"arena_id":   1,
		"team_a":     []string{"a1", "a2"},
		"team_b":     []string{"b1", "b2"},
		"quarters":   []map[string]int{{"number": 1, "duration": 10}},
	})
	w := doRequest(r, httptest.NewRequest(http.MethodPost, "/api/v1/matches", bytes.NewReader(body)))
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if stub.create.got.TeamSize != 2 || len(stub.create.got.Quarters) != 1 {
		t.Fatalf("params not forwarded: %+v", stub.create.got)
	}
	if want := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC); !stub.create.got.Date.Equal(want) {
		t.Fatalf("date = %v, want %v", stub.create.got.Date, want)
	}
}

func TestMatchHandler_Create_BadDate(t *testing.T) {
	r := newRouter(&stubMatchService{}, nil, nil, nil)
	body, _ := json.Marshal(map[string]any{"match_type": "QUARTERS", "date": "14-03-2026"})
	w := doRequest(r, httptest.NewRequest(http.MethodPost, "/api/v1/matches", bytes.NewReader(body)))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("date")) {
		t.Fatalf("expected field error for date: %s", w.Body.String())
	}
}

func TestMatchHandler_Create_Invalid(t *testing.T) {
	stub := &stubMatchService{}
	stub.create.err = &invalidInput{fe: []service.FieldError{{Field: "team_size", Message: "must be between 1 and 5"}}}
	r := newRouter(stub, nil, nil, nil)

	body, _ := json.Marshal(map[string]any{"match_type": "QUARTERS", "date": "2026-03-14"})
	w := doRequest(r, httptest.NewRequest(http.MethodPost, "/api/v1/matches", bytes.NewReader(body)))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("invalid_input")) || !bytes.Contains(w.Body.Bytes(), []byte("team_size")) {
		t.Fatalf("expected team_size field error: %s", w.Body.String())
	}
}

func TestMatchHandler_Get(t *testing.T) {
	stub := &stubMatchService{}
	stub.get.match = model.Match{ID: 7, MatchType: model.MatchTypePoints}
	r := newRouter(stub, nil, nil, nil)

	w := doRequest(r, httptest.NewRequest(http.MethodGet, "/api/v1/matches/7", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp model.Match
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || resp.ID != 7 {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestMatchHandler_Get_BadID(t *testing.T) {
	r := newRouter(&stubMatchService{}, nil, nil, nil)
	w := doRequest(r, httptest.NewRequest(http.MethodGet, "/api/v1/matches/abc", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestMatchHandler_Get_NotFound(t *testing.T) {
	stub := &stubMatchService{}
	stub.get.err = repository.ErrNotFound
	r := newRouter(stub, nil, nil, nil)
	w := doRequest(r, httptest.NewRequest(http.MethodGet, "/api/v1/matches/42", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestMatchHandler_Delete(t *testing.T) {
	r := newRouter(&stubMatchService{}, nil, nil, nil)
	w := doRequest(r, httptest.NewRequest(http.MethodDelete, "/api/v1/matches/7", nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestMatchHandler_List(t *testing.T) {
	stub := &stubMatchService{}
	stub.list.matches = []model.Match{{ID: 1}, {ID: 2}}
	r := newRouter(stub, nil, nil, nil)

	w := doRequest(r, httptest.NewRequest(http.MethodGet, "/api/v1/matches?player_id=a1", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp []model.Match
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || len(resp) != 2 {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
