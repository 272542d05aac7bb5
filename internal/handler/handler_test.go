package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/hooprivals/stats-service/internal/handler"
	"github.com/hooprivals/stats-service/internal/service"
)

// stubPinger lets each test decide whether the database looks reachable.
type stubPinger struct{ err error }

func (s stubPinger) Ping(context.Context) error { return s.err }

// invalidInput replicates the aggregated validation error shape services return.
type invalidInput struct{ fe []service.FieldError }

func (e *invalidInput) Error() string                { return service.ErrInvalidInput.Error() }
func (e *invalidInput) Unwrap() error                { return service.ErrInvalidInput }
func (e *invalidInput) Fields() []service.FieldError { return e.fe }

func newRouter(matchSvc service.MatchService, statsSvc service.StatsService, reportSvc service.ReportService, challengeSvc service.ChallengeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler.Register(r, stubPinger{}, matchSvc, statsSvc, reportSvc, challengeSvc)
	return r
}

func doRequest(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth_Liveness(t *testing.T) {
	r := newRouter(nil, nil, nil, nil)
	w := doRequest(r, httptest.NewRequest(http.MethodGet, "/live", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestHealth_Readiness(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	handler.Register(r, stubPinger{}, nil, nil, nil, nil)
	if w := doRequest(r, httptest.NewRequest(http.MethodGet, "/ready", nil)); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	down := gin.New()
	handler.Register(down, stubPinger{err: errors.New("connection refused")}, nil, nil, nil, nil)
	if w := doRequest(down, httptest.NewRequest(http.MethodGet, "/ready", nil)); w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
}
