package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hooprivals/stats-service/internal/repository"
	"github.com/hooprivals/stats-service/internal/service"
	"github.com/hooprivals/stats-service/pkg/response"
)

type ChallengeHandler struct {
	svc service.ChallengeService
}

func NewChallengeHandler(svc service.ChallengeService) *ChallengeHandler {
	return &ChallengeHandler{svc: svc}
}

func (h *ChallengeHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/challenges/freethrows")
	{
		g.POST("", h.submit)
		g.GET("", h.list)
		g.PUT("/:challenge_id", h.correct)
		g.DELETE("/:challenge_id", h.delete)
		g.GET("/summary", h.summary)
		g.GET("/leaderboard", h.leaderboard)
	}
}

type challengeRequest struct {
	UserID    string `json:"user_id"`
	Date      string `json:"date"`
	MadeShots int    `json:"made_shots"`
	Attempts  int    `json:"attempts"`
}

func parseChallengeDate(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, true
	}
	t, err := time.Parse("2006-01-02", raw)
	return t, err == nil
}

func (h *ChallengeHandler) submit(c *gin.Context) {
	var req challengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	date, ok := parseChallengeDate(req.Date)
	if !ok {
		response.WriteError(c, service.NewInvalidInputError([]service.FieldError{{Field: "date", Message: "must be YYYY-MM-DD"}}))
		return
	}
	challenge, err := h.svc.SubmitChallenge(c.Request.Context(), req.UserID, date, req.MadeShots, req.Attempts)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, challenge)
}

func (h *ChallengeHandler) correct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("challenge_id"), 10, 64)
	if err != nil || id <= 0 {
		response.WriteError(c, service.NewInvalidInputError([]service.FieldError{{Field: "challenge_id", Message: "must be a valid integer > 0"}}))
		return
	}
	var req challengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	date, ok := parseChallengeDate(req.Date)
	if !ok {
		response.WriteError(c, service.NewInvalidInputError([]service.FieldError{{Field: "date", Message: "must be YYYY-MM-DD"}}))
		return
	}
	challenge, err := h.svc.CorrectChallenge(c.Request.Context(), req.UserID, id, date, req.MadeShots, req.Attempts)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, challenge)
}

func (h *ChallengeHandler) delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("challenge_id"), 10, 64)
	if err != nil || id <= 0 {
		response.WriteError(c, service.NewInvalidInputError([]service.FieldError{{Field: "challenge_id", Message: "must be a valid integer > 0"}}))
		return
	}
	userID := c.Query("user_id")
	if err := h.svc.DeleteChallenge(c.Request.Context(), userID, id); err != nil {
		response.WriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ChallengeHandler) list(c *gin.Context) {
	userID := c.Query("user_id")
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))
	res, err := h.svc.ListChallenges(c.Request.Context(), userID, repository.Page{Limit: limit, Offset: offset})
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, res)
}

func (h *ChallengeHandler) summary(c *gin.Context) {
	userID := c.Query("user_id")
	summary, err := h.svc.GetChallengeSummary(c.Request.Context(), userID)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, summary)
}

// leaderboard tallies badges for the friend identities passed by the caller;
// friendship resolution itself lives with the identity provider, not here.
func (h *ChallengeHandler) leaderboard(c *gin.Context) {
	friendIDs := c.QueryArray("friend_id")
	entries, err := h.svc.GetLeaderboard(c.Request.Context(), friendIDs)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, entries)
}
