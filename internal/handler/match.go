package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hooprivals/stats-service/internal/model"
	"github.com/hooprivals/stats-service/internal/service"
	"github.com/hooprivals/stats-service/pkg/response"
)

type MatchHandler struct {
	svc service.MatchService
}

func NewMatchHandler(svc service.MatchService) *MatchHandler { return &MatchHandler{svc: svc} }

func (h *MatchHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/matches")
	{
		g.POST("", h.create)
		g.GET("", h.list)
		// Stable wildcard name so the nested stats routes can reuse it without Gin conflicts.
		g.GET("/:match_id", h.getByID)
		g.DELETE("/:match_id", h.delete)
	}
}

type quarterRequest struct {
	Number   int `json:"number"`
	Duration int `json:"duration"`
}

type createMatchRequest struct {
	MatchType   string           `json:"match_type"`
	TeamSize    int              `json:"team_size"`
	PointsToWin *int             `json:"points_to_win"`
	Date        string           `json:"date"` // e.g. "2025-03-15"
	ArenaID     int64            `json:"arena_id"`
	TeamA       []string         `json:"team_a"`
	TeamB       []string         `json:"team_b"`
	Quarters    []quarterRequest `json:"quarters"`
}

func (h *MatchHandler) create(c *gin.Context) {
	var req createMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		response.WriteError(c, service.NewInvalidInputError([]service.FieldError{{Field: "date", Message: "must be YYYY-MM-DD"}}))
		return
	}
	quarters := make([]model.Quarter, 0, len(req.Quarters))
	for _, quarter := range req.Quarters {
		quarters = append(quarters, model.Quarter{Number: quarter.Number, Duration: quarter.Duration})
	}
	match, err := h.svc.CreateMatch(c.Request.Context(), service.CreateMatchParams{
		MatchType:   model.MatchType(req.MatchType),
		TeamSize:    req.TeamSize,
		PointsToWin: req.PointsToWin,
		Date:        date,
		ArenaID:     req.ArenaID,
		TeamA:       req.TeamA,
		TeamB:       req.TeamB,
		Quarters:    quarters,
	})
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, match)
}

func (h *MatchHandler) list(c *gin.Context) {
	playerID := c.Query("player_id")
	matches, err := h.svc.ListMatches(c.Request.Context(), playerID)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, matches)
}

func (h *MatchHandler) getByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("match_id"), 10, 64)
	if err != nil || id <= 0 {
		response.WriteError(c, service.NewInvalidInputError([]service.FieldError{{Field: "match_id", Message: "must be a valid integer > 0"}}))
		return
	}
	match, err := h.svc.GetMatch(c.Request.Context(), id)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, match)
}

func (h *MatchHandler) delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("match_id"), 10, 64)
	if err != nil || id <= 0 {
		response.WriteError(c, service.NewInvalidInputError([]service.FieldError{{Field: "match_id", Message: "must be a valid integer > 0"}}))
		return
	}
	if err := h.svc.DeleteMatch(c.Request.Context(), id); err != nil {
		response.WriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
