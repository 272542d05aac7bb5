package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hooprivals/stats-service/internal/model"
	"github.com/hooprivals/stats-service/internal/service"
	"github.com/hooprivals/stats-service/pkg/response"
)

type StatsHandler struct {
	svc service.StatsService
}

func NewStatsHandler(svc service.StatsService) *StatsHandler { return &StatsHandler{svc: svc} }

func (h *StatsHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/matches/:match_id/stats")
	{
		// POST records first-time stats, PUT corrects them. Both land on the
		// same upsert path: the store keeps one row per (unit, player).
		g.POST("", h.record)
		g.PUT("", h.record)
	}
}

type statLineRequest struct {
	PlayerID             string `json:"player_id"`
	TwoPointsScored      int    `json:"two_points_scored"`
	TwoPointsAttempted   int    `json:"two_points_attempted"`
	ThreePointsScored    int    `json:"three_points_scored"`
	ThreePointsAttempted int    `json:"three_points_attempted"`
	FreeThrowsScored     int    `json:"free_throws_scored"`
	FreeThrowsAttempted  int    `json:"free_throws_attempted"`
	Rebounds             int    `json:"rebounds"`
	Assists              int    `json:"assists"`
	Blocks               int    `json:"blocks"`
}

type quarterStatsRequest struct {
	QuarterID int64             `json:"quarter_id"`
	Lines     []statLineRequest `json:"lines"`
}

// recordStatsRequest carries either per-quarter submissions (QUARTERS match)
// or whole-game lines (POINTS match), never both.
type recordStatsRequest struct {
	Quarters []quarterStatsRequest `json:"quarters"`
	Game     []statLineRequest     `json:"game"`
}

func (h *StatsHandler) record(c *gin.Context) {
	matchID, err := strconv.ParseInt(c.Param("match_id"), 10, 64)
	if err != nil || matchID <= 0 {
		response.WriteError(c, service.NewInvalidInputError([]service.FieldError{{Field: "match_id", Message: "must be a valid integer > 0"}}))
		return
	}
	var req recordStatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	if len(req.Quarters) > 0 && len(req.Game) > 0 {
		response.WriteError(c, service.NewInvalidInputError([]service.FieldError{{Field: "stats", Message: "submit either quarters or game, not both"}}))
		return
	}

	switch {
	case len(req.Quarters) > 0:
		quarters := make([]service.QuarterSubmission, 0, len(req.Quarters))
		for _, quarter := range req.Quarters {
			quarters = append(quarters, service.QuarterSubmission{
				QuarterID: quarter.QuarterID,
				Lines:     toPlayerStats(quarter.Lines),
			})
		}
		err = h.svc.RecordQuarterStats(c.Request.Context(), matchID, quarters)
	case len(req.Game) > 0:
		err = h.svc.RecordGameStats(c.Request.Context(), matchID, toPlayerStats(req.Game))
	default:
		err = service.NewInvalidInputError([]service.FieldError{{Field: "stats", Message: "must not be empty"}})
	}
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, gin.H{"status": "recorded"})
}

func toPlayerStats(lines []statLineRequest) []service.PlayerStats {
	out := make([]service.PlayerStats, 0, len(lines))
	for _, l := range lines {
		out = append(out, service.PlayerStats{
			PlayerID: l.PlayerID,
			Stats: model.StatLine{
				TwoPointsScored:      l.TwoPointsScored,
				TwoPointsAttempted:   l.TwoPointsAttempted,
				ThreePointsScored:    l.ThreePointsScored,
				ThreePointsAttempted: l.ThreePointsAttempted,
				FreeThrowsScored:     l.FreeThrowsScored,
				FreeThrowsAttempted:  l.FreeThrowsAttempted,
				Rebounds:             l.Rebounds,
				Assists:              l.Assists,
				Blocks:               l.Blocks,
			},
		})
	}
	return out
}
