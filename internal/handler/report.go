package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hooprivals/stats-service/internal/service"
	"github.com/hooprivals/stats-service/pkg/response"
)

type ReportHandler struct {
	svc service.ReportService
}

func NewReportHandler(svc service.ReportService) *ReportHandler { return &ReportHandler{svc: svc} }

func (h *ReportHandler) Register(r *gin.RouterGroup) {
	r.Group("/players").GET("/:player_id/report", h.report)
}

func (h *ReportHandler) report(c *gin.Context) {
	playerID := c.Param("player_id")
	report, err := h.svc.GetStatsReport(c.Request.Context(), playerID)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, report)
}
