package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bharaths07/sportsv1.1-sub000/internal/service"
	"github.com/bharaths07/sportsv1.1-sub000/internal/stats"
	"github.com/bharaths07/sportsv1.1-sub000/pkg/response"
)

// StatsHandler serves leaderboards folded from completed matches.
type StatsHandler struct {
	svc service.StatsService
}

func NewStatsHandler(svc service.StatsService) *StatsHandler { return &StatsHandler{svc: svc} }

func (h *StatsHandler) Register(r *gin.RouterGroup) {
	r.GET(statsPath, h.Aggregate)
}

type statsQuery struct {
	SportID      string `form:"sport_id"`
	TournamentID string `form:"tournament_id"`
	Range        string `form:"range"`
}

func (h *StatsHandler) Aggregate(c *gin.Context) {
	var q statsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.WriteError(c, bindError(err))
		return
	}
	res, err := h.svc.Aggregate(c.Request.Context(), stats.Filter{
		SportID:      q.SportID,
		TournamentID: q.TournamentID,
		Range:        stats.TimeRange(q.Range),
	})
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, res)
}
