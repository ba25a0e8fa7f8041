package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"idea-management-api/services"
)

type StatsController struct {
	stats *services.StatsService
}

func NewStatsController(stats *services.StatsService) *StatsController {
	return &StatsController{stats: stats}
}

// GetStats handles GET /api/stats (admin only, routed through RequireRole).
func (ctl *StatsController) GetStats(c *gin.Context) {
	stats, err := ctl.stats.Overview()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
