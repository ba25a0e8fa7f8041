package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"idea-management-api/services"
)

type ActivityController struct {
	audit *services.AuditService
}

func NewActivityController(audit *services.AuditService) *ActivityController {
	return &ActivityController{audit: audit}
}

// GetActivities handles GET /api/activities: the 20 most recent feed entries.
func (ctl *ActivityController) GetActivities(c *gin.Context) {
	activities, err := ctl.audit.RecentActivities(20)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"activities": activities})
}
