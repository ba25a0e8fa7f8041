package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"idea-management-api/services"
)

type EvaluationController struct {
	evaluations *services.EvaluationService
}

func NewEvaluationController(evaluations *services.EvaluationService) *EvaluationController {
	return &EvaluationController{evaluations: evaluations}
}

type evaluateRequest struct {
	IdeaID   int    `json:"ideaId"`
	Decision string `json:"decision"`
	Comment  string `json:"comment"`
}

// CreateEvaluation handles POST /api/evaluations (admin only, routed through
// RequireRole).
func (ctl *EvaluationController) CreateEvaluation(c *gin.Context) {
	var req evaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.IdeaID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Field 'ideaId' is required."})
		return
	}

	result, err := ctl.evaluations.Evaluate(currentActor(c), req.IdeaID, req.Decision, req.Comment)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}
