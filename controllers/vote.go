package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"idea-management-api/services"
)

type VoteController struct {
	votes *services.VoteService
}

func NewVoteController(votes *services.VoteService) *VoteController {
	return &VoteController{votes: votes}
}

// ToggleVote handles POST /api/ideas/:id/vote. Two consecutive calls by the
// same user cancel out.
func (ctl *VoteController) ToggleVote(c *gin.Context) {
	ideaID, err := strconv.Atoi(c.Param("id"))
	if err != nil || ideaID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid idea ID"})
		return
	}

	info, err := ctl.votes.Toggle(ideaID, c.GetInt("userID"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, info)
}

// GetVotes handles GET /api/ideas/:id/votes.
func (ctl *VoteController) GetVotes(c *gin.Context) {
	ideaID, err := strconv.Atoi(c.Param("id"))
	if err != nil || ideaID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid idea ID"})
		return
	}

	info, err := ctl.votes.Info(ideaID, c.GetInt("userID"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, info)
}
