package controllers

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"idea-management-api/services"
)

type IdeaController struct {
	ideas *services.IdeaService
	votes *services.VoteService
}

func NewIdeaController(ideas *services.IdeaService, votes *services.VoteService) *IdeaController {
	return &IdeaController{ideas: ideas, votes: votes}
}

type createIdeaRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	IsPublic    bool   `json:"isPublic"`
}

// CreateIdea handles POST /api/ideas. Accepts JSON, or multipart/form-data
// with an optional "attachment" file.
func (ctl *IdeaController) CreateIdea(c *gin.Context) {
	input := services.SubmitIdeaInput{}
	var storedPath string

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		input.Title = c.PostForm("title")
		input.Description = c.PostForm("description")
		input.Category = c.PostForm("category")
		input.IsPublic = c.PostForm("isPublic") == "true" || c.PostForm("isPublic") == "1"

		file, err := c.FormFile("attachment")
		if err == nil && file != nil {
			attachment, path, err := storeAttachmentFile(c, file)
			if err != nil {
				respondError(c, err)
				return
			}
			input.Attachment = attachment
			storedPath = path
		}
	} else {
		var req createIdeaRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		input.Title = req.Title
		input.Description = req.Description
		input.Category = req.Category
		input.IsPublic = req.IsPublic
	}

	detail, err := ctl.ideas.Submit(currentActor(c), input)
	if err != nil {
		// Don't leave the stored file orphaned on a rejected submission.
		if storedPath != "" {
			os.Remove(storedPath)
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"idea": detail})
}

// GetIdeas handles GET /api/ideas: visibility-scoped listing enriched with
// vote counts and the actor's voted flags.
func (ctl *IdeaController) GetIdeas(c *gin.Context) {
	actor := currentActor(c)

	ideas, err := ctl.ideas.List(actor)
	if err != nil {
		respondError(c, err)
		return
	}

	enriched, err := ctl.votes.Enrich(ideas, actor.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ideas": enriched})
}

// GetIdea handles GET /api/ideas/:id.
func (ctl *IdeaController) GetIdea(c *gin.Context) {
	ideaID, err := strconv.Atoi(c.Param("id"))
	if err != nil || ideaID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid idea ID"})
		return
	}

	actor := currentActor(c)
	detail, err := ctl.ideas.Detail(ideaID, actor)
	if err != nil {
		respondError(c, err)
		return
	}

	voteInfo, err := ctl.votes.Info(ideaID, actor.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	detail.VoteCount = voteInfo.VoteCount
	detail.HasVoted = voteInfo.HasVoted

	c.JSON(http.StatusOK, gin.H{"idea": detail})
}

// UpdateIdeaStatus handles PATCH /api/ideas/:id/status (admin only, routed
// through RequireRole). Always moves the idea to under_review.
func (ctl *IdeaController) UpdateIdeaStatus(c *gin.Context) {
	ideaID, err := strconv.Atoi(c.Param("id"))
	if err != nil || ideaID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid idea ID"})
		return
	}

	idea, err := ctl.ideas.MarkUnderReview(ideaID, currentActor(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"idea": idea})
}

// uploadDir returns the attachment directory, creating it if needed.
func uploadDir() string {
	dir := os.Getenv("UPLOAD_PATH")
	if dir == "" {
		dir = "./uploads"
	}
	return filepath.Clean(dir)
}
