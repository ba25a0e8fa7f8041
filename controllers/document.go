package controllers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"idea-management-api/models"
	"idea-management-api/services"
)

const maxAttachmentSize = 5 << 20 // 5 MB

var allowedAttachmentTypes = map[string]bool{
	"application/pdf": true,
	"image/png":       true,
	"image/jpeg":      true,
	"image/gif":       true,
	"text/plain":      true,
}

// storeAttachmentFile validates the upload and writes it under UPLOAD_PATH
// with a uuid-based stored name. Returns the metadata and the on-disk path.
func storeAttachmentFile(c *gin.Context, file *multipart.FileHeader) (*services.AttachmentInput, string, error) {
	if file.Size > maxAttachmentSize {
		return nil, "", services.ErrValidation("Attachment exceeds the 5 MB size limit.")
	}

	mimeType := file.Header.Get("Content-Type")
	if !allowedAttachmentTypes[mimeType] {
		return nil, "", services.ErrValidation("Attachment type is not allowed.")
	}

	storedName := fmt.Sprintf("%s%s", uuid.New().String(), filepath.Ext(file.Filename))
	path := filepath.Join(uploadDir(), storedName)
	if err := c.SaveUploadedFile(file, path); err != nil {
		return nil, "", err
	}

	return &services.AttachmentInput{
		Filename:   filepath.Base(file.Filename),
		StoredName: storedName,
		MimeType:   mimeType,
		Size:       file.Size,
	}, path, nil
}

type DocumentController struct {
	db *gorm.DB
}

func NewDocumentController(db *gorm.DB) *DocumentController {
	return &DocumentController{db: db}
}

// DownloadAttachment handles GET /api/attachments/:id. Access follows the
// parent idea's visibility.
func (ctl *DocumentController) DownloadAttachment(c *gin.Context) {
	attachmentID, err := strconv.Atoi(c.Param("id"))
	if err != nil || attachmentID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid attachment ID"})
		return
	}

	var attachment models.IdeaAttachment
	if err := ctl.db.Where("attachment_id = ?", attachmentID).First(&attachment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Attachment not found."})
			return
		}
		respondError(c, err)
		return
	}

	var idea models.Idea
	if err := ctl.db.Where("idea_id = ?", attachment.IdeaID).First(&idea).Error; err != nil {
		respondError(c, err)
		return
	}
	if !services.CanViewIdea(currentActor(c), idea) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to view this idea."})
		return
	}

	c.FileAttachment(filepath.Join(uploadDir(), attachment.StoredName), attachment.Filename)
}
