package models

import "time"

// IdeaAttachment stores file metadata only; the blob lives on disk under
// UPLOAD_PATH keyed by StoredName.
type IdeaAttachment struct {
	AttachmentID int       `gorm:"primaryKey;column:attachment_id" json:"id"`
	IdeaID       int       `gorm:"column:idea_id" json:"idea_id"`
	Filename     string    `gorm:"column:filename" json:"filename"`
	StoredName   string    `gorm:"column:stored_name" json:"-"`
	MimeType     string    `gorm:"column:mime_type" json:"mime_type"`
	Size         int64     `gorm:"column:size" json:"size"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
}

func (IdeaAttachment) TableName() string {
	return "idea_attachments"
}
