package models

import "time"

// Notification types, one per lifecycle event.
const (
	NotificationNewSubmission = "new_submission"
	NotificationUnderReview   = "under_review"
	NotificationAccepted      = "accepted"
	NotificationRejected      = "rejected"
)

type Notification struct {
	NotificationID int       `gorm:"primaryKey;column:notification_id" json:"id"`
	UserID         int       `gorm:"column:user_id" json:"user_id"`
	IdeaID         int       `gorm:"column:idea_id" json:"idea_id"`
	Type           string    `gorm:"column:type" json:"type"`
	Message        string    `gorm:"column:message" json:"message"`
	IsRead         bool      `gorm:"column:is_read" json:"is_read"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }
