package models

import "time"

// Activity is one entry in the global activity feed. Append-only.
type Activity struct {
	ActivityID int       `gorm:"primaryKey;column:activity_id" json:"id"`
	Type       string    `gorm:"column:type" json:"type"`
	UserEmail  string    `gorm:"column:user_email" json:"user_email"`
	IdeaTitle  string    `gorm:"column:idea_title" json:"idea_title"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"timestamp"`
}

func (Activity) TableName() string { return "activities" }
