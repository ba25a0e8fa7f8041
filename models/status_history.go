package models

import "time"

// IdeaStatusHistory records one observed status transition for an idea.
// Rows are never mutated or deleted.
type IdeaStatusHistory struct {
	HistoryID int       `gorm:"primaryKey;column:history_id" json:"id"`
	IdeaID    int       `gorm:"column:idea_id" json:"idea_id"`
	Status    string    `gorm:"column:status" json:"status"`
	ChangedBy string    `gorm:"column:changed_by" json:"changed_by"`
	CreatedAt time.Time `gorm:"column:created_at" json:"timestamp"`
}

func (IdeaStatusHistory) TableName() string {
	return "idea_status_history"
}
