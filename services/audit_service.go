package services

import (
	"time"

	"gorm.io/gorm"

	"idea-management-api/models"
)

// Activity feed event types.
const (
	ActivityIdeaSubmitted   = "idea_submitted"
	ActivityIdeaUnderReview = "idea_under_review"
	ActivityIdeaEvaluated   = "idea_evaluated"
)

// AuditService owns the two append-only trails: the global activity feed and
// the per-idea status history.
type AuditService struct {
	db *gorm.DB
}

func NewAuditService(db *gorm.DB) *AuditService {
	return &AuditService{db: db}
}

// RecordActivity appends one activity feed entry.
func (s *AuditService) RecordActivity(activityType, userEmail, ideaTitle string) error {
	activity := models.Activity{
		Type:      activityType,
		UserEmail: userEmail,
		IdeaTitle: ideaTitle,
		CreatedAt: time.Now(),
	}
	return s.db.Create(&activity).Error
}

// RecentActivities returns the newest activity entries, newest first.
func (s *AuditService) RecentActivities(limit int) ([]models.Activity, error) {
	if limit <= 0 {
		limit = 20
	}
	var activities []models.Activity
	err := s.db.Order("created_at DESC").Limit(limit).Find(&activities).Error
	return activities, err
}

// RecordStatusChange appends one status history entry for an idea.
func (s *AuditService) RecordStatusChange(ideaID int, status, changedBy string) error {
	entry := models.IdeaStatusHistory{
		IdeaID:    ideaID,
		Status:    status,
		ChangedBy: changedBy,
		CreatedAt: time.Now(),
	}
	return s.db.Create(&entry).Error
}

// HistoryForIdea returns the full transition history, oldest first.
func (s *AuditService) HistoryForIdea(ideaID int) ([]models.IdeaStatusHistory, error) {
	var entries []models.IdeaStatusHistory
	err := s.db.Where("idea_id = ?", ideaID).Order("created_at ASC").Find(&entries).Error
	return entries, err
}
