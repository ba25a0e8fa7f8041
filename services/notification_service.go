package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"idea-management-api/models"
)

// NotificationService creates notification rows for lifecycle events and
// answers read-state and badge queries.
type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

// NotifyAdminsOfSubmission fans a new_submission notification out to every
// admin account, one row per recipient.
func (s *NotificationService) NotifyAdminsOfSubmission(idea models.Idea) error {
	var adminIDs []int
	if err := s.db.Model(&models.User{}).
		Where("role = ?", models.RoleAdmin).
		Pluck("user_id", &adminIDs).Error; err != nil {
		return err
	}
	if len(adminIDs) == 0 {
		return nil
	}

	message := fmt.Sprintf("New idea submitted: '%s'", idea.Title)
	now := time.Now()
	rows := make([]models.Notification, 0, len(adminIDs))
	for _, adminID := range adminIDs {
		rows = append(rows, models.Notification{
			UserID:    adminID,
			IdeaID:    idea.IdeaID,
			Type:      models.NotificationNewSubmission,
			Message:   message,
			CreatedAt: now,
		})
	}
	return s.db.Create(&rows).Error
}

// NotifySubmitter records a lifecycle notification for the idea's owner.
func (s *NotificationService) NotifySubmitter(idea models.Idea, notificationType, message string) error {
	row := models.Notification{
		UserID:    idea.SubmitterID,
		IdeaID:    idea.IdeaID,
		Type:      notificationType,
		Message:   message,
		CreatedAt: time.Now(),
	}
	return s.db.Create(&row).Error
}

// ListForUser returns the user's 50 most recent notifications, newest first.
func (s *NotificationService) ListForUser(userID int) ([]models.Notification, error) {
	notifications := make([]models.Notification, 0)
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(50).
		Find(&notifications).Error
	return notifications, err
}

// CountUnread returns the number of unread notifications for the user.
func (s *NotificationService) CountUnread(userID int) (int64, error) {
	var count int64
	err := s.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

// MarkRead flags one notification as read. Marking an absent or already-read
// id is a successful no-op.
func (s *NotificationService) MarkRead(notificationID int) error {
	return s.db.Model(&models.Notification{}).
		Where("notification_id = ?", notificationID).
		Update("is_read", true).Error
}

// MarkAllRead flags every unread notification of the given user as read.
// Other users' notifications are never touched.
func (s *NotificationService) MarkAllRead(userID int) error {
	return s.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
}

// BadgeCounts is the role-aware "new activity" badge, a signaling path
// separate from notification read state.
type BadgeCounts struct {
	PendingIdeas  int64 `json:"pendingIdeas"`
	NewActivities int64 `json:"newActivities"`
}

// CountForBadge returns the pending-work count for admins and the
// decided-own-ideas count for submitters.
func (s *NotificationService) CountForBadge(actor Actor) (*BadgeCounts, error) {
	counts := &BadgeCounts{}

	if actor.IsAdmin() {
		err := s.db.Model(&models.Idea{}).
			Where("status IN ?", []string{models.StatusSubmitted, models.StatusUnderReview}).
			Count(&counts.PendingIdeas).Error
		return counts, err
	}

	err := s.db.Model(&models.Idea{}).
		Where("submitter_id = ? AND status IN ?", actor.ID, []string{models.StatusAccepted, models.StatusRejected}).
		Count(&counts.NewActivities).Error
	return counts, err
}
