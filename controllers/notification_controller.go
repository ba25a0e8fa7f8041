package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"idea-management-api/services"
)

type NotificationController struct {
	notifications *services.NotificationService
}

func NewNotificationController(notifications *services.NotificationService) *NotificationController {
	return &NotificationController{notifications: notifications}
}

// GetNotifications handles GET /api/notifications: the 50 most recent entries
// plus the unread count.
func (ctl *NotificationController) GetNotifications(c *gin.Context) {
	userID := c.GetInt("userID")

	notifications, err := ctl.notifications.ListForUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	unreadCount, err := ctl.notifications.CountUnread(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"notifications": notifications,
		"unreadCount":   unreadCount,
	})
}

// MarkNotificationRead handles PATCH /api/notifications/:id/read. Absent or
// already-read ids still succeed.
func (ctl *NotificationController) MarkNotificationRead(c *gin.Context) {
	notificationID, err := strconv.Atoi(c.Param("id"))
	if err != nil || notificationID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification ID"})
		return
	}

	if err := ctl.notifications.MarkRead(notificationID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// MarkAllNotificationsRead handles PATCH /api/notifications/read-all, scoped
// strictly to the calling user.
func (ctl *NotificationController) MarkAllNotificationsRead(c *gin.Context) {
	if err := ctl.notifications.MarkAllRead(c.GetInt("userID")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetNotificationCount handles GET /api/notifications/count, the role-aware
// badge counts.
func (ctl *NotificationController) GetNotificationCount(c *gin.Context) {
	counts, err := ctl.notifications.CountForBadge(currentActor(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, counts)
}
