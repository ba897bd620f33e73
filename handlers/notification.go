package handlers

import (
	"net/http"
	"strconv"

	"taskhive/services/notification"

	"github.com/gin-gonic/gin"
)

// NotificationHandler exposes the notification inbox.
type NotificationHandler struct {
	Service notification.NotificationService
}

// ListNotificationsHandler handles GET /api/notifications.
func (h *NotificationHandler) ListNotificationsHandler(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.Query("limit"), 10, 64)
	notifications, err := h.Service.ListForRecipient(c.Request.Context(), c.GetString("subjectID"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

// MarkNotificationReadHandler handles POST /api/notifications/:id/read.
func (h *NotificationHandler) MarkNotificationReadHandler(c *gin.Context) {
	if err := h.Service.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "notification marked read"})
}
