package handlers

import (
	"net/http"
	"strconv"

	"pos_manager/internal/services"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notifications services.NotificationService
}

func NewNotificationHandler(notifications services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

func (h *NotificationHandler) Recent(c *gin.Context) {
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}

	events := h.notifications.Recent(limit)
	c.JSON(http.StatusOK, gin.H{"success": true, "notifications": events, "count": len(events)})
}
