package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"callsheet/internal/repository"
)

type NotificationHandler struct {
	repo *repository.NotificationRepository
}

func NewNotificationHandler(repo *repository.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{repo: repo}
}

// ListNotifications handles GET /projects/:id/notifications
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	notifications, err := h.repo.ListByProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}
