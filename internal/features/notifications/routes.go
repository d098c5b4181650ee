package notifications

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts notification endpoints. All routes require auth.
func RegisterRoutes(rg *gin.RouterGroup, handler *Handler, authMiddleware gin.HandlerFunc) {
	notifications := rg.Group("/notifications")
	notifications.Use(authMiddleware)
	{
		notifications.GET("", handler.List)
		notifications.GET("/unread-count", handler.UnreadCount)
		notifications.PATCH("/:id/read", handler.MarkRead)
		notifications.PATCH("/read-all", handler.MarkAllRead)
	}
}
