package messages

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts messaging endpoints. All routes require auth; the
// ban check in the auth middleware keeps banned users out.
func RegisterRoutes(rg *gin.RouterGroup, handler *Handler, authMiddleware gin.HandlerFunc) {
	messages := rg.Group("/messages")
	messages.Use(authMiddleware)
	{
		messages.POST("", handler.Send)
		messages.GET("", handler.Conversations)
		messages.GET("/:userId", handler.Thread)
		messages.PATCH("/:userId/read", handler.MarkThreadRead)
	}
}
