package reports

import (
	"github.com/gin-gonic/gin"

	"github.com/rakibhasan-dev/findback/internal/features/auth"
)

// RegisterRoutes mounts the user-facing report endpoint.
func RegisterRoutes(rg *gin.RouterGroup, handler *Handler, authMiddleware gin.HandlerFunc) {
	rg.POST("/reports", authMiddleware, handler.Create)
}

// RegisterAdminRoutes mounts the moderation queue under the admin group.
func RegisterAdminRoutes(admin *gin.RouterGroup, handler *Handler) {
	reports := admin.Group("/reports")
	reports.Use(auth.RequireAdmin())
	{
		reports.GET("", handler.List)
		reports.GET("/:id", handler.Get)
		reports.PUT("/:id", handler.Review)
	}
}
