package admin

import (
	"github.com/gin-gonic/gin"

	"github.com/rakibhasan-dev/findback/internal/features/auth"
)

// RegisterRoutes mounts the admin surface. Every route requires an
// authenticated admin.
func RegisterRoutes(admin *gin.RouterGroup, handler *Handler) {
	g := admin.Group("")
	g.Use(auth.RequireAdmin())
	{
		g.GET("/dashboard", handler.Dashboard)

		g.GET("/users", handler.ListUsers)
		g.GET("/users/:id", handler.GetUser)
		g.PUT("/users/:id/ban", handler.BanUser)
		g.PUT("/users/:id/unban", handler.UnbanUser)

		g.GET("/posts", handler.ListPosts)
		g.DELETE("/posts/:id", handler.DeletePost)
	}
}
