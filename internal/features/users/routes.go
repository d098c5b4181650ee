package users

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts user profile endpoints.
func RegisterRoutes(rg *gin.RouterGroup, handler *Handler, authMiddleware gin.HandlerFunc) {
	users := rg.Group("/users")
	{
		users.GET("/:id", handler.GetProfile)
		users.GET("/:id/stats", handler.Stats)

		me := users.Group("/me")
		me.Use(authMiddleware)
		{
			me.PUT("", handler.UpdateProfile)
			me.PUT("/password", handler.ChangePassword)
			me.POST("/avatar", handler.UploadAvatar)
			me.DELETE("/avatar", handler.DeleteAvatar)
		}
	}
}
