package posts

import (
	"github.com/gin-gonic/gin"

	"github.com/rakibhasan-dev/findback/internal/features/auth"
)

// RegisterRoutes mounts post endpoints. Reads use optional auth so censoring
// can key off the viewer's verification status; creation is verification
// gated.
func RegisterRoutes(rg *gin.RouterGroup, handler *Handler, authMiddleware, optionalAuth gin.HandlerFunc) {
	posts := rg.Group("/posts")
	{
		posts.GET("", optionalAuth, handler.List)
		posts.GET("/:id", optionalAuth, handler.Get)
		posts.GET("/user/:userId", optionalAuth, handler.UserPosts)

		posts.POST("", authMiddleware, auth.RequireVerified(), handler.Create)
		posts.PUT("/:id", authMiddleware, handler.Update)
		posts.DELETE("/:id", authMiddleware, handler.Delete)
		posts.PATCH("/:id/resolve", authMiddleware, handler.Resolve)
	}
}
