package comments

import (
	"github.com/gin-gonic/gin"

	"github.com/rakibhasan-dev/findback/internal/features/auth"
)

// RegisterRoutes mounts comment endpoints. Creation is verification gated,
// replies included.
func RegisterRoutes(rg *gin.RouterGroup, handler *Handler, authMiddleware gin.HandlerFunc) {
	rg.GET("/posts/:id/comments", handler.List)
	rg.POST("/posts/:id/comments", authMiddleware, auth.RequireVerified(), handler.Create)
	rg.DELETE("/comments/:id", authMiddleware, handler.Delete)
}
