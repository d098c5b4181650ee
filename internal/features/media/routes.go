package media

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the upload endpoint. Requires auth but not
// verification: unverified users upload their verification documents here.
func RegisterRoutes(rg *gin.RouterGroup, handler *Handler, authMiddleware gin.HandlerFunc) {
	rg.POST("/media/upload", authMiddleware, handler.Upload)
}
