package verification

import (
	"github.com/gin-gonic/gin"

	"github.com/rakibhasan-dev/findback/internal/features/auth"
)

// RegisterRoutes mounts the user-facing verification endpoints under /users.
func RegisterRoutes(rg *gin.RouterGroup, handler *Handler, authMiddleware gin.HandlerFunc) {
	users := rg.Group("/users")
	users.Use(authMiddleware)
	{
		users.POST("/verification", handler.Submit)
		users.GET("/verification-status", handler.Status)
	}
}

// RegisterAdminRoutes mounts the review queue under the admin group, which is
// expected to already carry auth middleware.
func RegisterAdminRoutes(admin *gin.RouterGroup, handler *Handler) {
	verifications := admin.Group("/verifications")
	verifications.Use(auth.RequireAdmin())
	{
		verifications.GET("", handler.ListPending)
		verifications.GET("/:id", handler.GetDetails)
		verifications.PUT("/:id/approve", handler.Approve)
		verifications.PUT("/:id/reject", handler.Reject)
	}
}
