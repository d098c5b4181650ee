package routes

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rakibhasan-dev/findback/internal/config"
	"github.com/rakibhasan-dev/findback/internal/features/admin"
	"github.com/rakibhasan-dev/findback/internal/features/auth"
	"github.com/rakibhasan-dev/findback/internal/features/comments"
	"github.com/rakibhasan-dev/findback/internal/features/media"
	"github.com/rakibhasan-dev/findback/internal/features/messages"
	"github.com/rakibhasan-dev/findback/internal/features/notifications"
	"github.com/rakibhasan-dev/findback/internal/features/posts"
	"github.com/rakibhasan-dev/findback/internal/features/reports"
	"github.com/rakibhasan-dev/findback/internal/features/users"
	"github.com/rakibhasan-dev/findback/internal/features/verification"
	"github.com/rakibhasan-dev/findback/internal/pkg/cloudinary"
	"github.com/rakibhasan-dev/findback/internal/pkg/logger"
)

// SetupRoutes wires every feature under /api/v1.
func SetupRoutes(router *gin.Engine, db *mongo.Database, cfg *config.Config) {
	authRepo := auth.NewRepository(db)
	postRepo := posts.NewRepository(db)
	commentRepo := comments.NewRepository(db)
	reportRepo := reports.NewRepository(db)
	notificationRepo := notifications.NewRepository(db)
	verificationRepo := verification.NewRepository(db)
	messageRepo := messages.NewRepository(db)
	adminRepo := admin.NewRepository(db)

	fcm, err := notifications.NewMessagingClient(context.Background(), cfg)
	if err != nil {
		logger.Warn("push notifications disabled: %v", err)
	}
	notifier := notifications.NewService(notificationRepo, fcm)

	uploads, err := cloudinary.NewService(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, "findback")
	if err != nil {
		logger.Warn("media uploads disabled: %v", err)
	}

	authMiddleware := auth.NewAuthMiddleware(authRepo, cfg)
	optionalAuth := auth.NewOptionalAuthMiddleware(authRepo, cfg)

	authHandler := auth.NewHandler(authRepo, cfg)
	verificationHandler := verification.NewHandler(verificationRepo, notifier)
	postHandler := posts.NewHandler(postRepo, authRepo)
	commentHandler := comments.NewHandler(commentRepo, postRepo, authRepo, notifier)
	reportHandler := reports.NewHandler(reportRepo)
	notificationHandler := notifications.NewHandler(notificationRepo)
	userHandler := users.NewHandler(authRepo, postRepo, uploads)
	messageHandler := messages.NewHandler(messageRepo, authRepo, notifier)
	mediaHandler := media.NewHandler(uploads)
	adminHandler := admin.NewHandler(adminRepo, authRepo, postRepo, commentRepo, reportRepo)

	v1 := router.Group("/api/v1")

	auth.RegisterRoutes(v1, authHandler, authMiddleware)
	verification.RegisterRoutes(v1, verificationHandler, authMiddleware)
	users.RegisterRoutes(v1, userHandler, authMiddleware)
	posts.RegisterRoutes(v1, postHandler, authMiddleware, optionalAuth)
	comments.RegisterRoutes(v1, commentHandler, authMiddleware)
	reports.RegisterRoutes(v1, reportHandler, authMiddleware)
	notifications.RegisterRoutes(v1, notificationHandler, authMiddleware)
	messages.RegisterRoutes(v1, messageHandler, authMiddleware)
	media.RegisterRoutes(v1, mediaHandler, authMiddleware)

	adminGroup := v1.Group("/admin")
	adminGroup.Use(authMiddleware)
	admin.RegisterRoutes(adminGroup, adminHandler)
	verification.RegisterAdminRoutes(adminGroup, verificationHandler)
	reports.RegisterAdminRoutes(adminGroup, reportHandler)
}
