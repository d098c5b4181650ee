package admin

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rakibhasan-dev/findback/internal/features/auth"
	"github.com/rakibhasan-dev/findback/internal/features/comments"
	"github.com/rakibhasan-dev/findback/internal/features/posts"
	"github.com/rakibhasan-dev/findback/internal/features/reports"
	"github.com/rakibhasan-dev/findback/internal/pkg/logger"
	"github.com/rakibhasan-dev/findback/internal/pkg/response"
	apperrors "github.com/rakibhasan-dev/findback/pkg/errors"
)

type Handler struct {
	repo        *Repository
	authRepo    *auth.Repository
	postRepo    *posts.Repository
	commentRepo *comments.Repository
	reportRepo  *reports.Repository
}

func NewHandler(repo *Repository, authRepo *auth.Repository, postRepo *posts.Repository, commentRepo *comments.Repository, reportRepo *reports.Repository) *Handler {
	return &Handler{
		repo:        repo,
		authRepo:    authRepo,
		postRepo:    postRepo,
		commentRepo: commentRepo,
		reportRepo:  reportRepo,
	}
}

// Dashboard godoc
// @Summary Dashboard statistics
// @Description Admin only. Aggregate counts over users, posts, comments and reports.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse
// @Router /admin/dashboard [get]
func (h *Handler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	userCounts, err := h.repo.CountUsersByVerificationStatus(ctx)
	if err != nil {
		response.InternalServerError(c, "Failed to compute statistics")
		return
	}
	postCounts, err := h.postRepo.CountByStatus(ctx)
	if err != nil {
		response.InternalServerError(c, "Failed to compute statistics")
		return
	}
	reportCounts, err := h.reportRepo.CountByStatus(ctx)
	if err != nil {
		response.InternalServerError(c, "Failed to compute statistics")
		return
	}
	commentCount, err := h.commentRepo.Count(ctx)
	if err != nil {
		response.InternalServerError(c, "Failed to compute statistics")
		return
	}
	bannedCount, err := h.repo.CountBannedUsers(ctx)
	if err != nil {
		response.InternalServerError(c, "Failed to compute statistics")
		return
	}

	var totalUsers int64
	for _, n := range userCounts {
		totalUsers += n
	}
	var totalPosts int64
	for _, n := range postCounts {
		totalPosts += n
	}

	response.Success(c, gin.H{
		"users": gin.H{
			"total":    totalUsers,
			"byStatus": userCounts,
			"banned":   bannedCount,
		},
		"posts": gin.H{
			"total":    totalPosts,
			"byStatus": postCounts,
		},
		"reports": gin.H{
			"byStatus": reportCounts,
			"pending":  reportCounts[reports.StatusPending],
		},
		"comments": gin.H{
			"total": commentCount,
		},
	})
}

// ListUsers godoc
// @Summary List users
// @Description Admin only. Filterable by verification status, ban state and search term.
// @Tags admin
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Param verificationStatus query string false "Verification status filter"
// @Param banned query bool false "Ban state filter"
// @Param search query string false "Username or email search"
// @Security BearerAuth
// @Success 200 {object} response.PaginatedResponse
// @Router /admin/users [get]
func (h *Handler) ListUsers(c *gin.Context) {
	var query UserListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	users, total, err := h.repo.ListUsers(c.Request.Context(), query)
	if err != nil {
		response.InternalServerError(c, "Failed to fetch users")
		return
	}

	response.Paginated(c, users, total, query.Limit, query.Page)
}

// GetUser godoc
// @Summary Get a user
// @Description Admin only. Full user record.
// @Tags admin
// @Produce json
// @Param id path string true "User ID"
// @Security BearerAuth
// @Success 200 {object} auth.User
// @Failure 404 {object} response.ErrorResponse
// @Router /admin/users/{id} [get]
func (h *Handler) GetUser(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	user, err := h.repo.GetUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "User not found")
			return
		}
		response.InternalServerError(c, "Failed to fetch user")
		return
	}

	response.Success(c, user)
}

type banRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// BanUser godoc
// @Summary Ban a user
// @Description Admin only. Requires a reason. Banning an already-banned user overwrites the ban record.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body banRequest true "Ban reason"
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /admin/users/{id}/ban [put]
func (h *Handler) BanUser(c *gin.Context) {
	admin := auth.CurrentUser(c)

	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	var req banRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "A ban reason is required")
		return
	}

	user, err := h.repo.GetUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "User not found")
			return
		}
		response.InternalServerError(c, "Failed to fetch user")
		return
	}

	if err := ApplyBan(user, admin.ID, req.Reason, time.Now()); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrMissingReason):
			response.BadRequest(c, "A ban reason is required")
		case errors.Is(err, apperrors.ErrForbidden):
			response.Forbidden(c, "Admin accounts cannot be banned")
		default:
			response.InternalServerError(c, "Failed to ban user")
		}
		return
	}

	updates := bson.M{
		"isBanned":  user.IsBanned,
		"banReason": user.BanReason,
		"bannedAt":  user.BannedAt,
		"bannedBy":  user.BannedBy,
	}
	if err := h.authRepo.UpdateUser(c.Request.Context(), userID, updates); err != nil {
		response.InternalServerError(c, "Failed to ban user")
		return
	}

	logger.Info("user %s banned by admin %s: %s", userID.Hex(), admin.ID.Hex(), req.Reason)
	response.Success(c, gin.H{"message": "User banned"})
}

// UnbanUser godoc
// @Summary Unban a user
// @Description Admin only. Unbanning a user who is not banned succeeds without effect.
// @Tags admin
// @Produce json
// @Param id path string true "User ID"
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /admin/users/{id}/unban [put]
func (h *Handler) UnbanUser(c *gin.Context) {
	admin := auth.CurrentUser(c)

	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	user, err := h.repo.GetUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "User not found")
			return
		}
		response.InternalServerError(c, "Failed to fetch user")
		return
	}

	if !user.IsBanned {
		response.Success(c, gin.H{"message": "User is not banned"})
		return
	}

	ClearBan(user)

	updates := bson.M{
		"isBanned":  false,
		"banReason": "",
		"bannedAt":  nil,
		"bannedBy":  nil,
	}
	if err := h.authRepo.UpdateUser(c.Request.Context(), userID, updates); err != nil {
		response.InternalServerError(c, "Failed to unban user")
		return
	}

	logger.Info("user %s unbanned by admin %s", userID.Hex(), admin.ID.Hex())
	response.Success(c, gin.H{"message": "User unbanned"})
}

// ListPosts godoc
// @Summary List posts for moderation
// @Description Admin only. Uncensored listing with filters.
// @Tags admin
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Param type query string false "lost or found"
// @Param status query string false "Status filter"
// @Param search query string false "Full-text search"
// @Security BearerAuth
// @Success 200 {object} response.PaginatedResponse
// @Router /admin/posts [get]
func (h *Handler) ListPosts(c *gin.Context) {
	var query posts.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	items, total, err := h.postRepo.List(c.Request.Context(), query)
	if err != nil {
		response.InternalServerError(c, "Failed to fetch posts")
		return
	}

	response.Paginated(c, items, total, query.Limit, query.Page)
}

// DeletePost godoc
// @Summary Delete a post
// @Description Admin only. Removes the post and its comments.
// @Tags admin
// @Produce json
// @Param id path string true "Post ID"
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /admin/posts/{id} [delete]
func (h *Handler) DeletePost(c *gin.Context) {
	admin := auth.CurrentUser(c)

	postID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid post ID")
		return
	}

	if err := h.postRepo.Delete(c.Request.Context(), postID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Post not found")
			return
		}
		response.InternalServerError(c, "Failed to delete post")
		return
	}

	if err := h.commentRepo.DeleteByPost(c.Request.Context(), postID); err != nil {
		logger.Warn("failed to delete comments of post %s: %v", postID.Hex(), err)
	}

	logger.Info("post %s removed by admin %s", postID.Hex(), admin.ID.Hex())
	response.Success(c, gin.H{"message": "Post deleted"})
}

