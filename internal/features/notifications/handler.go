package notifications

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rakibhasan-dev/findback/internal/features/auth"
	"github.com/rakibhasan-dev/findback/internal/pkg/response"
	apperrors "github.com/rakibhasan-dev/findback/pkg/errors"
)

type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// List godoc
// @Summary List notifications
// @Description Returns the authenticated user's notifications, newest first
// @Tags notifications
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Param unreadOnly query bool false "Only unread notifications"
// @Security BearerAuth
// @Success 200 {object} response.PaginatedResponse
// @Router /notifications [get]
func (h *Handler) List(c *gin.Context) {
	user := auth.CurrentUser(c)

	var query ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	offset := (query.Page - 1) * query.Limit
	items, total, err := h.repo.List(c.Request.Context(), user.ID, query.UnreadOnly, offset, query.Limit)
	if err != nil {
		response.InternalServerError(c, "Failed to fetch notifications")
		return
	}

	response.Paginated(c, items, total, query.Limit, query.Page)
}

// UnreadCount godoc
// @Summary Count unread notifications
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UnreadCountResponse
// @Router /notifications/unread-count [get]
func (h *Handler) UnreadCount(c *gin.Context) {
	user := auth.CurrentUser(c)

	count, err := h.repo.UnreadCount(c.Request.Context(), user.ID)
	if err != nil {
		response.InternalServerError(c, "Failed to count notifications")
		return
	}

	response.Success(c, UnreadCountResponse{UnreadCount: count})
}

// MarkRead godoc
// @Summary Mark a notification as read
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /notifications/{id}/read [patch]
func (h *Handler) MarkRead(c *gin.Context) {
	user := auth.CurrentUser(c)

	notificationID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid notification ID")
		return
	}

	if err := h.repo.MarkRead(c.Request.Context(), notificationID, user.ID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Notification not found")
			return
		}
		response.InternalServerError(c, "Failed to update notification")
		return
	}

	response.Success(c, gin.H{"message": "Notification marked as read"})
}

// MarkAllRead godoc
// @Summary Mark all notifications as read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MarkAllReadResponse
// @Router /notifications/read-all [patch]
func (h *Handler) MarkAllRead(c *gin.Context) {
	user := auth.CurrentUser(c)

	count, err := h.repo.MarkAllRead(c.Request.Context(), user.ID)
	if err != nil {
		response.InternalServerError(c, "Failed to update notifications")
		return
	}

	response.Success(c, MarkAllReadResponse{MarkedCount: count})
}
