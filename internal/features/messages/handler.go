package messages

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rakibhasan-dev/findback/internal/features/auth"
	"github.com/rakibhasan-dev/findback/internal/features/notifications"
	"github.com/rakibhasan-dev/findback/internal/pkg/pagination"
	"github.com/rakibhasan-dev/findback/internal/pkg/response"
	apperrors "github.com/rakibhasan-dev/findback/pkg/errors"
)

type Handler struct {
	repo     *Repository
	authRepo *auth.Repository
	notifier *notifications.Service
}

func NewHandler(repo *Repository, authRepo *auth.Repository, notifier *notifications.Service) *Handler {
	return &Handler{
		repo:     repo,
		authRepo: authRepo,
		notifier: notifier,
	}
}

// Send godoc
// @Summary Send a direct message
// @Tags messages
// @Accept json
// @Produce json
// @Param request body SendRequest true "Message"
// @Security BearerAuth
// @Success 201 {object} Message
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /messages [post]
func (h *Handler) Send(c *gin.Context) {
	user := auth.CurrentUser(c)

	var req SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid message data")
		return
	}

	receiverID, err := primitive.ObjectIDFromHex(req.ReceiverID)
	if err != nil {
		response.BadRequest(c, "Invalid receiver ID")
		return
	}
	if receiverID == user.ID {
		response.BadRequest(c, "You cannot message yourself")
		return
	}

	if _, err := h.authRepo.GetUserByOID(c.Request.Context(), receiverID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Receiver not found")
			return
		}
		response.InternalServerError(c, "Failed to send message")
		return
	}

	message := &Message{
		SenderID:   user.ID,
		ReceiverID: receiverID,
		Content:    req.Content,
	}
	if req.PostID != "" {
		postID, err := primitive.ObjectIDFromHex(req.PostID)
		if err != nil {
			response.BadRequest(c, "Invalid post ID")
			return
		}
		message.PostID = &postID
	}

	if err := h.repo.Create(c.Request.Context(), message); err != nil {
		response.InternalServerError(c, "Failed to send message")
		return
	}

	h.notifier.NotifyMessage(c.Request.Context(), receiverID, user.ID, user.Username)

	response.Created(c, message)
}

// Conversations godoc
// @Summary List conversations
// @Description One row per peer with the latest message and unread count
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse
// @Router /messages [get]
func (h *Handler) Conversations(c *gin.Context) {
	user := auth.CurrentUser(c)

	conversations, err := h.repo.Conversations(c.Request.Context(), user.ID)
	if err != nil {
		response.InternalServerError(c, "Failed to fetch conversations")
		return
	}

	response.Success(c, conversations)
}

// Thread godoc
// @Summary Fetch a conversation thread
// @Description Messages between the authenticated user and a peer, oldest first
// @Tags messages
// @Produce json
// @Param userId path string true "Peer user ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(50)
// @Security BearerAuth
// @Success 200 {object} response.PaginatedResponse
// @Router /messages/{userId} [get]
func (h *Handler) Thread(c *gin.Context) {
	user := auth.CurrentUser(c)

	peerID, err := primitive.ObjectIDFromHex(c.Param("userId"))
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	page, limit := pagination.Parse(c.Query("page"), c.Query("limit"))
	offset := (page - 1) * limit

	messages, total, err := h.repo.Thread(c.Request.Context(), user.ID, peerID, offset, limit)
	if err != nil {
		response.InternalServerError(c, "Failed to fetch messages")
		return
	}

	response.Paginated(c, messages, total, limit, page)
}

// MarkThreadRead godoc
// @Summary Mark a conversation as read
// @Tags messages
// @Produce json
// @Param userId path string true "Peer user ID"
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse
// @Router /messages/{userId}/read [patch]
func (h *Handler) MarkThreadRead(c *gin.Context) {
	user := auth.CurrentUser(c)

	peerID, err := primitive.ObjectIDFromHex(c.Param("userId"))
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	count, err := h.repo.MarkThreadRead(c.Request.Context(), user.ID, peerID)
	if err != nil {
		response.InternalServerError(c, "Failed to mark messages read")
		return
	}

	response.Success(c, gin.H{"markedCount": count})
}
