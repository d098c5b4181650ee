package comments

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rakibhasan-dev/findback/internal/features/auth"
	"github.com/rakibhasan-dev/findback/internal/features/notifications"
	"github.com/rakibhasan-dev/findback/internal/features/posts"
	"github.com/rakibhasan-dev/findback/internal/pkg/response"
	apperrors "github.com/rakibhasan-dev/findback/pkg/errors"
)

type Handler struct {
	repo     *Repository
	postRepo *posts.Repository
	authRepo *auth.Repository
	notifier *notifications.Service
}

func NewHandler(repo *Repository, postRepo *posts.Repository, authRepo *auth.Repository, notifier *notifications.Service) *Handler {
	return &Handler{
		repo:     repo,
		postRepo: postRepo,
		authRepo: authRepo,
		notifier: notifier,
	}
}

// Create godoc
// @Summary Comment on a post
// @Description Creates a comment or a reply. Requires a verified account.
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param request body CreateRequest true "Comment content"
// @Security BearerAuth
// @Success 201 {object} Comment
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /posts/{id}/comments [post]
func (h *Handler) Create(c *gin.Context) {
	user := auth.CurrentUser(c)

	postID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid post ID")
		return
	}

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Comment content is required and must be at most 500 characters")
		return
	}

	post, err := h.postRepo.GetByID(c.Request.Context(), postID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Post not found")
			return
		}
		response.InternalServerError(c, "Failed to fetch post")
		return
	}

	comment := &Comment{
		PostID:  postID,
		UserID:  user.ID,
		Content: req.Content,
	}

	var parent *Comment
	if req.ParentCommentID != "" {
		parentID, err := primitive.ObjectIDFromHex(req.ParentCommentID)
		if err != nil {
			response.BadRequest(c, "Invalid parent comment ID")
			return
		}

		parent, err = h.repo.GetByID(c.Request.Context(), parentID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				response.NotFound(c, "Parent comment not found")
				return
			}
			response.InternalServerError(c, "Failed to fetch parent comment")
			return
		}
		if parent.PostID != postID {
			response.BadRequest(c, "Parent comment belongs to a different post")
			return
		}

		// One level of nesting: replying to a reply attaches to its parent.
		if parent.ParentCommentID != nil {
			comment.ParentCommentID = parent.ParentCommentID
		} else {
			comment.ParentCommentID = &parent.ID
		}
	}

	if err := h.repo.Create(c.Request.Context(), comment); err != nil {
		response.InternalServerError(c, "Failed to create comment")
		return
	}

	ctx := c.Request.Context()
	if parent != nil {
		h.notifier.NotifyReply(ctx, parent.UserID, user.ID, postID, comment.ID, user.Username)
	} else {
		h.notifier.NotifyComment(ctx, post.UserID, user.ID, postID, comment.ID, user.Username, post.Title)
	}

	response.Created(c, comment)
}

// List godoc
// @Summary List comments on a post
// @Description Returns top-level comments with their replies, oldest first
// @Tags comments
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /posts/{id}/comments [get]
func (h *Handler) List(c *gin.Context) {
	postID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid post ID")
		return
	}

	items, err := h.repo.ListByPost(c.Request.Context(), postID)
	if err != nil {
		response.InternalServerError(c, "Failed to fetch comments")
		return
	}

	views := groupIntoThreads(items)
	h.attachAuthors(c, views)

	response.Success(c, views)
}

// Delete godoc
// @Summary Delete a comment
// @Description Deletes an own comment. A top-level comment takes its replies with it.
// @Tags comments
// @Produce json
// @Param id path string true "Comment ID"
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /comments/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	user := auth.CurrentUser(c)

	commentID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid comment ID")
		return
	}

	comment, err := h.repo.GetByID(c.Request.Context(), commentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Comment not found")
			return
		}
		response.InternalServerError(c, "Failed to fetch comment")
		return
	}
	if comment.UserID != user.ID && !user.IsAdmin() {
		response.Forbidden(c, "You can only delete your own comments")
		return
	}

	deleted, err := h.repo.DeleteCascade(c.Request.Context(), commentID)
	if err != nil {
		response.InternalServerError(c, "Failed to delete comment")
		return
	}

	response.Success(c, gin.H{"message": "Comment deleted", "deletedCount": deleted})
}

// groupIntoThreads turns a flat ascending list into top-level views with
// replies attached in order. Replies whose parent is gone are dropped.
func groupIntoThreads(items []Comment) []CommentView {
	views := make([]CommentView, 0, len(items))
	index := make(map[primitive.ObjectID]int, len(items))

	for _, item := range items {
		if item.ParentCommentID == nil {
			views = append(views, CommentView{Comment: item})
			index[item.ID] = len(views) - 1
		}
	}
	for _, item := range items {
		if item.ParentCommentID == nil {
			continue
		}
		if i, ok := index[*item.ParentCommentID]; ok {
			views[i].Replies = append(views[i].Replies, CommentView{Comment: item})
		}
	}
	return views
}

func (h *Handler) attachAuthors(c *gin.Context, views []CommentView) {
	ids := make([]primitive.ObjectID, 0, len(views))
	seen := make(map[primitive.ObjectID]bool)
	collect := func(v *CommentView) {
		if !seen[v.UserID] {
			seen[v.UserID] = true
			ids = append(ids, v.UserID)
		}
	}
	for i := range views {
		collect(&views[i])
		for j := range views[i].Replies {
			collect(&views[i].Replies[j])
		}
	}

	users, err := h.authRepo.GetUsersByIDs(c.Request.Context(), ids)
	if err != nil {
		return
	}
	authors := make(map[primitive.ObjectID]*CommentAuthor, len(users))
	for i := range users {
		u := &users[i]
		authors[u.ID] = &CommentAuthor{
			ID:                 u.ID,
			Username:           u.Username,
			Avatar:             u.Avatar,
			VerificationStatus: u.VerificationStatus,
		}
	}

	for i := range views {
		views[i].Author = authors[views[i].UserID]
		for j := range views[i].Replies {
			views[i].Replies[j].Author = authors[views[i].Replies[j].UserID]
		}
	}
}
