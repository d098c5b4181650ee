package posts

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rakibhasan-dev/findback/internal/features/auth"
	"github.com/rakibhasan-dev/findback/internal/pkg/pagination"
	"github.com/rakibhasan-dev/findback/internal/pkg/response"
	apperrors "github.com/rakibhasan-dev/findback/pkg/errors"
)

type Handler struct {
	repo     *Repository
	authRepo *auth.Repository
}

func NewHandler(repo *Repository, authRepo *auth.Repository) *Handler {
	return &Handler{
		repo:     repo,
		authRepo: authRepo,
	}
}

// viewerIsVerified resolves the censoring key for the current request.
// Anonymous viewers count as unverified.
func viewerIsVerified(c *gin.Context) bool {
	user := auth.CurrentUser(c)
	return user != nil && user.IsVerified()
}

func authorOf(u *auth.User) *Author {
	if u == nil {
		return nil
	}
	return &Author{
		ID:                 u.ID,
		Username:           u.Username,
		Avatar:             u.Avatar,
		Email:              u.Email,
		Phone:              u.Phone,
		VerificationStatus: u.VerificationStatus,
	}
}

// views builds censored-or-full views for a page of posts, batch-loading the
// authors in one query.
func (h *Handler) views(c *gin.Context, items []Post) []PostView {
	verified := viewerIsVerified(c)

	ids := make([]primitive.ObjectID, 0, len(items))
	seen := make(map[primitive.ObjectID]bool, len(items))
	for i := range items {
		if !seen[items[i].UserID] {
			seen[items[i].UserID] = true
			ids = append(ids, items[i].UserID)
		}
	}

	authors := make(map[primitive.ObjectID]*Author, len(ids))
	if users, err := h.authRepo.GetUsersByIDs(c.Request.Context(), ids); err == nil {
		for i := range users {
			authors[users[i].ID] = authorOf(&users[i])
		}
	}

	views := make([]PostView, 0, len(items))
	for i := range items {
		views = append(views, Censor(NewView(&items[i], authors[items[i].UserID]), verified))
	}
	return views
}

// List godoc
// @Summary List posts
// @Description Lists posts with filters. Content is censored unless the viewer is verified.
// @Tags posts
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Param type query string false "lost or found"
// @Param category query string false "Category filter"
// @Param status query string false "Status filter"
// @Param search query string false "Full-text search"
// @Success 200 {object} response.PaginatedResponse
// @Router /posts [get]
func (h *Handler) List(c *gin.Context) {
	var query ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	items, total, err := h.repo.List(c.Request.Context(), query)
	if err != nil {
		response.InternalServerError(c, "Failed to fetch posts")
		return
	}

	response.Paginated(c, h.views(c, items), total, query.Limit, query.Page)
}

// Get godoc
// @Summary Get a post
// @Description Returns a single post, censored unless the viewer is verified
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} PostView
// @Failure 404 {object} response.ErrorResponse
// @Router /posts/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	postID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid post ID")
		return
	}

	post, err := h.repo.GetByID(c.Request.Context(), postID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Post not found")
			return
		}
		response.InternalServerError(c, "Failed to fetch post")
		return
	}

	var author *Author
	if owner, err := h.authRepo.GetUserByOID(c.Request.Context(), post.UserID); err == nil {
		author = authorOf(owner)
	}

	response.Success(c, Censor(NewView(post, author), viewerIsVerified(c)))
}

// Create godoc
// @Summary Create a post
// @Description Creates a lost or found post. Requires a verified account.
// @Tags posts
// @Accept json
// @Produce json
// @Param request body CreateRequest true "Post data"
// @Security BearerAuth
// @Success 201 {object} PostView
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /posts [post]
func (h *Handler) Create(c *gin.Context) {
	user := auth.CurrentUser(c)

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid post data")
		return
	}
	if err := ValidateCreate(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	post := &Post{
		UserID:      user.ID,
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Category:    req.Category,
		DateLost:    req.DateLost,
		DateFound:   req.DateFound,
		Location: Location{
			Address:     req.Address,
			Coordinates: req.Coordinates,
		},
		Images: req.Images,
		Tags:   req.Tags,
		Status: StatusActive,
	}

	if err := h.repo.Create(c.Request.Context(), post); err != nil {
		response.InternalServerError(c, "Failed to create post")
		return
	}

	response.Created(c, NewView(post, authorOf(user)))
}

// Update godoc
// @Summary Update a post
// @Description Updates fields of an own post
// @Tags posts
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param request body UpdateRequest true "Fields to update"
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /posts/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	user := auth.CurrentUser(c)

	postID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid post ID")
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid post data")
		return
	}
	if err := ValidateUpdate(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	post, err := h.repo.GetByID(c.Request.Context(), postID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Post not found")
			return
		}
		response.InternalServerError(c, "Failed to fetch post")
		return
	}
	if post.UserID != user.ID {
		response.Forbidden(c, "You can only edit your own posts")
		return
	}

	updates := bson.M{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Address != nil {
		updates["location.address"] = *req.Address
	}
	if req.Coordinates != nil {
		updates["location.coordinates"] = req.Coordinates
	}
	if req.Images != nil {
		updates["images"] = req.Images
	}
	if req.Tags != nil {
		updates["tags"] = req.Tags
	}
	if len(updates) == 0 {
		response.BadRequest(c, "Nothing to update")
		return
	}

	if err := h.repo.Update(c.Request.Context(), postID, updates); err != nil {
		response.InternalServerError(c, "Failed to update post")
		return
	}

	response.Success(c, gin.H{"message": "Post updated"})
}

// Delete godoc
// @Summary Delete a post
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /posts/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	user := auth.CurrentUser(c)

	postID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid post ID")
		return
	}

	post, err := h.repo.GetByID(c.Request.Context(), postID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Post not found")
			return
		}
		response.InternalServerError(c, "Failed to fetch post")
		return
	}
	if post.UserID != user.ID {
		response.Forbidden(c, "You can only delete your own posts")
		return
	}

	if err := h.repo.Delete(c.Request.Context(), postID); err != nil {
		response.InternalServerError(c, "Failed to delete post")
		return
	}

	response.Success(c, gin.H{"message": "Post deleted"})
}

// Resolve godoc
// @Summary Mark a post resolved
// @Description Marks an own post as resolved (item recovered or returned)
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /posts/{id}/resolve [patch]
func (h *Handler) Resolve(c *gin.Context) {
	user := auth.CurrentUser(c)

	postID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid post ID")
		return
	}

	post, err := h.repo.GetByID(c.Request.Context(), postID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Post not found")
			return
		}
		response.InternalServerError(c, "Failed to fetch post")
		return
	}
	if post.UserID != user.ID {
		response.Forbidden(c, "You can only resolve your own posts")
		return
	}
	if post.Status == StatusResolved {
		response.Success(c, gin.H{"message": "Post already resolved"})
		return
	}

	if err := h.repo.Update(c.Request.Context(), postID, bson.M{"status": StatusResolved}); err != nil {
		response.InternalServerError(c, "Failed to resolve post")
		return
	}

	response.Success(c, gin.H{"message": "Post marked as resolved"})
}

// UserPosts godoc
// @Summary List a user's posts
// @Description Lists all posts by a user, censored unless the viewer is verified
// @Tags posts
// @Produce json
// @Param userId path string true "User ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} response.PaginatedResponse
// @Router /posts/user/{userId} [get]
func (h *Handler) UserPosts(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("userId"))
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	page, limit := pagination.Parse(c.Query("page"), c.Query("limit"))
	offset := (page - 1) * limit

	items, total, err := h.repo.ListByUser(c.Request.Context(), userID, offset, limit)
	if err != nil {
		response.InternalServerError(c, "Failed to fetch posts")
		return
	}

	response.Paginated(c, h.views(c, items), total, limit, page)
}
