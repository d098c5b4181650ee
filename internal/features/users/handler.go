package users

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/rakibhasan-dev/findback/internal/features/auth"
	"github.com/rakibhasan-dev/findback/internal/features/posts"
	"github.com/rakibhasan-dev/findback/internal/pkg/cloudinary"
	"github.com/rakibhasan-dev/findback/internal/pkg/response"
	"github.com/rakibhasan-dev/findback/internal/pkg/validator"
	apperrors "github.com/rakibhasan-dev/findback/pkg/errors"
)

type Handler struct {
	authRepo *auth.Repository
	postRepo *posts.Repository
	uploads  *cloudinary.Service
}

func NewHandler(authRepo *auth.Repository, postRepo *posts.Repository, uploads *cloudinary.Service) *Handler {
	return &Handler{
		authRepo: authRepo,
		postRepo: postRepo,
		uploads:  uploads,
	}
}

// GetProfile godoc
// @Summary Get a user's public profile
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /users/{id} [get]
func (h *Handler) GetProfile(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	user, err := h.authRepo.GetUserByOID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "User not found")
			return
		}
		response.InternalServerError(c, "Failed to fetch user")
		return
	}

	response.Success(c, user.ToPublicUser())
}

// UpdateProfile godoc
// @Summary Update own profile
// @Tags users
// @Accept json
// @Produce json
// @Param request body UpdateProfileRequest true "Fields to update"
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /users/me [put]
func (h *Handler) UpdateProfile(c *gin.Context) {
	user := auth.CurrentUser(c)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid profile data")
		return
	}

	updates := bson.M{}
	if req.Username != nil {
		username := strings.TrimSpace(*req.Username)
		if !validator.IsValidUsername(username) {
			response.BadRequest(c, "username must be 3-20 characters of letters, numbers, underscores or hyphens")
			return
		}
		updates["username"] = username
	}
	if req.Phone != nil {
		phone := strings.TrimSpace(*req.Phone)
		if phone != "" && !validator.IsValidPhone(phone) {
			response.BadRequest(c, "invalid phone number")
			return
		}
		updates["phone"] = phone
	}
	if len(updates) == 0 {
		response.BadRequest(c, "Nothing to update")
		return
	}

	if err := h.authRepo.UpdateUser(c.Request.Context(), user.ID, updates); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			response.Conflict(c, "Username already taken")
			return
		}
		response.InternalServerError(c, "Failed to update profile")
		return
	}

	response.Success(c, gin.H{"message": "Profile updated"})
}

// ChangePassword godoc
// @Summary Change own password
// @Tags users
// @Accept json
// @Produce json
// @Param request body ChangePasswordRequest true "Current and new password"
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /users/me/password [put]
func (h *Handler) ChangePassword(c *gin.Context) {
	user := auth.CurrentUser(c)

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Current and new password are required; the new password must be at least 6 characters")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		response.Unauthorized(c, "Current password is incorrect")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		response.InternalServerError(c, "Failed to change password")
		return
	}

	if err := h.authRepo.UpdateUser(c.Request.Context(), user.ID, bson.M{"password": string(hashed)}); err != nil {
		response.InternalServerError(c, "Failed to change password")
		return
	}

	response.Success(c, gin.H{"message": "Password changed"})
}

// Stats godoc
// @Summary Get a user's activity stats
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} StatsResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /users/{id}/stats [get]
func (h *Handler) Stats(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	total, active, resolved, err := h.postRepo.CountForUser(c.Request.Context(), userID)
	if err != nil {
		response.InternalServerError(c, "Failed to compute stats")
		return
	}

	response.Success(c, StatsResponse{
		TotalPosts:    total,
		ActivePosts:   active,
		ResolvedPosts: resolved,
	})
}

// UploadAvatar godoc
// @Summary Upload own avatar
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Param avatar formData file true "Avatar image"
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /users/me/avatar [post]
func (h *Handler) UploadAvatar(c *gin.Context) {
	user := auth.CurrentUser(c)

	if h.uploads == nil {
		response.Error(c, http.StatusServiceUnavailable, "Media uploads are not configured")
		return
	}

	header, err := c.FormFile("avatar")
	if err != nil {
		response.BadRequest(c, "An avatar image file is required")
		return
	}
	if err := cloudinary.ValidateImageFile(header); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	file, err := header.Open()
	if err != nil {
		response.InternalServerError(c, "Failed to read uploaded file")
		return
	}
	defer file.Close()

	result, err := h.uploads.UploadImage(c.Request.Context(), file, "avatars")
	if err != nil {
		response.InternalServerError(c, "Failed to upload avatar")
		return
	}

	if err := h.authRepo.UpdateUser(c.Request.Context(), user.ID, bson.M{"avatar": result.URL}); err != nil {
		response.InternalServerError(c, "Failed to save avatar")
		return
	}

	response.Success(c, gin.H{"avatar": result.URL})
}

// DeleteAvatar godoc
// @Summary Remove own avatar
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse
// @Router /users/me/avatar [delete]
func (h *Handler) DeleteAvatar(c *gin.Context) {
	user := auth.CurrentUser(c)

	if err := h.authRepo.UpdateUser(c.Request.Context(), user.ID, bson.M{"avatar": ""}); err != nil {
		response.InternalServerError(c, "Failed to remove avatar")
		return
	}

	response.Success(c, gin.H{"message": "Avatar removed"})
}
