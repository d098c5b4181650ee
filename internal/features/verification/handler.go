package verification

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rakibhasan-dev/findback/internal/features/auth"
	"github.com/rakibhasan-dev/findback/internal/features/notifications"
	"github.com/rakibhasan-dev/findback/internal/pkg/response"
	apperrors "github.com/rakibhasan-dev/findback/pkg/errors"
)

type Handler struct {
	repo     *Repository
	notifier *notifications.Service
}

func NewHandler(repo *Repository, notifier *notifications.Service) *Handler {
	return &Handler{
		repo:     repo,
		notifier: notifier,
	}
}

// Submit godoc
// @Summary Submit verification documents
// @Description Submits NID front, NID back and selfie images for admin review
// @Tags verification
// @Accept json
// @Produce json
// @Param request body SubmitRequest true "Document references"
// @Security BearerAuth
// @Success 200 {object} StatusResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /users/verification [post]
func (h *Handler) Submit(c *gin.Context) {
	user := auth.CurrentUser(c)

	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "All three documents are required: NID front, NID back and selfie")
		return
	}

	fromStatus := user.VerificationStatus
	docs := Documents{
		NIDFront: req.NIDFrontImage,
		NIDBack:  req.NIDBackImage,
		Selfie:   req.SelfieImage,
	}

	if err := Submit(user, docs); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrMissingDocuments):
			response.BadRequest(c, "All three documents are required: NID front, NID back and selfie")
		case errors.Is(err, apperrors.ErrInvalidState):
			if user.VerificationStatus == auth.StatusVerified {
				response.Conflict(c, "Your account is already verified")
			} else {
				response.Conflict(c, "Your verification is already pending review")
			}
		default:
			response.InternalServerError(c, "Failed to submit verification")
		}
		return
	}

	if err := h.repo.ApplyTransition(c.Request.Context(), user.ID, fromStatus, user); err != nil {
		if errors.Is(err, apperrors.ErrInvalidState) {
			response.Conflict(c, "Your verification status changed, please refresh and try again")
			return
		}
		response.InternalServerError(c, "Failed to submit verification")
		return
	}

	response.Success(c, StatusResponse{VerificationStatus: user.VerificationStatus})
}

// Status godoc
// @Summary Get own verification status
// @Tags verification
// @Produce json
// @Security BearerAuth
// @Success 200 {object} StatusResponse
// @Router /users/verification-status [get]
func (h *Handler) Status(c *gin.Context) {
	user := auth.CurrentUser(c)

	response.Success(c, StatusResponse{
		VerificationStatus: user.VerificationStatus,
		RejectionReason:    user.RejectionReason,
		VerifiedAt:         user.VerifiedAt,
	})
}

// ListPending godoc
// @Summary List pending verification requests
// @Description Admin only. Oldest submissions first.
// @Tags admin
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Security BearerAuth
// @Success 200 {object} response.PaginatedResponse
// @Router /admin/verifications [get]
func (h *Handler) ListPending(c *gin.Context) {
	var query struct {
		Page  int `form:"page,default=1" binding:"min=1"`
		Limit int `form:"limit,default=20" binding:"min=1,max=50"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	offset := (query.Page - 1) * query.Limit
	users, total, err := h.repo.ListPending(c.Request.Context(), offset, query.Limit)
	if err != nil {
		response.InternalServerError(c, "Failed to fetch pending verifications")
		return
	}

	items := make([]gin.H, 0, len(users))
	for i := range users {
		u := &users[i]
		items = append(items, gin.H{
			"id":            u.ID,
			"username":      u.Username,
			"email":         u.Email,
			"nidFrontImage": u.NIDFrontImage,
			"nidBackImage":  u.NIDBackImage,
			"selfieImage":   u.SelfieImage,
			"createdAt":     u.CreatedAt,
		})
	}

	response.Paginated(c, items, total, query.Limit, query.Page)
}

// GetDetails godoc
// @Summary Get a verification request
// @Description Admin only. Full user record including submitted documents.
// @Tags admin
// @Produce json
// @Param id path string true "User ID"
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /admin/verifications/{id} [get]
func (h *Handler) GetDetails(c *gin.Context) {
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

	response.Success(c, gin.H{
		"user":          user.ToPublicUser(),
		"nidFrontImage": user.NIDFrontImage,
		"nidBackImage":  user.NIDBackImage,
		"selfieImage":   user.SelfieImage,
	})
}

// Approve godoc
// @Summary Approve a pending verification
// @Description Admin only. Marks the user verified and notifies them.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body ApproveRequest false "Optional note"
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /admin/verifications/{id}/approve [put]
func (h *Handler) Approve(c *gin.Context) {
	admin := auth.CurrentUser(c)

	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	// Body is optional, a missing or malformed one just means no note.
	var req ApproveRequest
	_ = c.ShouldBindJSON(&req)

	user, err := h.repo.GetUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "User not found")
			return
		}
		response.InternalServerError(c, "Failed to fetch user")
		return
	}

	fromStatus := user.VerificationStatus
	if err := Approve(user, admin.ID, req.Note, time.Now()); err != nil {
		response.Conflict(c, "User is not pending verification")
		return
	}

	if err := h.repo.ApplyTransition(c.Request.Context(), user.ID, fromStatus, user); err != nil {
		if errors.Is(err, apperrors.ErrInvalidState) {
			response.Conflict(c, "Verification status changed, please refresh")
			return
		}
		response.InternalServerError(c, "Failed to approve verification")
		return
	}

	h.notifier.NotifyVerificationApproved(c.Request.Context(), user.ID, req.Note)

	response.Success(c, gin.H{
		"message": "User verified successfully",
		"user":    user.ToPublicUser(),
	})
}

// Reject godoc
// @Summary Reject a pending verification
// @Description Admin only. Requires a reason; the user can resubmit.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body RejectRequest true "Rejection reason"
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /admin/verifications/{id}/reject [put]
func (h *Handler) Reject(c *gin.Context) {
	admin := auth.CurrentUser(c)

	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	var req RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "A rejection reason is required")
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

	fromStatus := user.VerificationStatus
	if err := Reject(user, admin.ID, req.Reason); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrMissingReason):
			response.BadRequest(c, "A rejection reason is required")
		default:
			response.Conflict(c, "User is not pending verification")
		}
		return
	}

	if err := h.repo.ApplyTransition(c.Request.Context(), user.ID, fromStatus, user); err != nil {
		if errors.Is(err, apperrors.ErrInvalidState) {
			response.Conflict(c, "Verification status changed, please refresh")
			return
		}
		response.InternalServerError(c, "Failed to reject verification")
		return
	}

	h.notifier.NotifyVerificationRejected(c.Request.Context(), user.ID, req.Reason)

	response.Success(c, gin.H{
		"message": "Verification rejected",
		"user":    user.ToPublicUser(),
	})
}
