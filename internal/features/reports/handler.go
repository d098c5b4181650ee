package reports

import (
	"errors"
	"time"

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

// Create godoc
// @Summary Report a user or a post
// @Description Files a report against exactly one of a user or a post
// @Tags reports
// @Accept json
// @Produce json
// @Param request body CreateRequest true "Report data"
// @Security BearerAuth
// @Success 201 {object} Report
// @Failure 400 {object} response.ErrorResponse
// @Router /reports [post]
func (h *Handler) Create(c *gin.Context) {
	user := auth.CurrentUser(c)

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid report data")
		return
	}
	if !ValidReason(req.Reason) {
		response.BadRequest(c, "Invalid report reason")
		return
	}

	report := &Report{
		ReporterID:  user.ID,
		Reason:      req.Reason,
		Description: req.Description,
		Evidence:    req.Evidence,
	}

	if req.ReportedUserID != "" {
		oid, err := primitive.ObjectIDFromHex(req.ReportedUserID)
		if err != nil {
			response.BadRequest(c, "Invalid reported user ID")
			return
		}
		report.ReportedUserID = &oid
	}
	if req.ReportedPostID != "" {
		oid, err := primitive.ObjectIDFromHex(req.ReportedPostID)
		if err != nil {
			response.BadRequest(c, "Invalid reported post ID")
			return
		}
		report.ReportedPostID = &oid
	}

	if err := ValidateTarget(report); err != nil {
		response.BadRequest(c, "Report exactly one of a user or a post", "INVALID_TARGET")
		return
	}

	if err := h.repo.Create(c.Request.Context(), report); err != nil {
		response.InternalServerError(c, "Failed to create report")
		return
	}

	response.Created(c, report)
}

// List godoc
// @Summary List reports
// @Description Admin only. Filterable by status and reason, newest first.
// @Tags admin
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Param status query string false "Status filter"
// @Param reason query string false "Reason filter"
// @Security BearerAuth
// @Success 200 {object} response.PaginatedResponse
// @Router /admin/reports [get]
func (h *Handler) List(c *gin.Context) {
	var query ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	items, total, err := h.repo.List(c.Request.Context(), query)
	if err != nil {
		response.InternalServerError(c, "Failed to fetch reports")
		return
	}

	response.Paginated(c, items, total, query.Limit, query.Page)
}

// Get godoc
// @Summary Get a report
// @Description Admin only.
// @Tags admin
// @Produce json
// @Param id path string true "Report ID"
// @Security BearerAuth
// @Success 200 {object} Report
// @Failure 404 {object} response.ErrorResponse
// @Router /admin/reports/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	reportID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid report ID")
		return
	}

	report, err := h.repo.GetByID(c.Request.Context(), reportID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Report not found")
			return
		}
		response.InternalServerError(c, "Failed to fetch report")
		return
	}

	response.Success(c, report)
}

// Review godoc
// @Summary Review a report
// @Description Admin only. Moves the report through its lifecycle and records the action taken. Recording user_banned does not ban the user.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Report ID"
// @Param request body ReviewRequest true "Review decision"
// @Security BearerAuth
// @Success 200 {object} Report
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /admin/reports/{id} [put]
func (h *Handler) Review(c *gin.Context) {
	admin := auth.CurrentUser(c)

	reportID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid report ID")
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid review data")
		return
	}

	report, err := h.repo.GetByID(c.Request.Context(), reportID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Report not found")
			return
		}
		response.InternalServerError(c, "Failed to fetch report")
		return
	}

	if err := ApplyReview(report, admin.ID, req, time.Now()); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidState):
			response.Conflict(c, "Illegal status transition")
		case errors.Is(err, apperrors.ErrValidation):
			response.BadRequest(c, "Invalid action")
		default:
			response.InternalServerError(c, "Failed to review report")
		}
		return
	}

	if err := h.repo.Save(c.Request.Context(), report); err != nil {
		response.InternalServerError(c, "Failed to save report")
		return
	}

	response.Success(c, report)
}
