package media

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rakibhasan-dev/findback/internal/pkg/cloudinary"
	"github.com/rakibhasan-dev/findback/internal/pkg/response"
)

// Subfolders an upload may target. The client picks one so post images and
// verification documents land in separate folders.
var allowedKinds = map[string]string{
	"post":         "posts",
	"verification": "verification",
}

type Handler struct {
	uploads *cloudinary.Service
}

func NewHandler(uploads *cloudinary.Service) *Handler {
	return &Handler{uploads: uploads}
}

// Upload godoc
// @Summary Upload an image
// @Description Uploads an image and returns its URL for use in a post or a verification submission
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file"
// @Param kind formData string true "post or verification"
// @Security BearerAuth
// @Success 201 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /media/upload [post]
func (h *Handler) Upload(c *gin.Context) {
	if h.uploads == nil {
		response.Error(c, http.StatusServiceUnavailable, "Media uploads are not configured")
		return
	}

	kind := c.PostForm("kind")
	subfolder, ok := allowedKinds[kind]
	if !ok {
		response.BadRequest(c, "kind must be post or verification")
		return
	}

	header, err := c.FormFile("image")
	if err != nil {
		response.BadRequest(c, "An image file is required")
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

	result, err := h.uploads.UploadImage(c.Request.Context(), file, subfolder)
	if err != nil {
		response.InternalServerError(c, "Failed to upload image")
		return
	}

	response.Created(c, gin.H{
		"url":      result.URL,
		"publicId": result.PublicID,
	})
}
