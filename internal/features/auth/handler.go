package auth

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/rakibhasan-dev/findback/internal/config"
	idToken "github.com/rakibhasan-dev/findback/internal/pkg/jwt"
	"github.com/rakibhasan-dev/findback/internal/pkg/response"
)

type Handler struct {
	repo *Repository
	cfg  *config.Config
}

func NewHandler(repo *Repository, cfg *config.Config) *Handler {
	return &Handler{
		repo: repo,
		cfg:  cfg,
	}
}

// Register godoc
// @Summary Register a new user
// @Description Register with username, email and password. Supplying all three verification documents starts the account in pending review.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "User registration data"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format", "INVALID_JSON")
		return
	}

	if err := ValidateRegister(&req); err != nil {
		response.BadRequest(c, err.Error(), "VALIDATION_FAILED")
		return
	}

	existing, err := h.repo.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		response.InternalServerError(c, "Failed to check existing users", "DATABASE_ERROR")
		return
	}
	if existing == nil {
		existing, err = h.repo.GetUserByUsername(c.Request.Context(), req.Username)
		if err != nil {
			response.InternalServerError(c, "Failed to check existing users", "DATABASE_ERROR")
			return
		}
	}
	if existing != nil {
		response.Conflict(c, "User with this email or username already exists", "DUPLICATE_USER")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		response.InternalServerError(c, "Failed to process password", "INTERNAL_ERROR")
		return
	}

	// All three documents at signup means the account starts in pending
	// review, otherwise unverified.
	status := StatusUnverified
	if req.NIDFrontImage != "" && req.NIDBackImage != "" && req.SelfieImage != "" {
		status = StatusPending
	}

	user := &User{
		Username:           req.Username,
		Email:              req.Email,
		Password:           string(hashedPassword),
		Phone:              req.Phone,
		Role:               RoleUser,
		VerificationStatus: status,
		NIDFrontImage:      req.NIDFrontImage,
		NIDBackImage:       req.NIDBackImage,
		SelfieImage:        req.SelfieImage,
	}

	if err := h.repo.CreateUser(c.Request.Context(), user); err != nil {
		response.Conflict(c, "User with this email or username already exists", "DUPLICATE_USER")
		return
	}

	token, err := idToken.GenerateToken(user.ID.Hex(), user.Email, user.Role, idToken.DefaultConfig(h.cfg.JWTSecret, h.cfg.JWTExpireHours))
	if err != nil {
		response.InternalServerError(c, "Failed to generate token", "INTERNAL_ERROR")
		return
	}

	response.Created(c, AuthResponse{Token: token, User: user})
}

// Login godoc
// @Summary Login user
// @Description Authenticate with email and password. Banned accounts are rejected with the ban reason.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "User login credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format", "INVALID_JSON")
		return
	}

	if err := ValidateLogin(&req); err != nil {
		response.BadRequest(c, err.Error(), "VALIDATION_FAILED")
		return
	}

	user, err := h.repo.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		response.InternalServerError(c, "Failed to look up user", "DATABASE_ERROR")
		return
	}
	if user == nil {
		response.Unauthorized(c, "Invalid credentials", "INVALID_CREDENTIALS")
		return
	}

	// Ban takes precedence over everything; a banned account cannot log in.
	if user.IsBanned {
		response.Banned(c, user.BanReason)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		response.Unauthorized(c, "Invalid credentials", "INVALID_CREDENTIALS")
		return
	}

	token, err := idToken.GenerateToken(user.ID.Hex(), user.Email, user.Role, idToken.DefaultConfig(h.cfg.JWTSecret, h.cfg.JWTExpireHours))
	if err != nil {
		response.InternalServerError(c, "Failed to generate token", "INTERNAL_ERROR")
		return
	}

	response.Success(c, AuthResponse{Token: token, User: user})
}

// GetMe godoc
// @Summary Get current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} User
// @Failure 401 {object} response.ErrorResponse
// @Router /auth/me [get]
func (h *Handler) GetMe(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		response.Unauthorized(c, "Authentication required", "AUTH_REQUIRED")
		return
	}

	response.Success(c, user)
}
