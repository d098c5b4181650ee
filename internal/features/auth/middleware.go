package auth

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rakibhasan-dev/findback/internal/config"
	idToken "github.com/rakibhasan-dev/findback/internal/pkg/jwt"
	"github.com/rakibhasan-dev/findback/internal/pkg/response"
)

// NewAuthMiddleware creates a Gin middleware for JWT authentication. The ban
// check happens here so that a suspended account is blocked on every
// authenticated request, regardless of what the route would otherwise allow.
// Any lookup failure is treated as deny.
func NewAuthMiddleware(repo *Repository, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header required", "AUTH_REQUIRED")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "Invalid authorization format", "INVALID_AUTH_FORMAT")
			c.Abort()
			return
		}

		claims, err := idToken.ValidateToken(parts[1], cfg.JWTSecret)
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token", "INVALID_TOKEN")
			c.Abort()
			return
		}

		user, err := repo.GetUserByID(c.Request.Context(), claims.UserID)
		if err != nil {
			response.Unauthorized(c, "User not found", "USER_NOT_FOUND")
			c.Abort()
			return
		}

		if user.IsBanned {
			response.Banned(c, user.BanReason)
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Set("userID", user.ID.Hex())
		c.Next()
	}
}

// NewOptionalAuthMiddleware attaches the user when a valid token is present
// but never rejects the request. Banned users are simply not attached, so the
// rest of the pipeline treats them as anonymous (and therefore unverified).
func NewOptionalAuthMiddleware(repo *Repository, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.Next()
			return
		}

		claims, err := idToken.ValidateToken(parts[1], cfg.JWTSecret)
		if err != nil {
			c.Next()
			return
		}

		user, err := repo.GetUserByID(c.Request.Context(), claims.UserID)
		if err == nil && !user.IsBanned {
			c.Set("user", user)
			c.Set("userID", user.ID.Hex())
		}
		c.Next()
	}
}

// RequireAdmin rejects requests from non-admin actors. Must run after the
// auth middleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			response.Unauthorized(c, "Authentication required", "AUTH_REQUIRED")
			c.Abort()
			return
		}

		if !user.IsAdmin() {
			response.Forbidden(c, "Admin privileges required", "FORBIDDEN")
			c.Abort()
			return
		}

		c.Next()
	}
}

// Status-specific deny messages for verification-gated writes.
var gateMessages = map[string]string{
	StatusPending:    "Your verification is pending. Please wait for approval.",
	StatusRejected:   "Your verification was rejected. Please resubmit your documents.",
	StatusUnverified: "You need to be a verified user to do this. Please submit your verification documents.",
}

// RequireVerified gates writes behind identity verification. The current
// status is re-read on every gated request; anything other than verified is
// denied with a machine flag routing the client to the verification flow.
// Must run after the auth middleware.
func RequireVerified() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			response.Unauthorized(c, "Authentication required", "AUTH_REQUIRED")
			c.Abort()
			return
		}

		if !user.IsVerified() {
			msg, ok := gateMessages[user.VerificationStatus]
			if !ok {
				msg = gateMessages[StatusUnverified]
			}
			response.VerificationRequired(c, user.VerificationStatus, msg)
			c.Abort()
			return
		}

		c.Next()
	}
}

// CurrentUser returns the authenticated user attached to the context, or nil.
func CurrentUser(c *gin.Context) *User {
	val, exists := c.Get("user")
	if !exists {
		return nil
	}
	user, ok := val.(*User)
	if !ok {
		return nil
	}
	return user
}
