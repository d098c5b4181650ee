package auth

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Verification statuses a user can occupy. Transitions are owned by the
// verification feature; everything else only reads the current value.
const (
	StatusUnverified = "unverified"
	StatusPending    = "pending"
	StatusVerified   = "verified"
	StatusRejected   = "rejected"
)

// Roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a registered user in the system
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username string             `bson:"username" json:"username"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"`
	Phone    string             `bson:"phone" json:"phone,omitempty"`
	Avatar   string             `bson:"avatar" json:"avatar,omitempty"`
	Role     string             `bson:"role" json:"role"`

	VerificationStatus string `bson:"verificationStatus" json:"verificationStatus"`
	NIDFrontImage      string `bson:"nidFrontImage" json:"nidFrontImage,omitempty"`
	NIDBackImage       string `bson:"nidBackImage" json:"nidBackImage,omitempty"`
	SelfieImage        string `bson:"selfieImage" json:"selfieImage,omitempty"`
	RejectionReason    string `bson:"rejectionReason" json:"rejectionReason,omitempty"`
	VerificationNote   string `bson:"verificationNote" json:"verificationNote,omitempty"`

	VerifiedAt *time.Time          `bson:"verifiedAt,omitempty" json:"verifiedAt,omitempty"`
	VerifiedBy *primitive.ObjectID `bson:"verifiedBy,omitempty" json:"verifiedBy,omitempty"`

	IsBanned  bool                `bson:"isBanned" json:"isBanned"`
	BanReason string              `bson:"banReason" json:"banReason,omitempty"`
	BannedAt  *time.Time          `bson:"bannedAt,omitempty" json:"bannedAt,omitempty"`
	BannedBy  *primitive.ObjectID `bson:"bannedBy,omitempty" json:"bannedBy,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// IsVerified reports whether the user passed identity verification.
func (u *User) IsVerified() bool {
	return u.VerificationStatus == StatusVerified
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ToPublicUser returns the fields safe for public display
func (u *User) ToPublicUser() map[string]interface{} {
	return map[string]interface{}{
		"id":                 u.ID,
		"username":           u.Username,
		"avatar":             u.Avatar,
		"verificationStatus": u.VerificationStatus,
		"createdAt":          u.CreatedAt,
	}
}

// RegisterRequest represents the signup payload. Verification documents are
// optional at signup; supplying all three starts the account in pending.
type RegisterRequest struct {
	Username      string `json:"username" binding:"required,min=3,max=20"`
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required,min=6"`
	Phone         string `json:"phone"`
	NIDFrontImage string `json:"nidFrontImage"`
	NIDBackImage  string `json:"nidBackImage"`
	SelfieImage   string `json:"selfieImage"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
