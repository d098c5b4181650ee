package reports

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Report reasons
const (
	ReasonFakePost             = "fake_post"
	ReasonScam                 = "scam"
	ReasonInappropriateContent = "inappropriate_content"
	ReasonHarassment           = "harassment"
	ReasonSpam                 = "spam"
	ReasonStolenItem           = "stolen_item"
	ReasonFalseClaim           = "false_claim"
	ReasonImpersonation        = "impersonation"
	ReasonOther                = "other"
)

var validReasons = map[string]bool{
	ReasonFakePost:             true,
	ReasonScam:                 true,
	ReasonInappropriateContent: true,
	ReasonHarassment:           true,
	ReasonSpam:                 true,
	ReasonStolenItem:           true,
	ReasonFalseClaim:           true,
	ReasonImpersonation:        true,
	ReasonOther:                true,
}

// Report statuses. reviewing is skippable: pending can close directly.
const (
	StatusPending   = "pending"
	StatusReviewing = "reviewing"
	StatusResolved  = "resolved"
	StatusDismissed = "dismissed"
)

// Actions an admin can record on a report. user_banned is a record of intent
// only; banning itself goes through the ban endpoint.
const (
	ActionNone        = "none"
	ActionWarning     = "warning"
	ActionPostRemoved = "post_removed"
	ActionUserBanned  = "user_banned"
	ActionOther       = "other"
)

var validActions = map[string]bool{
	ActionNone:        true,
	ActionWarning:     true,
	ActionPostRemoved: true,
	ActionUserBanned:  true,
	ActionOther:       true,
}

// Report is a user complaint against exactly one of a user or a post.
type Report struct {
	ID             primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	ReporterID     primitive.ObjectID  `bson:"reporterId" json:"reporterId"`
	ReportedUserID *primitive.ObjectID `bson:"reportedUserId,omitempty" json:"reportedUserId,omitempty"`
	ReportedPostID *primitive.ObjectID `bson:"reportedPostId,omitempty" json:"reportedPostId,omitempty"`
	Reason         string              `bson:"reason" json:"reason"`
	Description    string              `bson:"description" json:"description"`
	Evidence       []string            `bson:"evidence,omitempty" json:"evidence,omitempty"`
	Status         string              `bson:"status" json:"status"`
	ReviewedBy     *primitive.ObjectID `bson:"reviewedBy,omitempty" json:"reviewedBy,omitempty"`
	ReviewedAt     *time.Time          `bson:"reviewedAt,omitempty" json:"reviewedAt,omitempty"`
	AdminNote      string              `bson:"adminNote,omitempty" json:"adminNote,omitempty"`
	ActionTaken    string              `bson:"actionTaken,omitempty" json:"actionTaken,omitempty"`
	CreatedAt      time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time           `bson:"updatedAt" json:"updatedAt"`
}

type CreateRequest struct {
	ReportedUserID string   `json:"reportedUserId"`
	ReportedPostID string   `json:"reportedPostId"`
	Reason         string   `json:"reason" binding:"required"`
	Description    string   `json:"description" binding:"required,min=10,max=1000"`
	Evidence       []string `json:"evidence" binding:"max=5"`
}

type ReviewRequest struct {
	Status      string `json:"status" binding:"required,oneof=pending reviewing resolved dismissed"`
	AdminNote   string `json:"adminNote"`
	ActionTaken string `json:"actionTaken"`
}

type ListQuery struct {
	Page   int    `form:"page,default=1" binding:"min=1"`
	Limit  int    `form:"limit,default=20" binding:"min=1,max=50"`
	Status string `form:"status" binding:"omitempty,oneof=pending reviewing resolved dismissed"`
	Reason string `form:"reason"`
}
