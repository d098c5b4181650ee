package notifications

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification type constants
const (
	TypeComment              = "comment"
	TypeReply                = "reply"
	TypeVerificationApproved = "verification_approved"
	TypeVerificationRejected = "verification_rejected"
	TypePostResolved         = "post_resolved"
	TypeMessage              = "message"
	TypeSystem               = "system"
)

// Notification represents a user notification. Records expire 30 days after
// creation via a TTL index.
type Notification struct {
	ID         primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID     primitive.ObjectID  `bson:"userId" json:"userId"`
	Type       string              `bson:"type" json:"type"`
	Title      string              `bson:"title" json:"title"`
	Message    string              `bson:"message" json:"message"`
	FromUserID *primitive.ObjectID `bson:"fromUserId,omitempty" json:"fromUserId,omitempty"`
	PostID     *primitive.ObjectID `bson:"postId,omitempty" json:"postId,omitempty"`
	CommentID  *primitive.ObjectID `bson:"commentId,omitempty" json:"commentId,omitempty"`
	Read       bool                `bson:"read" json:"read"`
	Link       string              `bson:"link,omitempty" json:"link,omitempty"`
	CreatedAt  time.Time           `bson:"createdAt" json:"createdAt"`
}

// Request DTOs

type ListQuery struct {
	Page       int  `form:"page,default=1" binding:"min=1"`
	Limit      int  `form:"limit,default=20" binding:"min=1,max=50"`
	UnreadOnly bool `form:"unreadOnly"`
}

// Response DTOs

type UnreadCountResponse struct {
	UnreadCount int64 `json:"unreadCount"`
}

type MarkAllReadResponse struct {
	MarkedCount int64 `json:"markedCount"`
}
