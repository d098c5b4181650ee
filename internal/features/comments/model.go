package comments

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment is a post comment. One level of nesting: a reply carries the
// top-level comment's id in ParentCommentID and can itself never be a parent.
type Comment struct {
	ID              primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	PostID          primitive.ObjectID  `bson:"postId" json:"postId"`
	UserID          primitive.ObjectID  `bson:"userId" json:"userId"`
	Content         string              `bson:"content" json:"content"`
	ParentCommentID *primitive.ObjectID `bson:"parentCommentId,omitempty" json:"parentCommentId,omitempty"`
	CreatedAt       time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time           `bson:"updatedAt" json:"updatedAt"`
}

type CreateRequest struct {
	Content         string `json:"content" binding:"required,min=1,max=500"`
	ParentCommentID string `json:"parentCommentId"`
}

// CommentAuthor is the slim author projection embedded in responses.
type CommentAuthor struct {
	ID                 primitive.ObjectID `json:"id"`
	Username           string             `json:"username"`
	Avatar             string             `json:"avatar,omitempty"`
	VerificationStatus string             `json:"verificationStatus"`
}

// CommentView is a top-level comment with its replies attached, oldest reply
// first.
type CommentView struct {
	Comment
	Author  *CommentAuthor `json:"author,omitempty"`
	Replies []CommentView  `json:"replies,omitempty"`
}
