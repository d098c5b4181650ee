package messages

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Message is a direct message between two users, optionally tied to a post.
type Message struct {
	ID         primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	SenderID   primitive.ObjectID  `bson:"senderId" json:"senderId"`
	ReceiverID primitive.ObjectID  `bson:"receiverId" json:"receiverId"`
	PostID     *primitive.ObjectID `bson:"postId,omitempty" json:"postId,omitempty"`
	Content    string              `bson:"content" json:"content"`
	Read       bool                `bson:"read" json:"read"`
	CreatedAt  time.Time           `bson:"createdAt" json:"createdAt"`
}

type SendRequest struct {
	ReceiverID string `json:"receiverId" binding:"required"`
	PostID     string `json:"postId"`
	Content    string `json:"content" binding:"required,min=1,max=1000"`
}

// Conversation is one row of the conversation list: the peer, the latest
// message and how many of their messages are unread.
type Conversation struct {
	PeerID      primitive.ObjectID `bson:"_id" json:"peerId"`
	LastMessage Message            `bson:"lastMessage" json:"lastMessage"`
	UnreadCount int64              `bson:"unreadCount" json:"unreadCount"`
}
