package notifications

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/messaging"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rakibhasan-dev/findback/internal/pkg/logger"
)

// Service creates notification records and pushes them over FCM. Delivery is
// a side effect of the triggering operation: every error here is logged and
// swallowed, never surfaced to the caller.
type Service struct {
	repo *Repository
	fcm  *messaging.Client
}

func NewService(repo *Repository, fcm *messaging.Client) *Service {
	return &Service{
		repo: repo,
		fcm:  fcm,
	}
}

// Notify stores the notification and pushes it. Self-notifications are
// dropped: an actor never hears about their own action.
func (s *Service) Notify(ctx context.Context, n *Notification) {
	if n.FromUserID != nil && *n.FromUserID == n.UserID {
		return
	}

	if err := s.repo.Create(ctx, n); err != nil {
		logger.Warn("failed to store notification for user %s: %v", n.UserID.Hex(), err)
		return
	}

	s.push(ctx, n)
}

func (s *Service) push(ctx context.Context, n *Notification) {
	if s.fcm == nil {
		return
	}

	msg := &messaging.Message{
		Topic: userTopic(n.UserID.Hex()),
		Notification: &messaging.Notification{
			Title: n.Title,
			Body:  n.Message,
		},
		Data: map[string]string{
			"type": n.Type,
			"link": n.Link,
		},
	}

	if _, err := s.fcm.Send(ctx, msg); err != nil {
		logger.Warn("failed to push notification to user %s: %v", n.UserID.Hex(), err)
	}
}

// NotifyVerificationApproved tells a user their account was verified.
func (s *Service) NotifyVerificationApproved(ctx context.Context, userID primitive.ObjectID, note string) {
	message := "Congratulations! Your account has been verified. You now have full access to all features."
	if note != "" {
		message = fmt.Sprintf("Your account has been verified. Note: %s", note)
	}

	s.Notify(ctx, &Notification{
		UserID:  userID,
		Type:    TypeVerificationApproved,
		Title:   "Verification Approved!",
		Message: message,
		Link:    "/dashboard",
	})
}

// NotifyVerificationRejected tells a user their submission was rejected.
func (s *Service) NotifyVerificationRejected(ctx context.Context, userID primitive.ObjectID, reason string) {
	s.Notify(ctx, &Notification{
		UserID:  userID,
		Type:    TypeVerificationRejected,
		Title:   "Verification Rejected",
		Message: fmt.Sprintf("Your verification request was rejected. Reason: %s. Please resubmit with valid documents.", reason),
		Link:    "/profile",
	})
}

// NotifyComment tells a post owner about a new comment.
func (s *Service) NotifyComment(ctx context.Context, postOwnerID, actorID, postID, commentID primitive.ObjectID, actorName, postTitle string) {
	s.Notify(ctx, &Notification{
		UserID:     postOwnerID,
		Type:       TypeComment,
		Title:      "New Comment",
		Message:    fmt.Sprintf("%s commented on your post %q", actorName, postTitle),
		FromUserID: &actorID,
		PostID:     &postID,
		CommentID:  &commentID,
		Link:       "/post/" + postID.Hex(),
	})
}

// NotifyReply tells a comment author about a reply.
func (s *Service) NotifyReply(ctx context.Context, parentAuthorID, actorID, postID, commentID primitive.ObjectID, actorName string) {
	s.Notify(ctx, &Notification{
		UserID:     parentAuthorID,
		Type:       TypeReply,
		Title:      "New Reply",
		Message:    fmt.Sprintf("%s replied to your comment", actorName),
		FromUserID: &actorID,
		PostID:     &postID,
		CommentID:  &commentID,
		Link:       "/post/" + postID.Hex(),
	})
}

// NotifyMessage tells a user about a new direct message.
func (s *Service) NotifyMessage(ctx context.Context, receiverID, senderID primitive.ObjectID, senderName string) {
	s.Notify(ctx, &Notification{
		UserID:     receiverID,
		Type:       TypeMessage,
		Title:      "New Message",
		Message:    fmt.Sprintf("%s sent you a message", senderName),
		FromUserID: &senderID,
		Link:       "/messages/" + senderID.Hex(),
	})
}
