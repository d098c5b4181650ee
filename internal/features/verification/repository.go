package verification

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rakibhasan-dev/findback/internal/features/auth"
	apperrors "github.com/rakibhasan-dev/findback/pkg/errors"
)

// Repository operates on the users collection for verification transitions.
type Repository struct {
	usersCollection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{
		usersCollection: db.Collection("users"),
	}
}

// GetUser loads a user by id.
func (r *Repository) GetUser(ctx context.Context, userID primitive.ObjectID) (*auth.User, error) {
	var user auth.User
	err := r.usersCollection.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ApplyTransition persists the verification fields of a user whose status was
// fromStatus when the transition ran. The filter includes the prior status as
// a compare-and-set: if a concurrent admin action already moved the user, the
// update matches nothing and the caller gets ErrInvalidState instead of a
// silent overwrite.
func (r *Repository) ApplyTransition(ctx context.Context, userID primitive.ObjectID, fromStatus string, u *auth.User) error {
	update := bson.M{"$set": bson.M{
		"verificationStatus": u.VerificationStatus,
		"nidFrontImage":      u.NIDFrontImage,
		"nidBackImage":       u.NIDBackImage,
		"selfieImage":        u.SelfieImage,
		"rejectionReason":    u.RejectionReason,
		"verificationNote":   u.VerificationNote,
		"verifiedAt":         u.VerifiedAt,
		"verifiedBy":         u.VerifiedBy,
		"updatedAt":          time.Now(),
	}}

	result, err := r.usersCollection.UpdateOne(ctx, bson.M{
		"_id":                userID,
		"verificationStatus": fromStatus,
	}, update)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		// Distinguish a vanished user from a lost race on status.
		count, countErr := r.usersCollection.CountDocuments(ctx, bson.M{"_id": userID})
		if countErr == nil && count == 0 {
			return apperrors.ErrNotFound
		}
		return apperrors.ErrInvalidState
	}

	return nil
}

// ListPending returns users awaiting review, oldest first.
func (r *Repository) ListPending(ctx context.Context, offset, limit int) ([]auth.User, int64, error) {
	filter := bson.M{"verificationStatus": auth.StatusPending}

	total, err := r.usersCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: 1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := r.usersCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var users []auth.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, 0, err
	}

	return users, total, nil
}
