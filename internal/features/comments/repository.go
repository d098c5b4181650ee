package comments

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	apperrors "github.com/rakibhasan-dev/findback/pkg/errors"
)

// Repository handles database interactions for comments
type Repository struct {
	collection *mongo.Collection
}

// NewRepository initializes the repository and creates necessary indexes
func NewRepository(db *mongo.Database) *Repository {
	collection := db.Collection("comments")

	_, _ = collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "postId", Value: 1}, {Key: "createdAt", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "parentCommentId", Value: 1}},
		},
	})

	return &Repository{collection: collection}
}

// Create inserts a new comment
func (r *Repository) Create(ctx context.Context, comment *Comment) error {
	comment.CreatedAt = time.Now()
	comment.UpdatedAt = comment.CreatedAt

	result, err := r.collection.InsertOne(ctx, comment)
	if err != nil {
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		comment.ID = oid
	}
	return nil
}

// GetByID finds a comment by its id
func (r *Repository) GetByID(ctx context.Context, commentID primitive.ObjectID) (*Comment, error) {
	var comment Comment
	err := r.collection.FindOne(ctx, bson.M{"_id": commentID}).Decode(&comment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &comment, nil
}

// ListByPost returns all comments on a post in ascending creation order.
// Grouping into threads happens in the handler.
func (r *Repository) ListByPost(ctx context.Context, postID primitive.ObjectID) ([]Comment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"postId": postID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var comments []Comment
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// DeleteCascade removes a comment and, when it is a top-level comment, its
// direct replies, in one DeleteMany. A reply has no children so the same
// predicate deletes exactly one record for it.
func (r *Repository) DeleteCascade(ctx context.Context, commentID primitive.ObjectID) (int64, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{"$or": []bson.M{
		{"_id": commentID},
		{"parentCommentId": commentID},
	}})
	if err != nil {
		return 0, err
	}
	if result.DeletedCount == 0 {
		return 0, apperrors.ErrNotFound
	}
	return result.DeletedCount, nil
}

// DeleteByPost removes all comments on a post, used when a post is deleted.
func (r *Repository) DeleteByPost(ctx context.Context, postID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"postId": postID})
	return err
}

// Count returns the total number of comments, used by the admin dashboard.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
