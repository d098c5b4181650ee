package posts

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

// Repository handles database interactions for posts
type Repository struct {
	collection *mongo.Collection
}

// NewRepository initializes the repository and creates necessary indexes
func NewRepository(db *mongo.Database) *Repository {
	collection := db.Collection("posts")

	_, _ = collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "type", Value: 1}, {Key: "category", Value: 1}, {Key: "status", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "userId", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "createdAt", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "title", Value: "text"}, {Key: "description", Value: "text"}, {Key: "tags", Value: "text"}},
		},
	})

	return &Repository{collection: collection}
}

// Create inserts a new post
func (r *Repository) Create(ctx context.Context, post *Post) error {
	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt
	if post.Status == "" {
		post.Status = StatusActive
	}
	if post.Images == nil {
		post.Images = []string{}
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}

	result, err := r.collection.InsertOne(ctx, post)
	if err != nil {
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		post.ID = oid
	}
	return nil
}

// GetByID finds a post by its id
func (r *Repository) GetByID(ctx context.Context, postID primitive.ObjectID) (*Post, error) {
	var post Post
	err := r.collection.FindOne(ctx, bson.M{"_id": postID}).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// List returns posts matching the query filters, newest first
func (r *Repository) List(ctx context.Context, query ListQuery) ([]Post, int64, error) {
	filter := bson.M{}
	if query.Type != "" {
		filter["type"] = query.Type
	}
	if query.Category != "" {
		filter["category"] = query.Category
	}
	if query.Status != "" {
		filter["status"] = query.Status
	} else {
		filter["status"] = bson.M{"$ne": StatusExpired}
	}
	if query.Search != "" {
		filter["$text"] = bson.M{"$search": query.Search}
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	offset := int64((query.Page - 1) * query.Limit)
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(offset).
		SetLimit(int64(query.Limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var posts []Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// ListByUser returns a user's posts, newest first
func (r *Repository) ListByUser(ctx context.Context, userID primitive.ObjectID, offset, limit int) ([]Post, int64, error) {
	filter := bson.M{"userId": userID}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var posts []Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// Update applies field updates to a post
func (r *Repository) Update(ctx context.Context, postID primitive.ObjectID, updates bson.M) error {
	updates["updatedAt"] = time.Now()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": postID}, bson.M{"$set": updates})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Delete removes a post
func (r *Repository) Delete(ctx context.Context, postID primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": postID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// CountForUser returns a user's post counts, total and by status.
func (r *Repository) CountForUser(ctx context.Context, userID primitive.ObjectID) (total, active, resolved int64, err error) {
	total, err = r.collection.CountDocuments(ctx, bson.M{"userId": userID})
	if err != nil {
		return 0, 0, 0, err
	}
	active, err = r.collection.CountDocuments(ctx, bson.M{"userId": userID, "status": StatusActive})
	if err != nil {
		return 0, 0, 0, err
	}
	resolved, err = r.collection.CountDocuments(ctx, bson.M{"userId": userID, "status": StatusResolved})
	if err != nil {
		return 0, 0, 0, err
	}
	return total, active, resolved, nil
}

// CountByStatus returns post counts grouped by status, used by the admin
// dashboard.
func (r *Repository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	cursor, err := r.collection.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}}},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	counts := make(map[string]int64)
	for cursor.Next(ctx) {
		var row struct {
			ID    string `bson:"_id"`
			Count int64  `bson:"count"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, err
		}
		counts[row.ID] = row.Count
	}
	return counts, cursor.Err()
}
