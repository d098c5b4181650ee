package admin

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rakibhasan-dev/findback/internal/features/auth"
	apperrors "github.com/rakibhasan-dev/findback/pkg/errors"
)

// UserListQuery is the filter surface of the admin user list.
type UserListQuery struct {
	Page               int    `form:"page,default=1" binding:"min=1"`
	Limit              int    `form:"limit,default=20" binding:"min=1,max=50"`
	VerificationStatus string `form:"verificationStatus" binding:"omitempty,oneof=unverified pending verified rejected"`
	Banned             *bool  `form:"banned"`
	Search             string `form:"search"`
}

// Repository gives the admin surface read access over the users collection.
// Writes still go through auth.Repository so update semantics stay in one
// place. The users collection indexes are owned by auth.
type Repository struct {
	users *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{users: db.Collection("users")}
}

// ListUsers returns users matching the filters, newest first
func (r *Repository) ListUsers(ctx context.Context, query UserListQuery) ([]auth.User, int64, error) {
	filter := bson.M{}
	if query.VerificationStatus != "" {
		filter["verificationStatus"] = query.VerificationStatus
	}
	if query.Banned != nil {
		filter["isBanned"] = *query.Banned
	}
	if query.Search != "" {
		pattern := primitive.Regex{Pattern: query.Search, Options: "i"}
		filter["$or"] = []bson.M{
			{"username": pattern},
			{"email": pattern},
		}
	}

	total, err := r.users.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((query.Page - 1) * query.Limit)).
		SetLimit(int64(query.Limit))

	cursor, err := r.users.Find(ctx, filter, opts)
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

// CountUsersByVerificationStatus returns user counts grouped by status.
func (r *Repository) CountUsersByVerificationStatus(ctx context.Context) (map[string]int64, error) {
	cursor, err := r.users.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$verificationStatus", "count": bson.M{"$sum": 1}}}},
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

// CountBannedUsers returns the number of currently banned users.
func (r *Repository) CountBannedUsers(ctx context.Context) (int64, error) {
	return r.users.CountDocuments(ctx, bson.M{"isBanned": true})
}

// GetUser loads a single user.
func (r *Repository) GetUser(ctx context.Context, userID primitive.ObjectID) (*auth.User, error) {
	var user auth.User
	err := r.users.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
