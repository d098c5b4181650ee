package messages

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository handles database interactions for direct messages
type Repository struct {
	collection *mongo.Collection
}

// NewRepository initializes the repository and creates necessary indexes
func NewRepository(db *mongo.Database) *Repository {
	collection := db.Collection("messages")

	_, _ = collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "senderId", Value: 1}, {Key: "receiverId", Value: 1}, {Key: "createdAt", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "receiverId", Value: 1}, {Key: "read", Value: 1}},
		},
	})

	return &Repository{collection: collection}
}

// Create inserts a new message
func (r *Repository) Create(ctx context.Context, message *Message) error {
	message.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, message)
	if err != nil {
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		message.ID = oid
	}
	return nil
}

// Thread returns the messages between two users, oldest first
func (r *Repository) Thread(ctx context.Context, userID, peerID primitive.ObjectID, offset, limit int) ([]Message, int64, error) {
	filter := bson.M{"$or": []bson.M{
		{"senderId": userID, "receiverId": peerID},
		{"senderId": peerID, "receiverId": userID},
	}}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: 1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var messages []Message
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, 0, err
	}
	return messages, total, nil
}

// Conversations aggregates a user's messages into one row per peer, newest
// conversation first.
func (r *Repository) Conversations(ctx context.Context, userID primitive.ObjectID) ([]Conversation, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"$or": []bson.M{
			{"senderId": userID},
			{"receiverId": userID},
		}}}},
		{{Key: "$sort", Value: bson.M{"createdAt": -1}}},
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{"$cond": bson.A{
				bson.M{"$eq": bson.A{"$senderId", userID}},
				"$receiverId",
				"$senderId",
			}},
			"lastMessage": bson.M{"$first": "$$ROOT"},
			"unreadCount": bson.M{"$sum": bson.M{"$cond": bson.A{
				bson.M{"$and": bson.A{
					bson.M{"$eq": bson.A{"$receiverId", userID}},
					bson.M{"$eq": bson.A{"$read", false}},
				}},
				1,
				0,
			}}},
		}}},
		{{Key: "$sort", Value: bson.M{"lastMessage.createdAt": -1}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var conversations []Conversation
	if err := cursor.All(ctx, &conversations); err != nil {
		return nil, err
	}
	return conversations, nil
}

// MarkThreadRead marks all of the peer's messages to the user as read
func (r *Repository) MarkThreadRead(ctx context.Context, userID, peerID primitive.ObjectID) (int64, error) {
	result, err := r.collection.UpdateMany(ctx,
		bson.M{"senderId": peerID, "receiverId": userID, "read": false},
		bson.M{"$set": bson.M{"read": true}},
	)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}
