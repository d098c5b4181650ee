package posts

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post types
const (
	TypeLost  = "lost"
	TypeFound = "found"
)

// Post statuses
const (
	StatusActive   = "active"
	StatusResolved = "resolved"
	StatusExpired  = "expired"
)

// Categories an item can belong to.
var Categories = []string{
	"electronics", "documents", "jewelry", "clothing", "pets", "bags", "keys", "other",
}

// Coordinates is a lat/lng pair. Censoring strips it entirely.
type Coordinates struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

// Location holds where the item was lost or found.
type Location struct {
	Address     string       `bson:"address" json:"address"`
	Coordinates *Coordinates `bson:"coordinates,omitempty" json:"coordinates,omitempty"`
}

// Post represents a lost or found item listing.
type Post struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Type        string             `bson:"type" json:"type"`
	Category    string             `bson:"category" json:"category"`
	DateLost    *time.Time         `bson:"dateLost,omitempty" json:"dateLost,omitempty"`
	DateFound   *time.Time         `bson:"dateFound,omitempty" json:"dateFound,omitempty"`
	Location    Location           `bson:"location" json:"location"`
	Images      []string           `bson:"images" json:"images"`
	Tags        []string           `bson:"tags" json:"tags"`
	Status      string             `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Author is the post owner's public contact surface, embedded into views.
// Email and phone are what censoring replaces for unverified viewers.
type Author struct {
	ID                 primitive.ObjectID `json:"id"`
	Username           string             `json:"username"`
	Avatar             string             `json:"avatar,omitempty"`
	Email              string             `json:"email,omitempty"`
	Phone              string             `json:"phone,omitempty"`
	VerificationStatus string             `json:"verificationStatus"`
}

// Request DTOs

type CreateRequest struct {
	Title       string       `json:"title" binding:"required,min=3,max=100"`
	Description string       `json:"description" binding:"required,min=10,max=2000"`
	Type        string       `json:"type" binding:"required,oneof=lost found"`
	Category    string       `json:"category" binding:"required"`
	DateLost    *time.Time   `json:"dateLost"`
	DateFound   *time.Time   `json:"dateFound"`
	Address     string       `json:"address" binding:"required"`
	Coordinates *Coordinates `json:"coordinates"`
	Images      []string     `json:"images" binding:"max=5"`
	Tags        []string     `json:"tags" binding:"max=10"`
}

type UpdateRequest struct {
	Title       *string      `json:"title" binding:"omitempty,min=3,max=100"`
	Description *string      `json:"description" binding:"omitempty,min=10,max=2000"`
	Category    *string      `json:"category"`
	Address     *string      `json:"address"`
	Coordinates *Coordinates `json:"coordinates"`
	Images      []string     `json:"images" binding:"omitempty,max=5"`
	Tags        []string     `json:"tags" binding:"omitempty,max=10"`
}

// ListQuery carries the filter surface of the public listing.
type ListQuery struct {
	Page     int    `form:"page,default=1" binding:"min=1"`
	Limit    int    `form:"limit,default=12" binding:"min=1,max=50"`
	Type     string `form:"type" binding:"omitempty,oneof=lost found"`
	Category string `form:"category"`
	Status   string `form:"status" binding:"omitempty,oneof=active resolved expired"`
	Search   string `form:"search"`
}
