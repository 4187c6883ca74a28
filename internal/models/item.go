package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Item is a sale listing stored in MongoDB. Owner holds the id of the
// user who created the listing.
type Item struct {
	ID          primitive.ObjectID `json:"id"          bson:"_id,omitempty"`
	Owner       string             `json:"owner"       bson:"owner"`
	Name        string             `json:"name"        bson:"name"`
	Description string             `json:"description" bson:"description"`
	Category    string             `json:"category"    bson:"category"`
	Price       float64            `json:"price"       bson:"price"`
	CreatedAt   time.Time          `json:"created_at"  bson:"created_at"`
}

// ItemRequest is the JSON body for POST /api/items. Price is a pointer
// so that an absent price can be told apart from a zero one.
type ItemRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Price       *float64 `json:"price"`
}
