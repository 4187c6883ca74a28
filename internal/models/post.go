package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post is a blog post stored in MongoDB. Posts carry no owner; any
// authenticated user may read and mutate any post.
type Post struct {
	ID        primitive.ObjectID `json:"id"         bson:"_id,omitempty"`
	Title     string             `json:"title"      bson:"title"`
	Desc      string             `json:"desc"       bson:"desc"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

// PostRequest is the JSON body for POST /api/post and PUT /api/post/{id}.
// On update, empty fields are left untouched.
type PostRequest struct {
	Title string `json:"title"`
	Desc  string `json:"desc"`
}
