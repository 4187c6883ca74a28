package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CartItem is one line of a shopping cart.
type CartItem struct {
	ItemID   primitive.ObjectID `json:"item_id"  bson:"item_id"`
	Name     string             `json:"name"     bson:"name"`
	Quantity int                `json:"quantity" bson:"quantity"` // min 1, defaults to 1
	Price    float64            `json:"price"    bson:"price"`
}

// Cart is a user's shopping cart stored in MongoDB. No route exposes
// carts yet; the schema is in place for the checkout flow.
type Cart struct {
	ID    primitive.ObjectID `json:"id"    bson:"_id,omitempty"`
	Owner string             `json:"owner" bson:"owner"`
	Items []CartItem         `json:"items" bson:"items"`
	Bill  float64            `json:"bill"  bson:"bill"`
}
