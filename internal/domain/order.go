package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Order references products by their store-native object ids, kept in the
// order they were submitted.
type Order struct {
	ID       primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	UserID   string               `bson:"user_id" json:"user_id"`
	Products []primitive.ObjectID `bson:"products" json:"products"`
}
