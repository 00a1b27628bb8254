package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the public part of an account record. Credentials stored alongside
// it are never decoded.
type User struct {
	ID         primitive.ObjectID `json:"id" bson:"_id"`
	Username   string             `json:"username" bson:"username"`
	Email      string             `json:"email,omitempty" bson:"email,omitempty"`
	FirstName  string             `json:"firstName,omitempty" bson:"firstName,omitempty"`
	LastName   string             `json:"lastName,omitempty" bson:"lastName,omitempty"`
	Occupation string             `json:"occupation,omitempty" bson:"occupation,omitempty"`
	CreatedAt  time.Time          `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
}
