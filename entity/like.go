package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Like targets either a question or an answer.
type Like struct {
	ID        primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	Question  *primitive.ObjectID `json:"question,omitempty" bson:"question,omitempty"`
	Answer    *primitive.ObjectID `json:"answer,omitempty" bson:"answer,omitempty"`
	CreatedBy primitive.ObjectID  `json:"createdBy" bson:"createdBy"`
	CreatedAt time.Time           `json:"createdAt" bson:"createdAt"`
}
