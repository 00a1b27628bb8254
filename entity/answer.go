package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Answer is written by the answers service; questions only read it.
type Answer struct {
	ID          primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Question    primitive.ObjectID   `json:"question" bson:"question"`
	Description string               `json:"description" bson:"description"`
	CreatedAt   time.Time            `json:"createdAt" bson:"createdAt"`
	CreatedBy   primitive.ObjectID   `json:"createdBy" bson:"createdBy"`
	Likes       []primitive.ObjectID `json:"likes,omitempty" bson:"likes,omitempty"`
}

type AnswerView struct {
	ID          primitive.ObjectID   `json:"id"`
	Question    primitive.ObjectID   `json:"question"`
	Description string               `json:"description"`
	CreatedAt   time.Time            `json:"createdAt"`
	CreatedBy   *User                `json:"createdBy"`
	Likes       []primitive.ObjectID `json:"likes,omitempty"`
}

func (a *Answer) View(author *User) AnswerView {
	return AnswerView{
		ID:          a.ID,
		Question:    a.Question,
		Description: a.Description,
		CreatedAt:   a.CreatedAt,
		CreatedBy:   author,
		Likes:       a.Likes,
	}
}
