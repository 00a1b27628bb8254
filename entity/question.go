package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const DefaultListLimit = 50

// QuestionFields is the user content and categorical metadata shared by the
// stored record and its resolved views.
type QuestionFields struct {
	Title            string               `json:"title" bson:"title" validate:"required"`
	Description      string               `json:"description" bson:"description" validate:"required"`
	MainField        string               `json:"mainField,omitempty" bson:"mainField,omitempty"`
	SubField         string               `json:"subField,omitempty" bson:"subField,omitempty"`
	Occupation       string               `json:"occupation,omitempty" bson:"occupation,omitempty"`
	FamilyType       string               `json:"familyType,omitempty" bson:"familyType,omitempty"`
	Interest         string               `json:"interest,omitempty" bson:"interest,omitempty"`
	MonthlyIncome    string               `json:"montlyIncome,omitempty" bson:"montlyIncome,omitempty"`
	Assets           string               `json:"assets,omitempty" bson:"assets,omitempty"`
	IncomeManagement string               `json:"incomeManagement,omitempty" bson:"incomeManagement,omitempty"`
	Tags             []string             `json:"tags,omitempty" bson:"tags,omitempty"`
	Likes            []primitive.ObjectID `json:"likes,omitempty" bson:"likes,omitempty"`
	CreatedAt        time.Time            `json:"createdAt" bson:"createdAt" validate:"required"`
}

// Question is the stored record; references hold identifiers only.
type Question struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	QuestionFields `bson:",inline"`
	CreatedBy      primitive.ObjectID   `json:"createdBy" bson:"createdBy" validate:"required"`
	Answers        []primitive.ObjectID `json:"answers,omitempty" bson:"answers,omitempty"`
}

// QuestionView is a list item with the author resolved.
type QuestionView struct {
	ID             primitive.ObjectID `json:"id" bson:"_id"`
	QuestionFields `bson:",inline"`
	CreatedBy      *User                `json:"createdBy" bson:"createdBy,omitempty"`
	Answers        []primitive.ObjectID `json:"answers,omitempty" bson:"answers,omitempty"`
}

// QuestionDetail is a single question with its author, answers and answer
// authors resolved.
type QuestionDetail struct {
	ID             primitive.ObjectID `json:"id"`
	QuestionFields `bson:",inline"`
	CreatedBy      *User        `json:"createdBy"`
	Answers        []AnswerView `json:"answers"`
}

type ListOptions struct {
	Skip   int64
	Limit  int64
	Filter QuestionFilter
}

// Normalize applies the default page. Limits above the default are kept.
func (o ListOptions) Normalize() ListOptions {
	if o.Skip < 0 {
		o.Skip = 0
	}
	if o.Limit <= 0 {
		o.Limit = DefaultListLimit
	}
	return o
}
