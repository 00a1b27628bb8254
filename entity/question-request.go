package entity

import (
	"SkyCherry/internal/lib/validate"
	"fmt"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// QuestionRequest is the body of a question submission.
type QuestionRequest struct {
	Title            string   `json:"title" validate:"required"`
	Description      string   `json:"description" validate:"required"`
	MainField        string   `json:"mainField" validate:"omitempty"`
	SubField         string   `json:"subField" validate:"omitempty"`
	Occupation       string   `json:"occupation" validate:"omitempty"`
	FamilyType       string   `json:"familyType" validate:"omitempty"`
	Interest         string   `json:"interest" validate:"omitempty"`
	MonthlyIncome    string   `json:"montlyIncome" validate:"omitempty"`
	Assets           string   `json:"assets" validate:"omitempty"`
	IncomeManagement string   `json:"incomeManagement" validate:"omitempty"`
	Tags             []string `json:"tags" validate:"omitempty"`
	CreatedBy        string   `json:"createdBy" validate:"required,mongodb"`
}

func (q *QuestionRequest) Bind(_ *http.Request) error {
	return validate.Struct(q)
}

func (q *QuestionRequest) ToQuestion() (*Question, error) {
	author, err := primitive.ObjectIDFromHex(q.CreatedBy)
	if err != nil {
		return nil, fmt.Errorf("invalid createdBy: %w", err)
	}
	return &Question{
		QuestionFields: QuestionFields{
			Title:            q.Title,
			Description:      q.Description,
			MainField:        q.MainField,
			SubField:         q.SubField,
			Occupation:       q.Occupation,
			FamilyType:       q.FamilyType,
			Interest:         q.Interest,
			MonthlyIncome:    q.MonthlyIncome,
			Assets:           q.Assets,
			IncomeManagement: q.IncomeManagement,
			Tags:             q.Tags,
			CreatedAt:        time.Now(),
		},
		CreatedBy: author,
	}, nil
}
