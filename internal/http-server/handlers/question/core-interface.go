package question

import (
	"SkyCherry/entity"
	"context"
)

type Core interface {
	ListQuestions(ctx context.Context, opts entity.ListOptions) ([]entity.QuestionView, error)
	GetQuestion(ctx context.Context, id string) (*entity.QuestionDetail, error)
	CreateQuestion(ctx context.Context, req *entity.QuestionRequest) (*entity.Question, error)
}
