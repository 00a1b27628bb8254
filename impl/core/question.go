package core

import (
	"SkyCherry/entity"
	"SkyCherry/internal/lib/api/apierr"
	"SkyCherry/internal/lib/sl"
	"context"
	"fmt"
	"log/slog"
)

func (c *Core) ListQuestions(ctx context.Context, opts entity.ListOptions) ([]entity.QuestionView, error) {
	if c.repo == nil {
		return nil, fmt.Errorf("repository is not set")
	}
	return c.repo.ListQuestions(ctx, opts)
}

func (c *Core) GetQuestion(ctx context.Context, id string) (*entity.QuestionDetail, error) {
	if c.repo == nil {
		return nil, fmt.Errorf("repository is not set")
	}
	return c.repo.GetQuestion(ctx, id)
}

func (c *Core) CreateQuestion(ctx context.Context, req *entity.QuestionRequest) (*entity.Question, error) {
	if c.repo == nil {
		return nil, fmt.Errorf("repository is not set")
	}

	question, err := req.ToQuestion()
	if err != nil {
		return nil, apierr.BadRequest(err.Error())
	}

	created, err := c.repo.CreateQuestion(ctx, question)
	if err != nil {
		c.log.With(
			sl.Err(err),
			slog.String("created_by", req.CreatedBy),
		).Error("create question")
		return nil, err
	}

	return created, nil
}
