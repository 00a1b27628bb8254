package core

import (
	"SkyCherry/entity"
	"SkyCherry/internal/lib/sl"
	"context"
	"log/slog"
	"sync"
)

type Repository interface {
	CheckApiKey(ctx context.Context, key string) (*entity.UserAuth, error)
	GenerateApiKey(ctx context.Context, username string) (string, error)

	ListQuestions(ctx context.Context, opts entity.ListOptions) ([]entity.QuestionView, error)
	GetQuestion(ctx context.Context, id string) (*entity.QuestionDetail, error)
	CreateQuestion(ctx context.Context, question *entity.Question) (*entity.Question, error)
}

type Core struct {
	repo    Repository
	authKey string
	keys    map[string]string
	mu      sync.RWMutex
	log     *slog.Logger
}

func New(log *slog.Logger) *Core {
	return &Core{
		log:  log.With(sl.Module("core")),
		keys: make(map[string]string),
	}
}

func (c *Core) SetRepository(repo Repository) {
	c.repo = repo
}

// SetAuthKey sets the master key accepted in addition to issued keys.
func (c *Core) SetAuthKey(key string) {
	c.authKey = key
}
