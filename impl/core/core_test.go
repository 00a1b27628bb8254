package core

import (
	"SkyCherry/entity"
	"SkyCherry/internal/lib/api/apierr"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) CheckApiKey(ctx context.Context, key string) (*entity.UserAuth, error) {
	args := m.Called(ctx, key)
	user, _ := args.Get(0).(*entity.UserAuth)
	return user, args.Error(1)
}

func (m *mockRepository) GenerateApiKey(ctx context.Context, username string) (string, error) {
	args := m.Called(ctx, username)
	return args.String(0), args.Error(1)
}

func (m *mockRepository) ListQuestions(ctx context.Context, opts entity.ListOptions) ([]entity.QuestionView, error) {
	args := m.Called(ctx, opts)
	questions, _ := args.Get(0).([]entity.QuestionView)
	return questions, args.Error(1)
}

func (m *mockRepository) GetQuestion(ctx context.Context, id string) (*entity.QuestionDetail, error) {
	args := m.Called(ctx, id)
	question, _ := args.Get(0).(*entity.QuestionDetail)
	return question, args.Error(1)
}

func (m *mockRepository) CreateQuestion(ctx context.Context, question *entity.Question) (*entity.Question, error) {
	args := m.Called(ctx, question)
	created, _ := args.Get(0).(*entity.Question)
	return created, args.Error(1)
}

func newTestCore(repo Repository) *Core {
	c := New(slog.New(slog.NewTextHandler(io.Discard, nil)))
	if repo != nil {
		c.SetRepository(repo)
	}
	return c
}

func TestCore_ListQuestions_PassesOptionsThrough(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepository)
	repo.On("ListQuestions", ctx, entity.ListOptions{}).
		Return([]entity.QuestionView{{}}, nil)

	questions, err := newTestCore(repo).ListQuestions(ctx, entity.ListOptions{})
	require.NoError(t, err)
	assert.Len(t, questions, 1)
	repo.AssertExpectations(t)
}

func TestCore_ListQuestions_Page(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepository)
	opts := entity.ListOptions{Skip: 10, Limit: 5, Filter: entity.QuestionFilter{Interest: "travel"}}
	repo.On("ListQuestions", ctx, opts).Return([]entity.QuestionView{}, nil)

	_, err := newTestCore(repo).ListQuestions(ctx, opts)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCore_NoRepository(t *testing.T) {
	c := newTestCore(nil)
	ctx := context.Background()

	_, err := c.ListQuestions(ctx, entity.ListOptions{})
	assert.Error(t, err)
	_, err = c.GetQuestion(ctx, "id")
	assert.Error(t, err)
	_, err = c.CreateQuestion(ctx, &entity.QuestionRequest{})
	assert.Error(t, err)
	_, err = c.GenerateApiKey(ctx, "web")
	assert.Error(t, err)
}

func TestCore_GetQuestion_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepository)
	repo.On("GetQuestion", ctx, "missing").Return(nil, apierr.NotFound("No such question exists!"))

	_, err := newTestCore(repo).GetQuestion(ctx, "missing")
	require.Error(t, err)
	assert.True(t, apierr.IsNotFound(err))
}

func TestCore_CreateQuestion(t *testing.T) {
	ctx := context.Background()
	author := primitive.NewObjectID()
	repo := new(mockRepository)
	repo.On("CreateQuestion", ctx, mock.MatchedBy(func(q *entity.Question) bool {
		return q.Title == "t" && q.CreatedBy == author
	})).Return(&entity.Question{ID: primitive.NewObjectID()}, nil)

	created, err := newTestCore(repo).CreateQuestion(ctx, &entity.QuestionRequest{
		Title:       "t",
		Description: "d",
		CreatedBy:   author.Hex(),
	})
	require.NoError(t, err)
	assert.False(t, created.ID.IsZero())
	repo.AssertExpectations(t)
}

func TestCore_CreateQuestion_BadAuthor(t *testing.T) {
	repo := new(mockRepository)

	_, err := newTestCore(repo).CreateQuestion(context.Background(), &entity.QuestionRequest{CreatedBy: "bad"})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apierr.StatusOf(err))
	repo.AssertNotCalled(t, "CreateQuestion", mock.Anything, mock.Anything)
}

func TestCore_AuthenticateByToken(t *testing.T) {
	ctx := context.Background()

	t.Run("master key", func(t *testing.T) {
		c := newTestCore(nil)
		c.SetAuthKey("secret")

		user, err := c.AuthenticateByToken(ctx, "secret")
		require.NoError(t, err)
		assert.True(t, user.IsMaster())
	})

	t.Run("issued key is cached", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("CheckApiKey", ctx, "k-1").Return(&entity.UserAuth{Username: "web", Token: "k-1"}, nil).Once()
		c := newTestCore(repo)

		for i := 0; i < 2; i++ {
			user, err := c.AuthenticateByToken(ctx, "k-1")
			require.NoError(t, err)
			assert.Equal(t, "web", user.Username)
		}
		repo.AssertNumberOfCalls(t, "CheckApiKey", 1)
	})

	t.Run("unknown key", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("CheckApiKey", ctx, "nope").Return(nil, errors.New("api key not found"))

		_, err := newTestCore(repo).AuthenticateByToken(ctx, "nope")
		assert.Error(t, err)
	})
}

func TestCore_GenerateApiKey(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepository)
	repo.On("GenerateApiKey", ctx, "web").Return("k-2", nil)
	c := newTestCore(repo)

	key, err := c.GenerateApiKey(ctx, "web")
	require.NoError(t, err)
	assert.Equal(t, "k-2", key)

	user, err := c.AuthenticateByToken(ctx, "k-2")
	require.NoError(t, err)
	assert.Equal(t, "web", user.Username)
	repo.AssertNotCalled(t, "CheckApiKey", mock.Anything, mock.Anything)
}
