package repository

import (
	"SkyCherry/entity"
	"SkyCherry/internal/config"
	"SkyCherry/internal/lib/sl"
	"context"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"log/slog"
	"time"
)

const (
	questionsCollection = "questions"
	answersCollection   = "answers"
	usersCollection     = "skycherryusers"
	apiKeysCollection   = "api-keys"

	connectTimeout = 10 * time.Second
)

type MongoDB struct {
	client   *mongo.Client
	database string
	log      *slog.Logger
}

// NewMongoClient connects once and keeps the client for the process lifetime.
// Returns nil when mongo is disabled in config.
func NewMongoClient(ctx context.Context, conf *config.Config, logger *slog.Logger) (*MongoDB, error) {
	if !conf.Mongo.Enabled {
		return nil, nil
	}
	clientOptions := options.Client().ApplyURI(conf.MongoURI())
	if conf.Mongo.User != "" {
		clientOptions.SetAuth(options.Credential{
			Username:   conf.Mongo.User,
			Password:   conf.Mongo.Password,
			AuthSource: conf.Mongo.Database,
		})
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("mongodb connect error: %w", err)
	}
	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongodb ping error: %w", err)
	}

	return newMongoDB(client, conf.Mongo.Database, logger), nil
}

func newMongoDB(client *mongo.Client, database string, logger *slog.Logger) *MongoDB {
	return &MongoDB{
		client:   client,
		database: database,
		log:      logger.With(sl.Module("mongodb")),
	}
}

func (m *MongoDB) Close(ctx context.Context) error {
	if err := m.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("mongodb disconnect error: %w", err)
	}
	return nil
}

func (m *MongoDB) collection(name string) *mongo.Collection {
	return m.client.Database(m.database).Collection(name)
}

func (m *MongoDB) findError(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil
	}
	return fmt.Errorf("mongodb find error: %w", err)
}

// CheckApiKey resolves a bearer key to the username it was issued for.
func (m *MongoDB) CheckApiKey(ctx context.Context, key string) (*entity.UserAuth, error) {
	filter := bson.D{{"key", key}}

	var result entity.UserAuth
	err := m.collection(apiKeysCollection).FindOne(ctx, filter).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("api key not found")
		}
		return nil, m.findError(err)
	}

	if result.Username == "" {
		return nil, fmt.Errorf("api key not found")
	}

	return &result, nil
}

func (m *MongoDB) getKeyByUsername(ctx context.Context, username string) (string, error) {
	filter := bson.D{{"username", username}}

	var result struct {
		Key string `bson:"key"`
	}
	err := m.collection(apiKeysCollection).FindOne(ctx, filter).Decode(&result)
	if err != nil {
		return "", m.findError(err)
	}

	return result.Key, nil
}

// GenerateApiKey returns the existing key of username or issues a new one.
func (m *MongoDB) GenerateApiKey(ctx context.Context, username string) (string, error) {
	k, err := m.getKeyByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("failed to get existing API key: %w", err)
	}
	if k != "" {
		return k, nil
	}

	id, err := uuid.NewUUID()
	if err != nil {
		return "", fmt.Errorf("uuid generation error: %w", err)
	}
	key := id.String()

	doc := bson.D{
		{"username", username},
		{"key", key},
	}

	_, err = m.collection(apiKeysCollection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("mongodb insert error: %w", err)
	}

	m.log.With(slog.String("username", username)).Info("api key issued")

	return key, nil
}
