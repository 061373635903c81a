package database

import (
	"context"
	"time"

	"skill-summarizer-backend/pkg/logger"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	TaskCollection  = "tasks"
	SkillCollection = "skills"
)

// Store is the long-lived document store handle shared by all repositories.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewMongoConnection(ctx context.Context, uri, database string, connectTimeout time.Duration) (*Store, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(25).
		SetMinPoolSize(5).
		SetMaxConnIdleTime(30 * time.Minute).
		SetConnectTimeout(connectTimeout).
		SetServerSelectionTimeout(connectTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	logger.Log.Info("Database connection established successfully", "database", database)
	return NewStore(client, database), nil
}

// NewStore wraps an already connected client.
func NewStore(client *mongo.Client, database string) *Store {
	return &Store{client: client, db: client.Database(database)}
}

func (s *Store) Tasks() *mongo.Collection {
	return s.db.Collection(TaskCollection)
}

func (s *Store) Skills() *mongo.Collection {
	return s.db.Collection(SkillCollection)
}

// Ping reports whether the primary is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
