package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConnectionSettings tunes the MongoDB client. Zero values fall back to
// defaults sized for a single server process.
type ConnectionSettings struct {
	ConnectTimeout   time.Duration
	SelectionTimeout time.Duration
	MaxPoolSize      uint64
	MinPoolSize      uint64
}

func (s ConnectionSettings) withDefaults() ConnectionSettings {
	if s.ConnectTimeout == 0 {
		s.ConnectTimeout = 10 * time.Second
	}
	if s.SelectionTimeout == 0 {
		s.SelectionTimeout = 5 * time.Second
	}
	if s.MaxPoolSize == 0 {
		s.MaxPoolSize = 100
	}
	if s.MinPoolSize == 0 {
		s.MinPoolSize = 10
	}
	return s
}

// ConnectMongoDB connects, verifies the connection with a ping and
// returns a handle on the named database.
func ConnectMongoDB(ctx context.Context, uri, database string, settings ConnectionSettings) (*mongo.Database, error) {
	settings = settings.withDefaults()

	clientOpts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(settings.ConnectTimeout).
		SetServerSelectionTimeout(settings.SelectionTimeout).
		SetMaxPoolSize(settings.MaxPoolSize).
		SetMinPoolSize(settings.MinPoolSize)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return client.Database(database), nil
}
