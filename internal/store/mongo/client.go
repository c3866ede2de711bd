package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/MrKriegler/go-home-insurance/internal/platform/retry"
)

type Config struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
}

type MongoClient struct {
	Client *mongo.Client
	DB     *mongo.Database
}

// NewClient connects and waits until the primary answers a ping.
func NewClient(ctx context.Context, cfg Config) (*MongoClient, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetAppName("home-insurance").
		SetConnectTimeout(cfg.ConnectTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}

	err = retry.Startup.Do(ctx, "mongo ping", func(ctx context.Context) error {
		pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
		return client.Ping(pingCtx, readpref.Primary())
	})
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return &MongoClient{Client: client, DB: client.Database(cfg.Database)}, nil
}

// Ping verifies connectivity (used by /readyz).
func (c *MongoClient) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx, readpref.Primary())
}

func (c *MongoClient) Close(ctx context.Context) error {
	return c.Client.Disconnect(ctx)
}
