// Package mongodb is the document-store layer holding reconciled
// contributions.
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Config struct {
	Host       string
	DBName     string
	Username   string
	Password   string
	AuthSource string
}

// Connect dials the store and verifies the connection.
func Connect(ctx context.Context, cfg Config) (*mongo.Database, error) {
	clientOpts := options.Client().ApplyURI("mongodb://" + cfg.Host)
	if cfg.Username != "" {
		clientOpts = clientOpts.SetAuth(options.Credential{
			Username:   cfg.Username,
			Password:   cfg.Password,
			AuthSource: cfg.AuthSource,
		})
	}

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	return client.Database(cfg.DBName), nil
}
