// Package mongo stores car documents in MongoDB when carStore.driver is "mongo".
package mongo

import (
	"context"
	"log/slog"

	"carhub/config"
	"carhub/internal/domain/lifecycle"
	"carhub/internal/errors"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New connects a client for cfg.Mongo.URI. The server is pinged on start and
// indexes are created when carStore.autoMigrate is set.
func New(params Params) (*mongo.Client, error) {
	cfg := params.Config.Mongo
	if cfg == nil || cfg.URI == "" {
		return nil, errors.New("mongo.uri is required when carStore.driver is mongo")
	}

	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	autoMigrate := params.Config.CarStore != nil && params.Config.CarStore.AutoMigrate

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, nil); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}
			params.Logger.Info("Connected to MongoDB",
				slog.String("database", cfg.Database),
				slog.String("collection", cfg.Collection))

			if autoMigrate {
				return EnsureIndexes(ctx, CarCollection(client, params.Config))
			}

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			ctx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return client.Disconnect(ctx)
		},
	})

	return client, nil
}

// CarCollection returns the configured cars collection.
func CarCollection(client *mongo.Client, cfg *config.Config) *mongo.Collection {
	return client.Database(cfg.Mongo.Database).Collection(cfg.Mongo.Collection)
}
