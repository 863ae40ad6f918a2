package repository

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/flowchartsman/retry"
	"github.com/joeyave/airia-site/configs"
	"github.com/joeyave/airia-site/helpers"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// Open returns the content repository of the configured source and a func
// releasing its resources.
func Open(ctx context.Context, cfg *configs.Config) (ContentRepository, func(), error) {
	switch cfg.ContentSource {
	case configs.SourceHTTP:
		repo, err := NewHTTPContentRepository(cfg.DataURL, helpers.NewHTTPClient(30*time.Second))
		if err != nil {
			return nil, nil, err
		}
		return repo, func() {}, nil

	case configs.SourceMongo:
		mongoClient, err := ConnectMongo(ctx, cfg.MongoURI)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			_ = mongoClient.Disconnect(ctx)
		}
		return NewMongoContentRepository(mongoClient, cfg.MongoName), closeFn, nil

	default:
		return NewFileContentRepository(os.DirFS(cfg.DataDir)), func() {}, nil
	}
}

// ConnectMongo connects and pings the primary, retrying while the server
// comes up.
func ConnectMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	mongoClient, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	retrier := retry.NewRetrier(5, 100*time.Millisecond, time.Second)
	err = retrier.Run(func() error {
		pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		err := mongoClient.Ping(pingCtx, readpref.Primary())
		if err != nil {
			log.Warn().Err(err).Msg("Mongo ping failed")
		}
		return err
	})
	if err != nil {
		_ = mongoClient.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return mongoClient, nil
}
