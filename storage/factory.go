package storage

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/inkpaste/inkpaste/config"
)

// NewStore creates a storage backend based on the configuration.
func NewStore(ctx context.Context, cfg *config.Config) (PasteStore, error) {
	switch cfg.StorageType {
	case "postgres":
		return NewPostgresStore(ctx, cfg.PostgresDSN())

	case "mongodb":
		return NewMongoStore(cfg.MongoURI, cfg.MongoDB)

	case "redis":
		return NewRedisStore(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})

	case "dynamodb":
		return NewDynamoStore(cfg.DynamoTable, cfg.AWSRegion)

	case "memory":
		return NewMemoryStore(), nil

	default:
		return nil, fmt.Errorf("unsupported storage type: %s (supported: postgres, mongodb, redis, dynamodb, memory)", cfg.StorageType)
	}
}
