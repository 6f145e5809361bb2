package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/inkpaste/inkpaste/models"
)

var _ PasteStore = (*RedisStore)(nil)

// RedisStore implements PasteStore using Redis. Records are stored as JSON
// under a "paste:" key prefix. No key TTL is set: expiry is lazy and
// decided on access, the same as every other backend.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a new Redis storage backend and verifies the
// connection.
func NewRedisStore(opts *redis.Options) (*RedisStore, error) {
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisStore{client: client}, nil
}

// Put inserts a new paste. SET NX makes the insert-if-absent atomic, so a
// concurrent create with the same ID loses with ErrDuplicateID.
func (r *RedisStore) Put(ctx context.Context, paste *models.Paste) error {
	data, err := json.Marshal(paste)
	if err != nil {
		return err
	}

	ok, err := r.client.SetNX(ctx, pasteKey(paste.ID), data, 0).Result()
	if err != nil {
		return err
	}
	if !ok {
		return ErrDuplicateID
	}
	return nil
}

// Get retrieves a paste by its ID.
func (r *RedisStore) Get(ctx context.Context, id string) (*models.Paste, error) {
	data, err := r.client.Get(ctx, pasteKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return decodePaste(data)
}

// Delete removes a paste; deleting an absent ID is not an error.
func (r *RedisStore) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, pasteKey(id)).Err()
}

// Take removes the paste and returns it. GETDEL is a single atomic
// command, so at most one concurrent caller observes the record.
func (r *RedisStore) Take(ctx context.Context, id string) (*models.Paste, error) {
	data, err := r.client.GetDel(ctx, pasteKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return decodePaste(data)
}

// Ping verifies the Redis connection.
func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close closes the Redis connection.
func (r *RedisStore) Close() error {
	return r.client.Close()
}

func pasteKey(id string) string {
	return "paste:" + id
}

func decodePaste(data []byte) (*models.Paste, error) {
	var paste models.Paste
	if err := json.Unmarshal(data, &paste); err != nil {
		return nil, err
	}
	return &paste, nil
}
