package resultstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore is a Store backed by Redis, for deployments that want the stash
// to survive a single process. Entries are plain key-value pairs with no
// expiration; the stash stays a simple KV mapping.
type RedisStore struct {
	client redis.UniversalClient
}

// NewRedisStore creates a RedisStore on top of an existing Redis client.
// Panics if the client is nil to fail fast during initialization.
func NewRedisStore(client redis.UniversalClient) *RedisStore {
	if client == nil {
		panic("resultstore: redis client is required")
	}
	return &RedisStore{client: client}
}

func (s *RedisStore) Put(ctx context.Context, id string, payload []byte) error {
	if err := s.client.Set(ctx, Key(id), payload, 0).Err(); err != nil {
		return fmt.Errorf("store generation result: %w", err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, id string) ([]byte, error) {
	payload, err := s.client.Get(ctx, Key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load generation result: %w", err)
	}
	return payload, nil
}
