package adapter

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mateusmacedo/go-mediator/pkg/behavior"
)

type redisCacheStore struct {
	client redis.UniversalClient
}

// NewRedisCacheStore backs the caching behavior with Redis, for sharing
// cached query results across processes.
func NewRedisCacheStore(client redis.UniversalClient) behavior.CacheStore {
	return &redisCacheStore{client: client}
}

func (s *redisCacheStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

func (s *redisCacheStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return s.client.Set(ctx, key, value, ttl).Err()
}
