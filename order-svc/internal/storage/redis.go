package storage

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore is the expiring side-channel backend. Keys written here live
// for TTL and then vanish; it exists so unpaid order history survives a
// wipe of the durable store.
type RedisStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{Client: client, TTL: ttl}
}

func (s *RedisStore) Read(ctx context.Context, key string) ([]byte, error) {
	value, err := s.Client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (s *RedisStore) Write(ctx context.Context, key string, value []byte) error {
	return s.Client.Set(ctx, key, value, s.TTL).Err()
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return s.Client.Del(ctx, key).Err()
}

var _ Backend = (*RedisStore)(nil)
