package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by backends when a key has no value.
var ErrNotFound = errors.New("key not found")

// Backend is a raw JSON key-value store. Two implementations back the
// adapter: a durable one (postgres) and an expiring side channel (redis).
type Backend interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
