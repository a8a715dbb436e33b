// Package db defines the key-value store contract used by the Redis
// result cache backend.
package db

import (
	"context"
	"time"
)

// Store is a minimal key-value store.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Del(ctx context.Context, keys ...string) error
	// DelPrefix removes every key with the given prefix.
	DelPrefix(ctx context.Context, prefix string) error

	Ping(ctx context.Context) error
	WaitForReady(ctx context.Context, timeout time.Duration) error
	Close()
}
