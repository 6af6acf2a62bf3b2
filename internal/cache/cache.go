package cache

import (
	"context"
	"errors"
	"time"
)

var ErrMiss = errors.New("cache miss")

// Cache stores raw values by key. Implementations return ErrMiss for absent keys.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	// Incr atomically increments the integer stored at key, starting from zero.
	Incr(ctx context.Context, key string) (int64, error)
}

type noop struct{}

// NewNoop returns a cache that never stores anything.
func NewNoop() Cache {
	return noop{}
}

func (noop) Get(context.Context, string) ([]byte, error) { return nil, ErrMiss }

func (noop) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (noop) Delete(context.Context, ...string) error { return nil }

func (noop) Incr(context.Context, string) (int64, error) { return 0, nil }
