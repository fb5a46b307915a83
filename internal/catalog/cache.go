package catalog

import (
	"context"
	"errors"
)

// Cache stores reshaped catalog answers. Implementations serialize the
// value themselves.
type Cache interface {
	Get(ctx context.Context, key string, out any) error
	Set(ctx context.Context, key string, v any) error
}

var ErrCacheMiss = errors.New("cache miss")
