package cache

import (
	"context"
	"time"
)

// NullCache discards every artifact. It backs --no-cache and the server's
// uncached mode, so every render is computed fresh.
type NullCache struct{}

// NewNullCache returns a cache that never holds an artifact.
func NewNullCache() Cache { return NullCache{} }

// Get reports a miss for every key.
func (NullCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

// Set drops the artifact.
func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

// Delete is a no-op; there is nothing to remove.
func (NullCache) Delete(context.Context, string) error { return nil }

// Close is a no-op.
func (NullCache) Close() error { return nil }

var _ Cache = NullCache{}
