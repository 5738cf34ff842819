// Package cache stores rendered artifacts keyed by spec content.
//
// Three backends implement [Cache]:
//
//   - [FileCache]: hash-sharded JSON files with expiry, used by the CLI
//   - [RedisCache]: a shared Redis instance, used by the HTTP server
//   - [NullCache]: stores nothing, used when caching is disabled
//
// Keys are built by a [Keyer] so that every backend agrees on the layout of
// the key space.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry expiry.
//
// Get reports a miss with ok == false and a nil error; errors are reserved
// for backend failures. A ttl of zero never expires.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Default lifetimes of cached values.
const (
	// TTLArtifact applies to rendered output. Renders are deterministic, so
	// the lifetime only bounds disk usage.
	TTLArtifact = 30 * 24 * time.Hour
)
