// Package cache stores computed court artifacts.
//
// Generated courts, bills of materials and rendered drawings are pure
// functions of their inputs, so they are cached under content-derived keys
// (see [Keyer]). Three backends implement [Cache]:
//
//   - [FileCache] for the CLI, one JSON file per entry under the user cache dir
//   - [RedisCache] for the HTTP server, shared across instances
//   - [NullCache] when caching is disabled
//
// Backends are safe for concurrent use. A cache failure never changes a
// result: callers treat errors from Get as a miss and ignore errors from Set.
package cache

import (
	"context"
	"encoding/json"
	"time"
)

// Default TTLs. Court layouts never go stale for the same inputs, but keys
// embed a version prefix and entries are expired so old formats age out.
const (
	TTLCourt    = 30 * 24 * time.Hour
	TTLBOM      = 30 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is a byte-oriented key/value store with per-entry expiry.
type Cache interface {
	// Get returns the value for key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A zero ttl means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases backend resources.
	Close() error
}

// GetJSON decodes the value for key into v. It returns [ErrCacheMiss] when
// the key is absent or the stored value no longer decodes.
func GetJSON(ctx context.Context, c Cache, key string, v any) error {
	data, ok, err := c.Get(ctx, key)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCacheMiss
	}
	if err := json.Unmarshal(data, v); err != nil {
		_ = c.Delete(ctx, key)
		return ErrCacheMiss
	}
	return nil
}

// SetJSON encodes v and stores it under key.
func SetJSON(ctx context.Context, c Cache, key string, v any, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.Set(ctx, key, data, ttl)
}
