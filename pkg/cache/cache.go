// Package cache stores partitions and rendered artifacts between runs.
//
// # Backends
//
//   - [FileCache]: one JSON file per entry under a directory, used by the CLI
//   - [RedisCache]: shared storage for the HTTP server
//   - [NullCache]: never stores anything, used with --no-cache
//
// # Keys
//
// A [Keyer] derives keys from the document hash and the options that
// influence the output, so changing a strategy or a format never serves a
// stale entry. [ScopedKeyer] prefixes every key to isolate namespaces.
package cache

import (
	"context"
	"encoding/json"
	"time"
)

// Entry lifetimes. Entries are keyed by content hash, so they never go
// stale; the TTL only bounds disk and memory use.
const (
	TTLPartition = 7 * 24 * time.Hour
	TTLArtifact  = 7 * 24 * time.Hour
)

// Cache is a byte store with per-entry expiry. A miss is reported by
// ok == false, not by an error.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// GetJSON decodes the entry at key into v. It returns [ErrCacheMiss] when
// the key is absent or the entry no longer decodes.
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

// SetJSON encodes v and stores it at key.
func SetJSON(ctx context.Context, c Cache, key string, v any, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.Set(ctx, key, data, ttl)
}
