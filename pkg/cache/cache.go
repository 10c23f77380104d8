// Package cache stores parsed graphs between runs.
//
// # Overview
//
// Parsing a large GraphML export dominates the pipeline's run time, so the
// canonical graph JSON is cached under a key derived from the input bytes.
// Three backends implement [Cache]:
//
//   - [FileCache]: one JSON file per entry under a local directory
//   - [RedisCache]: a shared Redis instance, keys under a common prefix
//   - [NullCache]: caching disabled
//
// # Keys
//
// [GraphKey] builds keys of the form "graph:<sha256>:<format>". Bump
// [GraphFormat] whenever the serialized graph changes shape so that stale
// entries are ignored rather than misread.
//
// # Corrupt Entries
//
// Backends treat unreadable entries as misses. Callers that fail to decode
// a hit should [Cache.Delete] it and continue as on a miss.
package cache

import (
	"context"
	"time"
)

// GraphFormat versions the cached graph encoding.
const GraphFormat = "1"

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the value for key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// Maintainer is implemented by caches that support bulk maintenance.
type Maintainer interface {
	// Clear removes every entry owned by the cache.
	Clear(ctx context.Context) error

	// Stats reports the number and total size of stored entries.
	Stats(ctx context.Context) (Stats, error)
}

// Stats summarizes a cache's contents.
type Stats struct {
	Backend  string // "file", "redis" or "none"
	Location string // Directory or server address
	Entries  int
	Bytes    int64 // Zero when the backend cannot report sizes
}

// GraphKey returns the cache key for an input document with the given hash.
func GraphKey(inputHash string) string {
	return "graph:" + inputHash + ":" + GraphFormat
}
