// Package cache stores rendered artifacts keyed by document content and
// render options.
//
// Three backends implement [Cache]:
//
//   - [FileCache]: one JSON file per entry under a directory, used by the CLI
//   - [RedisCache]: shared cache for several server instances
//   - [NullCache]: stores nothing, used with --no-cache
//
// Keys come from a [Keyer]. The default keyer hashes the document digest
// together with every option that changes the output, so two requests share
// an entry only when they would produce identical bytes:
//
//	k := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "v1.2.0:")
//	key := k.ArtifactKey(cache.Hash(doc), cache.ArtifactKeyOpts{Format: "png", DPI: 192})
package cache

import (
	"context"
	"time"
)

// DefaultTTL is how long artifacts are kept when no TTL is configured.
const DefaultTTL = 24 * time.Hour

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the entry for key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	Close() error
}
