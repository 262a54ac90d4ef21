// Package cache stores rendered chart artifacts so repeated renders of the
// same dataset, chart and parameters are served without drawing again.
//
// Three backends implement [Cache]:
//   - [FileCache]: one JSON file per entry, used by the CLI
//   - [RedisCache]: shared cache for multi-instance servers
//   - [NullCache]: disables caching
//
// Keys are built by a [Keyer] so that every caller derives the same key for
// the same request:
//
//	keyer := cache.NewDefaultKeyer()
//	key := keyer.ArtifactKey(cache.Hash(datasetJSON), cache.ArtifactKeyOpts{
//	    Chart:  "goal-scorers",
//	    Format: "svg",
//	})
package cache

import (
	"context"
	"time"
)

// DefaultTTL is how long artifacts stay cached when no TTL is configured.
const DefaultTTL = 7 * 24 * time.Hour

// Cache is a byte-oriented key/value store with expiration.
type Cache interface {
	// Get returns the value stored under key. The boolean is false on a miss;
	// a miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer derives cache keys.
type Keyer interface {
	// ArtifactKey returns the key of a rendered artifact.
	ArtifactKey(datasetHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts are the render parameters that change an artifact's bytes.
type ArtifactKeyOpts struct {
	Chart   string   `json:"chart"`
	Format  string   `json:"format"`
	Player  string   `json:"player,omitempty"`
	Month   int      `json:"month,omitempty"`
	Players []string `json:"players,omitempty"`
	Scale   float64  `json:"scale,omitempty"`

	// Theme is a fingerprint of the active theme.
	Theme string `json:"theme,omitempty"`
}

// DefaultKeyer builds unprefixed keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ArtifactKey returns "artifact:<chart>:<sha256>" so entries of one chart
// can be recognised in a key listing.
func (DefaultKeyer) ArtifactKey(datasetHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact:"+opts.Chart, datasetHash, opts)
}
