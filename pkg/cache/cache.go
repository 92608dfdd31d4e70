// Package cache stores rendered figure artifacts between runs.
//
// Rendering a publication figure at print resolution is slow compared to
// reading a file, and figure descriptions change far less often than they
// are rendered. The pipeline therefore keys every artifact by a hash of the
// figure description plus the rendering options and keeps it in a [Cache].
//
// # Implementations
//
//   - [FileCache]: JSON entries under a directory, used by the CLI
//   - [Disabled]: keeps nothing, used with --no-cache
//
// # Keys
//
// [Keyer] builds keys; [DefaultKeyer] hashes its inputs with SHA-256 so
// keys are fixed-length and safe as file names.
package cache

import (
	"context"
	"time"
)

// DefaultArtifactTTL is how long rendered artifacts stay valid.
const DefaultArtifactTTL = 7 * 24 * time.Hour

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the stored value and whether it was found. Expired or
	// unreadable entries are reported as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A non-positive ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// ArtifactKeyOpts are the rendering options that change an artifact.
type ArtifactKeyOpts struct {
	Format string  `json:"format"`
	DPI    float64 `json:"dpi,omitempty"`
	Style  string  `json:"style,omitempty"`
}

// Keyer builds cache keys.
type Keyer interface {
	// ArtifactKey returns the key of one rendered output of the figure
	// whose description hashes to figureHash.
	ArtifactKey(figureHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard [Keyer].
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ArtifactKey hashes the figure hash together with opts.
func (DefaultKeyer) ArtifactKey(figureHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", figureHash, opts)
}
