// Package cache provides pluggable byte caches and cache key generation for
// the chart pipeline.
//
// Backends share the [Cache] interface: a file cache for CLI usage, Redis and
// MongoDB for server deployments, and a null cache that disables caching
// entirely. Keys are generated through a [Keyer] so the layout and artifact
// stages stay agnostic of key structure.
package cache

import (
	"context"
	"time"
)

// Default TTLs per pipeline stage. Layouts are pure functions of their inputs
// so they keep for a long time; rendered artifacts depend on styling knobs
// that change more often.
const (
	TTLLayout   = 7 * 24 * time.Hour
	TTLArtifact = 24 * time.Hour
)

// Cache is a byte store with per-entry TTL.
type Cache interface {
	// Get retrieves a value. The second return reports a hit; a miss is not
	// an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// LayoutKeyOpts are the inputs that change a computed layout.
type LayoutKeyOpts struct {
	Chart   string
	Order   string
	Offset  string
	Samples int
}

// ArtifactKeyOpts are the inputs that change a rendered artifact.
type ArtifactKeyOpts struct {
	Format string
	Style  string
	Curve  string
	Width  int
	Height int
}

// Keyer generates cache keys for the pipeline stages.
type Keyer interface {
	// LayoutKey generates a key for a computed layout given the hash of the
	// input series data.
	LayoutKey(dataHash string, opts LayoutKeyOpts) string

	// ArtifactKey generates a key for a rendered artifact given the hash of
	// the layout it renders.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer generates content-addressed keys of the form
// "stage:sha256(inputs)".
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// LayoutKey generates a key for a computed layout.
func (k *DefaultKeyer) LayoutKey(dataHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", dataHash, opts.Chart, opts.Order, opts.Offset, opts.Samples)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts.Format, opts.Style, opts.Curve, opts.Width, opts.Height)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
