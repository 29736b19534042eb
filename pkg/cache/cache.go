// Package cache provides content-addressed caching for routing results and
// rendered artifacts.
//
// A route result is a pure function of diagram content and routing options,
// so cache keys are derived from a SHA-256 hash of the serialized diagram
// plus the option set. Backends:
//   - FileCache: XDG cache directory, for CLI usage
//   - RedisCache: shared cache for multi-instance deployments
//   - NullCache: caching disabled
package cache

import (
	"context"
	"time"
)

// TTLs per key type.
const (
	// TTLRoute is how long routed path sets stay cached.
	TTLRoute = 7 * 24 * time.Hour

	// TTLArtifact is how long rendered artifacts (SVG, PNG, DOT) stay cached.
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is the storage interface shared by all backends.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// RouteKeyOpts are the routing options that participate in route cache keys.
// Two passes with the same diagram hash but different options must not
// collide.
type RouteKeyOpts struct {
	Clearance         float64 `json:"clearance"`
	OffsetStep        float64 `json:"offset_step"`
	ParallelThreshold float64 `json:"parallel_threshold"`
	Style             string  `json:"style"`
}

// ArtifactKeyOpts are the render options that participate in artifact cache keys.
type ArtifactKeyOpts struct {
	Format    string `json:"format"`
	Style     string `json:"style"`
	ShowNodes bool   `json:"show_nodes"`
}

// Keyer builds cache keys for the different cached value types.
type Keyer interface {
	// RouteKey builds the key for a routed path set.
	RouteKey(diagramHash string, opts RouteKeyOpts) string

	// ArtifactKey builds the key for a rendered artifact.
	ArtifactKey(routeHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard key scheme: a type prefix plus a hash of the
// content hash and options.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// RouteKey implements Keyer.
func (DefaultKeyer) RouteKey(diagramHash string, opts RouteKeyOpts) string {
	return hashKey("route", diagramHash, opts)
}

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(routeHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", routeHash, opts)
}
