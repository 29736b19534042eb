package cache

// ScopedKeyer wraps a Keyer with a prefix so separate diagrams or tenants
// get isolated cache namespaces.
//
// Example usage:
//
//	// Per-analysis keys
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "analysis:abc123:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// RouteKey generates a prefixed key for routed path sets.
func (k *ScopedKeyer) RouteKey(diagramHash string, opts RouteKeyOpts) string {
	return k.prefix + k.inner.RouteKey(diagramHash, opts)
}

// ArtifactKey generates a prefixed key for rendered artifacts.
func (k *ScopedKeyer) ArtifactKey(routeHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(routeHash, opts)
}
