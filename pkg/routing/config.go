package routing

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Visual styles for same-cluster curves.
const (
	StyleSmooth = "smooth"
	StyleTight  = "tight"
)

// Routing defaults.
const (
	// DefaultClearance is the horizontal distance past a cluster boundary at
	// which cross-cluster paths exit and enter.
	DefaultClearance = 40.0

	// DefaultOffsetStep is the vertical separation applied per parallel
	// predecessor edge.
	DefaultOffsetStep = 25.0

	// DefaultParallelThreshold is the endpoint distance below which two
	// edges are considered parallel.
	DefaultParallelThreshold = 100.0
)

// Curvature factors for same-cluster Bézier control points.
const (
	curvatureSmooth = 0.4
	curvatureTight  = 0.25
)

// =============================================================================
// Config - Routing Tunables
// =============================================================================

// Config holds the tunable parameters of a routing pass.
// The zero value is not usable; start from DefaultConfig.
type Config struct {
	// Clearance is the horizontal gap between a cluster boundary and the
	// exit/entry waypoints of cross-cluster paths.
	Clearance float64

	// OffsetStep is the vertical offset added per parallel predecessor.
	OffsetStep float64

	// ParallelThreshold is the maximum endpoint distance for two edges to
	// count as parallel.
	ParallelThreshold float64

	// Style selects the same-cluster curve shape: StyleSmooth (default)
	// or StyleTight.
	Style string
}

// DefaultConfig returns the standard routing configuration.
func DefaultConfig() Config {
	return Config{
		Clearance:         DefaultClearance,
		OffsetStep:        DefaultOffsetStep,
		ParallelThreshold: DefaultParallelThreshold,
		Style:             StyleSmooth,
	}
}

// curvature maps the configured style to its Bézier control factor.
// Unknown styles fall back to smooth.
func (c Config) curvature() float64 {
	if c.Style == StyleTight {
		return curvatureTight
	}
	return curvatureSmooth
}
