package routing

import "github.com/provenlabs/origintrace/pkg/diagram"

// =============================================================================
// Result - Output of One Routing Pass
// =============================================================================

// Result holds the output of one routing pass: the routed paths keyed by
// edge ID, and the IDs of edges that could not be routed because an endpoint
// had no resolved position. Dropped edges are reported instead of silently
// vanishing so callers and tests can assert on completeness.
type Result struct {
	Paths   map[string]diagram.EdgePath
	Dropped []string
}

// PathSet converts the result to its serialization format.
func (r Result) PathSet() diagram.PathSet {
	return diagram.PathSet{Paths: r.Paths, Dropped: r.Dropped}
}

// =============================================================================
// Routing Pass
// =============================================================================

// RouteAll routes every edge of a diagram in input order and returns the
// accumulated result.
//
// The pass is an explicit fold: each edge is routed against the list of
// paths already emitted, which feeds the parallel-edge offset for the edges
// that follow. No state escapes the call, so independent diagrams may be
// routed concurrently.
func RouteAll(d diagram.Diagram, cfg Config) Result {
	index := BuildIndex(d.Clusters)

	result := Result{Paths: make(map[string]diagram.EdgePath, len(d.Edges))}
	routed := make([]diagram.EdgePath, 0, len(d.Edges))

	for _, edge := range d.Edges {
		source, okS := d.Positions[edge.Source]
		target, okT := d.Positions[edge.Target]
		if !okS || !okT {
			result.Dropped = append(result.Dropped, edge.ID)
			continue
		}

		offset := ComputeOffset(edge.ID, routed, source, target, cfg)
		path, waypoints := RouteEdge(source, target, index[edge.Source], index[edge.Target], offset, cfg)

		ep := diagram.EdgePath{ID: edge.ID, Path: path, Waypoints: waypoints}
		result.Paths[edge.ID] = ep
		routed = append(routed, ep)
	}

	return result
}
