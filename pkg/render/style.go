package render

import "bytes"

// Style defines the visual appearance for diagram rendering.
// Implementations control how clusters, nodes, and routed edges are drawn.
type Style interface {
	// RenderDefs writes SVG <defs> content (markers, filters, gradients).
	RenderDefs(buf *bytes.Buffer)
	// RenderCluster writes the SVG for a single cluster rectangle.
	RenderCluster(buf *bytes.Buffer, c ClusterBox)
	// RenderNode writes the SVG for a single node dot.
	RenderNode(buf *bytes.Buffer, n NodeDot)
	// RenderEdge writes the SVG for a routed edge path.
	RenderEdge(buf *bytes.Buffer, e EdgeCurve)
}

// ClusterBox contains all data needed to render a single cluster.
type ClusterBox struct {
	ID         string  // Cluster identifier
	Kind       string  // Semantic kind ("claim", "sources", ...)
	X, Y, W, H float64 // Top-left position and dimensions
}

// NodeDot contains positioning data for rendering a node.
type NodeDot struct {
	ID   string  // Node identifier
	X, Y float64 // Center coordinates
}

// EdgeCurve contains the routed geometry for rendering an edge.
type EdgeCurve struct {
	ID   string // Edge identifier
	Path string // SVG path command string produced by the router
}
