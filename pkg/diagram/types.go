package diagram

import "math"

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Cluster kinds produced by the upstream content-analysis phase.
// The router treats kinds as opaque labels; they only matter for styling.
const (
	KindClaim         = "claim"
	KindSources       = "sources"
	KindBeliefDrivers = "belief-drivers"
	KindEvolution     = "evolution"
)

// =============================================================================
// Position - Point in Diagram Space
// =============================================================================

// Position is an immutable point in diagram space.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// DistanceTo returns the Euclidean distance between two positions.
func (p Position) DistanceTo(q Position) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// =============================================================================
// Cluster - Rectangular Node Grouping
// =============================================================================

// Cluster is a rectangular grouping of semantically related nodes with a
// center point and extent. Clusters are read-only during routing.
type Cluster struct {
	ID      string   `json:"id"`
	Kind    string   `json:"kind,omitempty"`
	CenterX float64  `json:"center_x"`
	CenterY float64  `json:"center_y"`
	Width   float64  `json:"width"`
	Height  float64  `json:"height"`
	NodeIDs []string `json:"node_ids"`
}

// Left returns the x coordinate of the cluster's left boundary.
func (c *Cluster) Left() float64 { return c.CenterX - c.Width/2 }

// Right returns the x coordinate of the cluster's right boundary.
func (c *Cluster) Right() float64 { return c.CenterX + c.Width/2 }

// Top returns the y coordinate of the cluster's top boundary.
func (c *Cluster) Top() float64 { return c.CenterY - c.Height/2 }

// Bottom returns the y coordinate of the cluster's bottom boundary.
func (c *Cluster) Bottom() float64 { return c.CenterY + c.Height/2 }

// Contains reports whether the cluster claims the given node.
func (c *Cluster) Contains(nodeID string) bool {
	for _, id := range c.NodeIDs {
		if id == nodeID {
			return true
		}
	}
	return false
}

// =============================================================================
// Edge - Directed Connection
// =============================================================================

// Edge is a directed connection between two nodes, owned by the upstream
// graph model. Read-only input to routing.
type Edge struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`
}

// =============================================================================
// EdgePath - Routed Output
// =============================================================================

// EdgePath is the routed geometry for a single edge: an SVG-compatible path
// command string plus the ordered waypoint sequence it was built from.
// One EdgePath is produced per successfully routed edge and discarded
// whenever node positions or cluster assignment change.
type EdgePath struct {
	ID        string     `json:"id"`
	Path      string     `json:"path"`
	Waypoints []Position `json:"waypoints"`
}

// =============================================================================
// Diagram - Routing Input
// =============================================================================

// Diagram bundles the inputs of one routing pass: resolved node positions,
// cluster assignments, and the edges to route. All fields are produced by
// the upstream node-placement/clustering collaborator.
type Diagram struct {
	Positions map[string]Position `json:"positions"`
	Clusters  []Cluster           `json:"clusters"`
	Edges     []Edge              `json:"edges"`
}

// Bounds returns the bounding box of all cluster rectangles and node
// positions as (minX, minY, maxX, maxY). A diagram without content
// returns a zero box.
func (d *Diagram) Bounds() (minX, minY, maxX, maxY float64) {
	first := true
	grow := func(x, y float64) {
		if first {
			minX, minY, maxX, maxY = x, y, x, y
			first = false
			return
		}
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
	}
	for i := range d.Clusters {
		c := &d.Clusters[i]
		grow(c.Left(), c.Top())
		grow(c.Right(), c.Bottom())
	}
	for _, p := range d.Positions {
		grow(p.X, p.Y)
	}
	return minX, minY, maxX, maxY
}
