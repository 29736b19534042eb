package routing

import (
	"strings"

	"github.com/provenlabs/origintrace/pkg/diagram"
)

// RouteEdge computes the path for a single edge from its endpoint positions
// and cluster memberships.
//
// When both endpoints live in the same cluster, or either cluster is unknown,
// the edge is drawn as a cubic Bézier whose control points sit at a
// horizontal offset of dx·curvature from each endpoint. The returned
// waypoints are exactly [source, target]; the curve shape is encoded only in
// the path string. Coincident endpoints yield an empty path, since there is
// no extent to draw.
//
// When the clusters differ, the edge follows an orthogonal waypoint chain:
// it exits the source cluster at Clearance past its right boundary on the
// source's vertical level (plus offset), crosses to the target side via a
// horizontal midpoint and a vertical drop to the target's level (plus
// offset), enters at Clearance before the target cluster's left boundary,
// and ends at the target. The offset keeps parallel edges on distinct levels.
func RouteEdge(source, target diagram.Position, srcCluster, dstCluster *diagram.Cluster, offset float64, cfg Config) (string, []diagram.Position) {
	if sameCluster(srcCluster, dstCluster) {
		if source == target {
			return "", []diagram.Position{source, target}
		}
		return bezierPath(source, target, cfg.curvature()), []diagram.Position{source, target}
	}
	waypoints := orthogonalWaypoints(source, target, srcCluster, dstCluster, offset, cfg.Clearance)
	return ToPath(waypoints), waypoints
}

// sameCluster reports whether two memberships select Bézier routing.
// A missing cluster on either side falls back to the same-cluster strategy.
func sameCluster(a, b *diagram.Cluster) bool {
	if a == nil || b == nil {
		return true
	}
	return a.ID == b.ID
}

// bezierPath builds a cubic Bézier between two points with horizontally
// offset control points.
func bezierPath(source, target diagram.Position, curvature float64) string {
	dx := target.X - source.X
	c1 := diagram.Position{X: source.X + dx*curvature, Y: source.Y}
	c2 := diagram.Position{X: target.X - dx*curvature, Y: target.Y}

	var b strings.Builder
	b.WriteString("M ")
	writePoint(&b, source)
	b.WriteString(" C ")
	writePoint(&b, c1)
	b.WriteByte(' ')
	writePoint(&b, c2)
	b.WriteByte(' ')
	writePoint(&b, target)
	return b.String()
}

// orthogonalWaypoints builds the cross-cluster waypoint chain.
func orthogonalWaypoints(source, target diagram.Position, srcCluster, dstCluster *diagram.Cluster, offset, clearance float64) []diagram.Position {
	waypoints := []diagram.Position{source}
	currentY := source.Y

	if srcCluster != nil {
		exitX := srcCluster.Right() + clearance
		currentY = source.Y + offset
		waypoints = append(waypoints, diagram.Position{X: exitX, Y: currentY})
	}

	if dstCluster != nil {
		enterX := dstCluster.Left() - clearance
		exitX := waypoints[len(waypoints)-1].X
		midX := (exitX + enterX) / 2
		targetY := target.Y + offset

		waypoints = append(waypoints,
			diagram.Position{X: midX, Y: currentY},
			diagram.Position{X: midX, Y: targetY},
			diagram.Position{X: enterX, Y: targetY},
		)
	}

	return append(waypoints, target)
}
