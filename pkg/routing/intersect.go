package routing

import (
	"cmp"
	"slices"

	"github.com/provenlabs/origintrace/pkg/diagram"
)

// Intersects reports whether any segment of one waypoint sequence crosses
// any segment of another. Endpoint touching does not count as a crossing.
//
// This is a diagnostic for validating a routed layout; the router never
// reroutes automatically based on it.
func Intersects(pathA, pathB []diagram.Position) bool {
	for i := 0; i+1 < len(pathA); i++ {
		for j := 0; j+1 < len(pathB); j++ {
			if segmentsIntersect(pathA[i], pathA[i+1], pathB[j], pathB[j+1]) {
				return true
			}
		}
	}
	return false
}

// Crossings counts intersecting path pairs in a routed result.
// Pairs are visited in sorted edge-ID order so the count is deterministic.
func Crossings(paths map[string]diagram.EdgePath) int {
	ids := make([]string, 0, len(paths))
	for id := range paths {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b string) int { return cmp.Compare(a, b) })

	count := 0
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if Intersects(paths[ids[i]].Waypoints, paths[ids[j]].Waypoints) {
				count++
			}
		}
	}
	return count
}

// segmentsIntersect applies the determinant-based parametric test to
// segments (a1,a2) and (b1,b2). Parallel or collinear segments never
// intersect under this test, and both parameters must fall strictly inside
// (0,1).
func segmentsIntersect(a1, a2, b1, b2 diagram.Position) bool {
	det := (a2.X-a1.X)*(b2.Y-b1.Y) - (a2.Y-a1.Y)*(b2.X-b1.X)
	if det == 0 {
		return false
	}

	lambda := ((b2.Y-b1.Y)*(b2.X-a1.X) + (b1.X-b2.X)*(b2.Y-a1.Y)) / det
	gamma := ((a1.Y-a2.Y)*(b2.X-a1.X) + (a2.X-a1.X)*(b2.Y-a1.Y)) / det

	return lambda > 0 && lambda < 1 && gamma > 0 && gamma < 1
}
