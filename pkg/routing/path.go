package routing

import (
	"math"
	"strconv"
	"strings"

	"github.com/provenlabs/origintrace/pkg/diagram"
)

// ToPath converts an ordered waypoint sequence into a smooth SVG path string.
//
// The path starts with a move to the first waypoint. The terminal segment is
// emitted as a soft cubic curve whose control points collapse onto the
// segment midpoint. Interior segments are classified by dominant axis
// (|dx| > |dy| means horizontal) and drawn as a line to the axis-aligned
// corner followed by a quadratic curve through it, rounding right-angle
// turns instead of leaving sharp corners.
//
// Fewer than two waypoints, or waypoints that all collapse onto a single
// point, produce an empty string; callers treat "" as nothing to render,
// not as an error.
func ToPath(waypoints []diagram.Position) string {
	if len(waypoints) < 2 || allCoincident(waypoints) {
		return ""
	}

	var b strings.Builder
	b.WriteString("M ")
	writePoint(&b, waypoints[0])

	for i := 1; i < len(waypoints); i++ {
		prev, cur := waypoints[i-1], waypoints[i]

		if i == len(waypoints)-1 {
			mid := diagram.Position{X: (prev.X + cur.X) / 2, Y: (prev.Y + cur.Y) / 2}
			b.WriteString(" C ")
			writePoint(&b, mid)
			b.WriteByte(' ')
			writePoint(&b, mid)
			b.WriteByte(' ')
			writePoint(&b, cur)
			continue
		}

		corner := cornerFor(prev, cur)
		b.WriteString(" L ")
		writePoint(&b, corner)
		b.WriteString(" Q ")
		writePoint(&b, corner)
		b.WriteByte(' ')
		writePoint(&b, cur)
	}

	return b.String()
}

// allCoincident reports whether every waypoint equals the first, i.e. the
// path has no extent to draw.
func allCoincident(waypoints []diagram.Position) bool {
	for _, p := range waypoints[1:] {
		if p != waypoints[0] {
			return false
		}
	}
	return true
}

// cornerFor picks the axis-aligned intermediate point between prev and cur.
func cornerFor(prev, cur diagram.Position) diagram.Position {
	if math.Abs(cur.X-prev.X) > math.Abs(cur.Y-prev.Y) {
		return diagram.Position{X: cur.X, Y: prev.Y}
	}
	return diagram.Position{X: prev.X, Y: cur.Y}
}

func writePoint(b *strings.Builder, p diagram.Position) {
	b.WriteString(fmtCoord(p.X))
	b.WriteByte(',')
	b.WriteString(fmtCoord(p.Y))
}

// fmtCoord formats a coordinate without trailing zeros, so whole numbers
// stay whole ("50" rather than "50.000000").
func fmtCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
