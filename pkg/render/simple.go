package render

import (
	"bytes"
	"fmt"
)

const (
	clusterRadius = 8.0
	nodeRadius    = 4.0
	edgeWidth     = 1.5
)

// kindFills maps semantic cluster kinds to fill colors. Unknown kinds
// fall back to neutral grey.
var kindFills = map[string]string{
	"claim":          "#fde8e8",
	"sources":        "#e8f0fd",
	"belief-drivers": "#e8fde9",
	"evolution":      "#fdf6e8",
}

var kindStrokes = map[string]string{
	"claim":          "#c0392b",
	"sources":        "#2b5cc0",
	"belief-drivers": "#2bc048",
	"evolution":      "#c09a2b",
}

// Simple is the default rendering style: flat cluster rectangles,
// filled node dots, and stroked edge curves with an arrowhead marker.
type Simple struct{}

func (Simple) RenderDefs(buf *bytes.Buffer) {
	buf.WriteString("  <defs>\n")
	buf.WriteString(`    <marker id="arrow" viewBox="0 0 10 10" refX="9" refY="5" markerWidth="7" markerHeight="7" orient="auto-start-reverse">` + "\n")
	buf.WriteString(`      <path d="M 0 0 L 10 5 L 0 10 z" fill="#555"/>` + "\n")
	buf.WriteString("    </marker>\n")
	buf.WriteString("  </defs>\n")
}

func (Simple) RenderCluster(buf *bytes.Buffer, c ClusterBox) {
	fill, ok := kindFills[c.Kind]
	if !ok {
		fill = "#f2f2f2"
	}
	stroke, ok := kindStrokes[c.Kind]
	if !ok {
		stroke = "#999"
	}
	fmt.Fprintf(buf,
		`  <rect id="cluster-%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="%.1f" fill="%s" stroke="%s" stroke-width="1"/>`+"\n",
		xmlEscape(c.ID), c.X, c.Y, c.W, c.H, clusterRadius, fill, stroke)
	fmt.Fprintf(buf,
		`  <text x="%.1f" y="%.1f" font-family="sans-serif" font-size="12" fill="%s">%s</text>`+"\n",
		c.X+8, c.Y+16, stroke, xmlEscape(c.ID))
}

func (Simple) RenderNode(buf *bytes.Buffer, n NodeDot) {
	fmt.Fprintf(buf,
		`  <circle id="node-%s" cx="%.1f" cy="%.1f" r="%.1f" fill="#444"/>`+"\n",
		xmlEscape(n.ID), n.X, n.Y, nodeRadius)
}

func (Simple) RenderEdge(buf *bytes.Buffer, e EdgeCurve) {
	fmt.Fprintf(buf,
		`  <path id="edge-%s" d="%s" fill="none" stroke="#555" stroke-width="%.1f" marker-end="url(#arrow)"/>`+"\n",
		xmlEscape(e.ID), e.Path, edgeWidth)
}

func xmlEscape(s string) string {
	var buf bytes.Buffer
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}
