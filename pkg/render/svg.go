package render

import (
	"bytes"
	"cmp"
	"fmt"
	"slices"

	"github.com/provenlabs/origintrace/pkg/diagram"
)

// svgMargin pads the viewBox around the diagram bounds so strokes and
// markers at the extremes are not clipped.
const svgMargin = 60.0

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style     Style
	showNodes bool
}

func WithStyle(s Style) SVGOption { return func(r *svgRenderer) { r.style = s } }
func WithNodes() SVGOption        { return func(r *svgRenderer) { r.showNodes = true } }

// RenderSVG renders a diagram and its routed edge paths to a standalone
// SVG document. Output is deterministic: clusters, nodes, and edges are
// emitted in sorted ID order.
func RenderSVG(d diagram.Diagram, paths map[string]diagram.EdgePath, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	boxes := buildClusterBoxes(d)
	slices.SortFunc(boxes, func(a, b ClusterBox) int {
		return cmp.Compare(a.ID, b.ID)
	})

	curves := buildEdgeCurves(paths)
	slices.SortFunc(curves, func(a, b EdgeCurve) int {
		return cmp.Compare(a.ID, b.ID)
	})

	minX, minY, maxX, maxY := d.Bounds()
	vbX := minX - svgMargin
	vbY := minY - svgMargin
	vbW := (maxX - minX) + 2*svgMargin
	vbH := (maxY - minY) + 2*svgMargin

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%.1f %.1f %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		vbX, vbY, vbW, vbH, vbW, vbH)

	r.style.RenderDefs(&buf)
	renderContent(&buf, &r, d, boxes, curves)

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{style: Simple{}}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func renderContent(buf *bytes.Buffer, r *svgRenderer, d diagram.Diagram, boxes []ClusterBox, curves []EdgeCurve) {
	for _, b := range boxes {
		r.style.RenderCluster(buf, b)
	}
	for _, c := range curves {
		r.style.RenderEdge(buf, c)
	}
	if r.showNodes {
		for _, n := range buildNodeDots(d) {
			r.style.RenderNode(buf, n)
		}
	}
}

func buildClusterBoxes(d diagram.Diagram) []ClusterBox {
	boxes := make([]ClusterBox, 0, len(d.Clusters))
	for _, c := range d.Clusters {
		boxes = append(boxes, ClusterBox{
			ID:   c.ID,
			Kind: c.Kind,
			X:    c.Left(), Y: c.Top(),
			W: c.Width, H: c.Height,
		})
	}
	return boxes
}

func buildNodeDots(d diagram.Diagram) []NodeDot {
	ids := make([]string, 0, len(d.Positions))
	for id := range d.Positions {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	dots := make([]NodeDot, 0, len(ids))
	for _, id := range ids {
		p := d.Positions[id]
		dots = append(dots, NodeDot{ID: id, X: p.X, Y: p.Y})
	}
	return dots
}

func buildEdgeCurves(paths map[string]diagram.EdgePath) []EdgeCurve {
	curves := make([]EdgeCurve, 0, len(paths))
	for id, p := range paths {
		if p.Path == "" {
			continue
		}
		curves = append(curves, EdgeCurve{ID: id, Path: p.Path})
	}
	return curves
}
