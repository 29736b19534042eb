// Package render turns routed diagrams into visual output.
//
// The native renderer produces deterministic standalone SVG documents
// via [RenderSVG], with appearance controlled by pluggable [Style]
// implementations. For quick structural inspection without positional
// data, [ToDOT] exports the diagram as a Graphviz DOT graph which
// [RenderDOTSVG] and [RenderDOTPNG] rasterize.
package render
