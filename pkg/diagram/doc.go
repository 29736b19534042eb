// Package diagram defines the data model for origin-tracing diagrams.
//
// A diagram bundles the inputs of one routing pass: resolved node positions,
// rectangular clusters of semantically related nodes (the claim, its sources,
// belief drivers, and evolution steps), and the directed edges connecting
// them. The routing engine in pkg/routing consumes a Diagram and produces
// EdgePath values; this package only owns the types and their JSON
// serialization.
//
// The format is human-readable and designed for round-trip fidelity:
// export → re-import produces identical results.
package diagram
