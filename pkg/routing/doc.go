// Package routing computes collision-aware edge geometry for origin-tracing
// diagrams.
//
// Given node positions, cluster assignments, and directed edges, the router
// produces one EdgePath per edge: an SVG-compatible path command string plus
// the waypoint sequence it was built from. Edges inside a single cluster are
// drawn as smooth cubic Béziers; edges between clusters follow an orthogonal
// waypoint chain that exits the source cluster horizontally, travels at a
// distinct vertical level, and enters the target cluster horizontally, so
// paths do not cut through intervening cluster bodies.
//
// Edges whose endpoints sit close to an already-routed edge are nudged apart
// by an incremental perpendicular offset. This makes the result dependent on
// processing order: the router always walks edges in input order, so output
// is deterministic for identical input.
//
// All functions are pure and allocate their own state per pass; concurrent
// passes over independent diagrams need no coordination.
package routing
