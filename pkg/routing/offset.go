package routing

import "github.com/provenlabs/origintrace/pkg/diagram"

// ComputeOffset returns the perpendicular offset for an edge about to be
// routed, based on the paths already emitted in this pass.
//
// An edge counts as parallel to a predecessor when its source lies within
// ParallelThreshold of the predecessor's first waypoint AND its target lies
// within ParallelThreshold of the predecessor's last waypoint. Each parallel
// predecessor adds one OffsetStep, so the first edge of a pass always gets 0
// and the (k+1)-th edge of a bundle gets k·OffsetStep.
//
// The result depends on how many parallel edges were routed before this one;
// callers must process edges in a stable order for reproducible output.
func ComputeOffset(edgeID string, existing []diagram.EdgePath, source, target diagram.Position, cfg Config) float64 {
	parallel := 0
	for _, prev := range existing {
		if prev.ID == edgeID || len(prev.Waypoints) == 0 {
			continue
		}
		first := prev.Waypoints[0]
		last := prev.Waypoints[len(prev.Waypoints)-1]
		if source.DistanceTo(first) < cfg.ParallelThreshold && target.DistanceTo(last) < cfg.ParallelThreshold {
			parallel++
		}
	}
	return cfg.OffsetStep * float64(parallel)
}
