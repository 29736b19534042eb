package errors

import (
	"github.com/provenlabs/origintrace/pkg/diagram"
)

// Issue is a single diagram consistency finding.
type Issue struct {
	Code    Code   // What kind of problem was found
	Subject string // The cluster, node, or edge ID involved
	Message string // Human-readable description
}

// ValidationResult aggregates the findings of one diagram validation.
// Findings are split by severity: Errors make routing unreliable and should
// stop a pass; Warnings are resolved deterministically by the router
// (first-registered cluster wins, positionless edges are dropped and
// reported) but usually indicate an upstream bug.
type ValidationResult struct {
	Errors   []Issue
	Warnings []Issue
}

// OK reports whether validation found no errors. Warnings do not count.
func (r ValidationResult) OK() bool { return len(r.Errors) == 0 }

// Err converts the result to an error, or nil if validation passed.
// Only the first error is carried; the full list stays on the result.
func (r ValidationResult) Err() error {
	if r.OK() {
		return nil
	}
	first := r.Errors[0]
	return New(first.Code, "%s (%d issues total)", first.Message, len(r.Errors))
}

// ValidateDiagram checks a diagram for conditions the router cannot repair
// and for ambiguities it resolves silently.
//
// Errors:
//   - cluster with non-positive width or height
//   - duplicate cluster IDs
//   - duplicate edge IDs
//
// Warnings:
//   - node claimed by more than one cluster (router keeps the first)
//   - edge endpoint without a resolved position (router drops and reports)
func ValidateDiagram(d diagram.Diagram) ValidationResult {
	var result ValidationResult

	seenClusters := make(map[string]bool)
	owner := make(map[string]string)
	for _, c := range d.Clusters {
		if seenClusters[c.ID] {
			result.Errors = append(result.Errors, Issue{
				Code:    ErrCodeInvalidCluster,
				Subject: c.ID,
				Message: "duplicate cluster id " + c.ID,
			})
		}
		seenClusters[c.ID] = true

		if c.Width <= 0 || c.Height <= 0 {
			result.Errors = append(result.Errors, Issue{
				Code:    ErrCodeInvalidCluster,
				Subject: c.ID,
				Message: "cluster " + c.ID + " has non-positive extent",
			})
		}

		for _, nodeID := range c.NodeIDs {
			if prev, claimed := owner[nodeID]; claimed {
				result.Warnings = append(result.Warnings, Issue{
					Code:    ErrCodeDuplicateMembership,
					Subject: nodeID,
					Message: "node " + nodeID + " claimed by clusters " + prev + " and " + c.ID + "; first wins",
				})
				continue
			}
			owner[nodeID] = c.ID
		}
	}

	seenEdges := make(map[string]bool)
	for _, e := range d.Edges {
		if seenEdges[e.ID] {
			result.Errors = append(result.Errors, Issue{
				Code:    ErrCodeInvalidEdge,
				Subject: e.ID,
				Message: "duplicate edge id " + e.ID,
			})
		}
		seenEdges[e.ID] = true

		for _, endpoint := range []string{e.Source, e.Target} {
			if _, ok := d.Positions[endpoint]; !ok {
				result.Warnings = append(result.Warnings, Issue{
					Code:    ErrCodeMissingPosition,
					Subject: e.ID,
					Message: "edge " + e.ID + " endpoint " + endpoint + " has no position; edge will be dropped",
				})
			}
		}
	}

	return result
}
