package routing

import "github.com/provenlabs/origintrace/pkg/diagram"

// BuildIndex builds a lookup from node ID to its owning cluster.
//
// Membership is single-owner: if a node is listed by more than one cluster,
// the first-registered cluster wins and later claims are ignored. Duplicate
// claims are reported by errors.ValidateDiagram rather than here. Nodes
// absent from every cluster have no entry, which RouteEdge treats as
// same-cluster routing (a plain Bézier).
//
// The returned pointers alias the input slice; clusters must not be mutated
// while the index is in use.
func BuildIndex(clusters []diagram.Cluster) map[string]*diagram.Cluster {
	index := make(map[string]*diagram.Cluster)
	for i := range clusters {
		c := &clusters[i]
		for _, nodeID := range c.NodeIDs {
			if _, claimed := index[nodeID]; claimed {
				continue
			}
			index[nodeID] = c
		}
	}
	return index
}
