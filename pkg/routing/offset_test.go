package routing

import (
	"testing"

	"github.com/provenlabs/origintrace/pkg/diagram"
)

func TestComputeOffset_FirstEdge(t *testing.T) {
	offset := ComputeOffset("e1", nil, diagram.Position{X: 0, Y: 0}, diagram.Position{X: 100, Y: 0}, DefaultConfig())
	if offset != 0 {
		t.Errorf("offset = %v, want 0 for the first edge of a pass", offset)
	}
}

func TestComputeOffset_ParallelPredecessor(t *testing.T) {
	existing := []diagram.EdgePath{
		{
			ID:        "e1",
			Waypoints: []diagram.Position{{X: 0, Y: 0}, {X: 300, Y: 0}},
		},
	}

	// Endpoints within 100 units of the predecessor's ends.
	offset := ComputeOffset("e2", existing, diagram.Position{X: 20, Y: 30}, diagram.Position{X: 320, Y: 10}, DefaultConfig())
	if offset != 25 {
		t.Errorf("offset = %v, want 25 for one parallel predecessor", offset)
	}
}

func TestComputeOffset_ScalesWithPredecessors(t *testing.T) {
	src := diagram.Position{X: 0, Y: 0}
	dst := diagram.Position{X: 300, Y: 0}

	var existing []diagram.EdgePath
	for _, id := range []string{"e1", "e2", "e3"} {
		existing = append(existing, diagram.EdgePath{
			ID:        id,
			Waypoints: []diagram.Position{src, dst},
		})
		want := 25 * float64(len(existing))
		got := ComputeOffset("next", existing, src, dst, DefaultConfig())
		if got != want {
			t.Errorf("after %d predecessors: offset = %v, want %v", len(existing), got, want)
		}
	}
}

func TestComputeOffset_RequiresBothEndpointsClose(t *testing.T) {
	existing := []diagram.EdgePath{
		{ID: "e1", Waypoints: []diagram.Position{{X: 0, Y: 0}, {X: 300, Y: 0}}},
	}
	cfg := DefaultConfig()

	tests := []struct {
		name     string
		src, dst diagram.Position
		want     float64
	}{
		{"far source", diagram.Position{X: 150, Y: 0}, diagram.Position{X: 310, Y: 0}, 0},
		{"far target", diagram.Position{X: 10, Y: 0}, diagram.Position{X: 500, Y: 0}, 0},
		{"both close", diagram.Position{X: 10, Y: 0}, diagram.Position{X: 310, Y: 0}, 25},
		{"threshold is exclusive", diagram.Position{X: 100, Y: 0}, diagram.Position{X: 300, Y: 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeOffset("e2", existing, tt.src, tt.dst, cfg); got != tt.want {
				t.Errorf("offset = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComputeOffset_IgnoresSelf(t *testing.T) {
	src := diagram.Position{X: 0, Y: 0}
	dst := diagram.Position{X: 300, Y: 0}
	existing := []diagram.EdgePath{
		{ID: "e1", Waypoints: []diagram.Position{src, dst}},
	}

	if got := ComputeOffset("e1", existing, src, dst, DefaultConfig()); got != 0 {
		t.Errorf("an edge must not count itself as a parallel predecessor, got %v", got)
	}
}
