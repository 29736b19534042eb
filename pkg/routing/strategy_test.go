package routing

import (
	"strings"
	"testing"

	"github.com/provenlabs/origintrace/pkg/diagram"
)

func TestRouteEdge_SameCluster(t *testing.T) {
	cluster := &diagram.Cluster{ID: "claim", CenterX: 60, CenterY: 30, Width: 200, Height: 100}
	source := diagram.Position{X: 10, Y: 20}
	target := diagram.Position{X: 110, Y: 40}

	path, waypoints := RouteEdge(source, target, cluster, cluster, 0, DefaultConfig())

	// Waypoints are exactly [source, target]; the curve lives in the string.
	if len(waypoints) != 2 || waypoints[0] != source || waypoints[1] != target {
		t.Fatalf("waypoints = %v, want [source target]", waypoints)
	}
	if !strings.HasPrefix(path, "M 10,20") {
		t.Errorf("path should start at source, got %q", path)
	}
	if strings.Count(path, "C") != 1 {
		t.Errorf("path should contain exactly one C command, got %q", path)
	}
}

func TestRouteEdge_CoincidentEndpoints(t *testing.T) {
	cluster := &diagram.Cluster{ID: "claim", CenterX: 0, CenterY: 0, Width: 100, Height: 100}
	p := diagram.Position{X: 5, Y: 5}

	path, waypoints := RouteEdge(p, p, cluster, cluster, 0, DefaultConfig())

	if path != "" {
		t.Errorf("coincident endpoints should produce an empty path, got %q", path)
	}
	if len(waypoints) != 2 || waypoints[0] != p || waypoints[1] != p {
		t.Errorf("waypoints = %v, want [p p]", waypoints)
	}
}

func TestRouteEdge_SameClusterControlPoints(t *testing.T) {
	source := diagram.Position{X: 10, Y: 20}
	target := diagram.Position{X: 110, Y: 40}

	tests := []struct {
		style string
		want  string
	}{
		{StyleSmooth, "M 10,20 C 50,20 70,40 110,40"},
		{StyleTight, "M 10,20 C 35,20 85,40 110,40"},
	}

	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Style = tt.style
			path, _ := RouteEdge(source, target, nil, nil, 0, cfg)
			if path != tt.want {
				t.Errorf("path = %q, want %q", path, tt.want)
			}
		})
	}
}

func TestRouteEdge_MissingClusterFallsBackToBezier(t *testing.T) {
	cluster := &diagram.Cluster{ID: "sources", CenterX: 0, CenterY: 0, Width: 100, Height: 100}
	source := diagram.Position{X: 0, Y: 0}
	target := diagram.Position{X: 200, Y: 0}

	tests := []struct {
		name     string
		src, dst *diagram.Cluster
	}{
		{"both nil", nil, nil},
		{"source nil", nil, cluster},
		{"target nil", cluster, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, waypoints := RouteEdge(source, target, tt.src, tt.dst, 0, DefaultConfig())
			if len(waypoints) != 2 {
				t.Errorf("waypoints = %v, want Bézier endpoints only", waypoints)
			}
			if !strings.Contains(path, "C") {
				t.Errorf("path = %q, want a cubic curve", path)
			}
		})
	}
}

func TestRouteEdge_CrossCluster(t *testing.T) {
	srcCluster := &diagram.Cluster{ID: "claim", CenterX: 0, CenterY: 0, Width: 100, Height: 100}
	dstCluster := &diagram.Cluster{ID: "sources", CenterX: 400, CenterY: 0, Width: 100, Height: 100}
	source := diagram.Position{X: 50, Y: 0}
	target := diagram.Position{X: 350, Y: 0}

	_, waypoints := RouteEdge(source, target, srcCluster, dstCluster, 0, DefaultConfig())

	want := []diagram.Position{
		{X: 50, Y: 0},  // source
		{X: 90, Y: 0},  // exit: centerX + width/2 + clearance
		{X: 200, Y: 0}, // horizontal midpoint between exit and entry
		{X: 200, Y: 0}, // vertical transition to target level
		{X: 310, Y: 0}, // entry: centerX - width/2 - clearance
		{X: 350, Y: 0}, // target
	}

	if len(waypoints) != len(want) {
		t.Fatalf("waypoints = %v, want %v", waypoints, want)
	}
	for i := range want {
		if waypoints[i] != want[i] {
			t.Errorf("waypoint[%d] = %v, want %v", i, waypoints[i], want[i])
		}
	}
}

func TestRouteEdge_CrossClusterOffset(t *testing.T) {
	srcCluster := &diagram.Cluster{ID: "claim", CenterX: 0, CenterY: 0, Width: 100, Height: 100}
	dstCluster := &diagram.Cluster{ID: "sources", CenterX: 400, CenterY: 50, Width: 100, Height: 100}
	source := diagram.Position{X: 50, Y: 10}
	target := diagram.Position{X: 350, Y: 60}

	_, waypoints := RouteEdge(source, target, srcCluster, dstCluster, 25, DefaultConfig())

	// Exit leaves at source.y + offset; the chain descends to target.y + offset.
	if got := waypoints[1]; got.X != 90 || got.Y != 35 {
		t.Errorf("exit waypoint = %v, want (90,35)", got)
	}
	if got := waypoints[3]; got.Y != 85 {
		t.Errorf("vertical transition = %v, want y = target.y + offset", got)
	}
	if got := waypoints[4]; got.X != 310 || got.Y != 85 {
		t.Errorf("entry waypoint = %v, want (310,85)", got)
	}
	if got := waypoints[len(waypoints)-1]; got != target {
		t.Errorf("terminal waypoint = %v, want target %v", got, target)
	}
}

func TestRouteEdge_CrossClusterPathIsOrthogonal(t *testing.T) {
	srcCluster := &diagram.Cluster{ID: "claim", CenterX: 0, CenterY: 0, Width: 100, Height: 100}
	dstCluster := &diagram.Cluster{ID: "sources", CenterX: 400, CenterY: 0, Width: 100, Height: 100}

	path, _ := RouteEdge(diagram.Position{X: 50, Y: 0}, diagram.Position{X: 350, Y: 0}, srcCluster, dstCluster, 0, DefaultConfig())

	if !strings.HasPrefix(path, "M 50,0") {
		t.Errorf("path should start at source, got %q", path)
	}
	for _, cmd := range []string{"L", "Q", "C"} {
		if !strings.Contains(path, cmd) {
			t.Errorf("orthogonal path should contain %s commands, got %q", cmd, path)
		}
	}
}
