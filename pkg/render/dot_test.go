package render

import (
	"strings"
	"testing"

	"github.com/provenlabs/origintrace/pkg/diagram"
)

func TestToDOT(t *testing.T) {
	dot := ToDOT(testDiagram())

	if !strings.HasPrefix(dot, "digraph G {") {
		t.Errorf("ToDOT() should start with digraph header, got %q", dot[:min(30, len(dot))])
	}
	for _, want := range []string{
		`subgraph "cluster_claims"`,
		`subgraph "cluster_sources"`,
		`"claim-1";`,
		`"source-1";`,
		`"claim-1" -> "source-1";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q", want)
		}
	}
}

func TestToDOTDuplicateMembership(t *testing.T) {
	d := diagram.Diagram{
		Clusters: []diagram.Cluster{
			{ID: "first", Width: 10, Height: 10, NodeIDs: []string{"n1"}},
			{ID: "second", Width: 10, Height: 10, NodeIDs: []string{"n1"}},
		},
	}
	dot := ToDOT(d)

	if got := strings.Count(dot, `"n1";`); got != 1 {
		t.Errorf("node declared %d times, want 1", got)
	}
	firstIdx := strings.Index(dot, `subgraph "cluster_first"`)
	nodeIdx := strings.Index(dot, `"n1";`)
	secondIdx := strings.Index(dot, `subgraph "cluster_second"`)
	if !(firstIdx < nodeIdx && nodeIdx < secondIdx) {
		t.Error("duplicate node should belong to the first-declared cluster")
	}
}

func TestToDOTEmptyDiagram(t *testing.T) {
	dot := ToDOT(diagram.Diagram{})
	if !strings.HasPrefix(dot, "digraph G {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("ToDOT() on empty diagram should still be a valid graph, got %q", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.50 50.25" something="else"><g/></svg>`)
	out := string(normalizeViewBox(in))

	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.50 50.25" width="100" height="50">`
	if !strings.HasPrefix(out, want) {
		t.Errorf("normalizeViewBox() = %q, want prefix %q", out, want)
	}
}

func TestNormalizeViewBoxNoMatch(t *testing.T) {
	in := []byte(`<svg><g/></svg>`)
	if got := normalizeViewBox(in); string(got) != string(in) {
		t.Errorf("normalizeViewBox() should pass through input without a viewBox, got %q", got)
	}
}
