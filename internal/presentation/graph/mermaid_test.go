package graph_test

import (
	"strings"
	"testing"

	"github.com/tbraz/linknet/internal/presentation/graph"
	"github.com/tbraz/linknet/pkg/tree"
)

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		roots    []*tree.Node
		overlay  *graph.Overlay
		contains []string
	}{
		{
			name: "Hub And Leaf Shapes",
			roots: []*tree.Node{
				{Name: "hubA", Children: []*tree.Node{{Name: "leafA"}}},
			},
			contains: []string{
				"graph TD",
				"hubA[\"hubA\"]",
				"leafA([\"leafA\"])",
				"root --> hubA",
				"hubA --> leafA",
			},
		},
		{
			name: "ID Sanitization",
			roots: []*tree.Node{
				{Name: "relay-01.east"},
			},
			contains: []string{
				"relay_01_east([\"relay-01.east\"])",
			},
		},
		{
			name: "Traced Overlay",
			roots: []*tree.Node{
				{Name: "hubA", Children: []*tree.Node{{Name: "leafA"}}},
			},
			overlay: &graph.Overlay{TracedPath: []string{"hubA", "leafA"}},
			contains: []string{
				"classDef traced",
				"class hubA traced;",
				"class leafA traced;",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := graph.GenerateMermaid(tc.roots, tc.overlay)
			for _, want := range tc.contains {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
		})
	}
}
