// Package graph renders topology trees for external display surfaces.
package graph

import (
	"fmt"
	"strings"

	"github.com/tbraz/linknet/pkg/tree"
)

// Overlay contains dynamic state to highlight on the rendered topology.
type Overlay struct {
	// TracedPath is a hop path whose nodes should be emphasized,
	// typically the result of a Trace.
	TracedPath []string
}

// GenerateMermaid produces a Mermaid flowchart (graph TD) from the tree's
// top-level listing. Hubs (nodes with children) render as rectangles,
// leaves as stadium shapes; an implicit root circle anchors the top-level
// peers. Overlay styling highlights a traced hop path if provided.
func GenerateMermaid(roots []*tree.Node, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")
	sb.WriteString("    root((\"*\"))\n")

	for _, n := range roots {
		writeMermaidNode(&sb, "root", n)
	}

	if overlay != nil && len(overlay.TracedPath) > 0 {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef traced fill:#ffeb3b,stroke:#fbc02d,stroke-width:2px,color:#000;\n")
		for _, name := range overlay.TracedPath {
			sb.WriteString(fmt.Sprintf("    class %s traced;\n", sanitizeMermaidID(name)))
		}
	}

	return sb.String()
}

func writeMermaidNode(sb *strings.Builder, parentID string, n *tree.Node) {
	safeID := sanitizeMermaidID(n.Name)

	// Shape by role: hub vs leaf.
	opener, closer := "[", "]"
	if len(n.Children) == 0 {
		opener, closer = "([", "])"
	}

	fmt.Fprintf(sb, "    %s%s\"%s\"%s\n", safeID, opener, n.Name, closer)
	fmt.Fprintf(sb, "    %s --> %s\n", parentID, safeID)

	for _, ch := range n.Children {
		writeMermaidNode(sb, safeID, ch)
	}
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	return s
}
