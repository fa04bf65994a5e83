package tree

import (
	"fmt"
	"strings"
)

// Snapshot produces the nested-mapping projection of the tree: each name
// maps to the mapping of its children, recursively. The projection is
// read-only; mutating the returned maps does not touch the tree.
func (t *Tree) Snapshot() map[string]any {
	return snapshotLevel(t.roots)
}

func snapshotLevel(nodes []*Node) map[string]any {
	m := make(map[string]any, len(nodes))
	for _, n := range nodes {
		m[n.Name] = snapshotLevel(n.Children)
	}
	return m
}

// Roots returns the flat listing of top-level (name, subtree) pairs. The
// slice is a copy; the nodes are not.
func (t *Tree) Roots() []*Node {
	out := make([]*Node, len(t.roots))
	copy(out, t.roots)
	return out
}

// Render produces a human-readable indented rendering of the whole tree,
// one node per line, two spaces per depth level, children in stored order.
func (t *Tree) Render() string {
	var sb strings.Builder
	for _, n := range t.roots {
		renderNode(&sb, n, 0)
	}
	return sb.String()
}

func renderNode(sb *strings.Builder, n *Node, depth int) {
	fmt.Fprintf(sb, "%s%s\n", strings.Repeat("  ", depth), n.Name)
	for _, ch := range n.Children {
		renderNode(sb, ch, depth+1)
	}
}
