package tree

import (
	"errors"
	"io"
	"log/slog"
)

// ErrParentNotFound is returned by Insert when the named parent does not
// exist in the tree. The tree is left unchanged.
var ErrParentNotFound = errors.New("parent not found")

// Node is a single named point in the topology. Children is ordered; the
// order has no topological meaning but is preserved stably.
type Node struct {
	Name     string
	Children []*Node
}

// clone deep-copies the node and everything beneath it.
func (n *Node) clone() *Node {
	c := &Node{Name: n.Name}
	if len(n.Children) > 0 {
		c.Children = make([]*Node, len(n.Children))
		for i, ch := range n.Children {
			c.Children[i] = ch.clone()
		}
	}
	return c
}

// Tree is a forest of Nodes under an implicit, unnamed root.
type Tree struct {
	roots  []*Node
	logger *slog.Logger
}

// Option configures a Tree.
type Option func(*Tree)

// WithLogger sets a structured logger for diagnostic reporting.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Tree) {
		t.logger = logger
	}
}

// New creates an empty tree.
func New(opts ...Option) *Tree {
	t := &Tree{}
	for _, opt := range opts {
		opt(t)
	}
	if t.logger == nil {
		t.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return t
}

// Import creates a tree that takes ownership of an existing node graph
// without copying it. The caller transfers the structure; keeping outside
// references to the nodes and mutating them bypasses the tree's contract,
// and the caller owns the aliasing consequences.
func Import(roots ...*Node) *Tree {
	t := New()
	t.roots = roots
	return t
}

// Clone creates an independent deep copy of the tree. No nodes are shared
// with the source; mutating either tree afterwards does not affect the other.
func (t *Tree) Clone() *Tree {
	c := New(WithLogger(t.logger))
	c.roots = make([]*Node, len(t.roots))
	for i, r := range t.roots {
		c.roots[i] = r.clone()
	}
	return c
}

// level returns the child sequence a search or replay starts from: the
// top-level roots for a nil start, otherwise the start node's children.
func (t *Tree) level(start *Node) []*Node {
	if start == nil {
		return t.roots
	}
	return start.Children
}

// Insert appends a new child named name under the given parent. An empty
// parent targets the implicit root. If sub is non-nil it becomes the new
// child (renamed to name), so a previously detached subtree can be grafted
// back in one step. Returns the inserted node so the caller can keep
// building on it.
//
// Name uniqueness is not checked here; that is the linknet layer's job.
func (t *Tree) Insert(parent, name string, sub *Node) (*Node, error) {
	node := sub
	if node == nil {
		node = &Node{Name: name}
	} else {
		node.Name = name
	}

	if parent == "" {
		t.roots = append(t.roots, node)
		return node, nil
	}

	p, ok := t.Subtree(parent, nil)
	if !ok {
		t.logger.Warn("insert: parent not found", "parent", parent, "name", name)
		return nil, ErrParentNotFound
	}
	p.Children = append(p.Children, node)
	return node, nil
}

// Subtree returns the subtree rooted at the first node named name,
// discovered by the same breadth-first search as ResolvePositionPath.
// A nil start searches the whole tree.
func (t *Tree) Subtree(name string, start *Node) (*Node, bool) {
	node, _, ok := t.search(name, start)
	return node, ok
}

// Remove detaches the named node and everything beneath it from its
// parent's child sequence and returns the detached subtree. Reports false
// if the name does not exist under start; the tree is left unchanged.
func (t *Tree) Remove(name string, start *Node) (*Node, bool) {
	_, pos, ok := t.search(name, start)
	if !ok {
		t.logger.Debug("remove: name not found", "name", name)
		return nil, false
	}

	last := pos[len(pos)-1]
	if len(pos) == 1 {
		if start == nil {
			n := t.roots[last]
			t.roots = append(t.roots[:last], t.roots[last+1:]...)
			return n, true
		}
		n := start.Children[last]
		start.Children = append(start.Children[:last], start.Children[last+1:]...)
		return n, true
	}

	parent, ok := t.nodeAt(pos[:len(pos)-1], start)
	if !ok {
		return nil, false
	}
	n := parent.Children[last]
	parent.Children = append(parent.Children[:last], parent.Children[last+1:]...)
	return n, true
}

// DescendantNames returns the name of every node strictly beneath start, in
// pre-order. A nil start enumerates the whole tree. Under the uniqueness
// invariant the result contains no duplicates.
func (t *Tree) DescendantNames(start *Node) []string {
	var names []string

	// Iterative pre-order: push children right-to-left so the leftmost
	// child is visited first.
	stack := make([]*Node, 0, len(t.level(start)))
	for i := len(t.level(start)) - 1; i >= 0; i-- {
		stack = append(stack, t.level(start)[i])
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		names = append(names, n.Name)
		for i := len(n.Children) - 1; i >= 0; i-- {
			stack = append(stack, n.Children[i])
		}
	}
	return names
}

// DescendantNamesOf is the name-addressed form of DescendantNames. Reports
// false if name does not exist in the tree.
func (t *Tree) DescendantNamesOf(name string) ([]string, bool) {
	n, ok := t.Subtree(name, nil)
	if !ok {
		return nil, false
	}
	return t.DescendantNames(n), true
}
