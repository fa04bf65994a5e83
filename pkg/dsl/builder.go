package dsl

import (
	"github.com/tbraz/linknet/pkg/tree"
)

// N constructs a node literal with the given children, in order.
func N(name string, children ...*tree.Node) *tree.Node {
	return &tree.Node{Name: name, Children: children}
}

// Builder accumulates top-level peers for a topology.
type Builder struct {
	roots []*tree.Node
}

// New creates an empty topology builder.
func New() *Builder {
	return &Builder{}
}

// Peer appends a top-level peer with an optional pre-built subtree beneath
// it. Returns the builder for chaining.
func (b *Builder) Peer(name string, children ...*tree.Node) *Builder {
	b.roots = append(b.roots, N(name, children...))
	return b
}

// Add grafts an already-built node literal at the top level.
func (b *Builder) Add(n *tree.Node) *Builder {
	b.roots = append(b.roots, n)
	return b
}

// Build compiles the accumulated literals into a Tree. The tree takes
// ownership of the node graph; the builder should not be reused afterwards.
func (b *Builder) Build() *tree.Tree {
	return tree.Import(b.roots...)
}
