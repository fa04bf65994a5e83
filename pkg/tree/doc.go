/*
Package tree implements the rooted, labeled, unordered tree that models a
spanning-tree topology of linked peers.

A Tree holds a forest of named nodes under an implicit, unnamed root. Child
order carries no topological meaning but is kept stable so traversal,
rendering and position paths are reproducible.

Positions and names are two views of the same route. A Path is the sequence
of child indices needed to descend from a starting point to a node; resolving
it back yields the node names along the way. ResolvePositionPath discovers a
Path by breadth-first search; ResolveNamePath replays a known Path without
searching.

The tree does not enforce name uniqueness or acyclicity. Uniqueness is
checked one layer up (see the linknet package); acyclicity is assumed from
well-formed input. This is an intentional tradeoff: mutations stay cheap and
the breadth-first search stays correct regardless, because a name is never
visited twice.
*/
package tree
