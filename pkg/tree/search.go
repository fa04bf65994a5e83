package tree

// Path locates a node by the child indices followed from a starting point.
// It stays valid only as long as the structure upstream of it is unchanged;
// any insert or remove closer to the root invalidates it.
type Path []int

// search runs the breadth-first discovery shared by Subtree,
// ResolvePositionPath and Trace. It visits the forest level by level,
// extending the parent's path with each child's position, and stops the
// instant the target name is discovered. A name is never enqueued twice, so
// the walk terminates after at most one visit per node even if duplicate
// names slipped in; the shallowest, leftmost match wins.
func (t *Tree) search(name string, start *Node) (*Node, Path, bool) {
	type item struct {
		node *Node
		path Path
	}

	level := t.level(start)
	queue := make([]item, 0, len(level))
	seen := make(map[string]bool, len(level))
	for i, n := range level {
		queue = append(queue, item{node: n, path: Path{i}})
		seen[n.Name] = true
	}

	for len(queue) > 0 {
		it := queue[0]
		queue = queue[1:]

		if it.node.Name == name {
			return it.node, it.path, true
		}
		for i, ch := range it.node.Children {
			if seen[ch.Name] {
				continue
			}
			seen[ch.Name] = true
			path := make(Path, len(it.path)+1)
			copy(path, it.path)
			path[len(it.path)] = i
			queue = append(queue, item{node: ch, path: path})
		}
	}
	return nil, nil, false
}

// ResolvePositionPath finds the position path from start down to the first
// node named name, by breadth-first search. A nil start searches the whole
// tree. Reports false when the reachable structure is exhausted without a
// match.
func (t *Tree) ResolvePositionPath(name string, start *Node) (Path, bool) {
	_, pos, ok := t.search(name, start)
	return pos, ok
}

// ResolveNamePath replays a previously resolved position path from start and
// reads off the node names along it, ending with the target's own name. It
// never searches: it trusts the caller that the path matches the current
// structure. Replaying a path computed against an older structure yields
// either wrong names or an out-of-range failure, reported as false.
func (t *Tree) ResolveNamePath(pos Path, start *Node) ([]string, bool) {
	names := make([]string, 0, len(pos))
	level := t.level(start)
	for _, idx := range pos {
		if idx < 0 || idx >= len(level) {
			return nil, false
		}
		n := level[idx]
		names = append(names, n.Name)
		level = n.Children
	}
	return names, true
}

// nodeAt walks a position path from start and returns the node it lands on.
func (t *Tree) nodeAt(pos Path, start *Node) (*Node, bool) {
	var node *Node
	level := t.level(start)
	for _, idx := range pos {
		if idx < 0 || idx >= len(level) {
			return nil, false
		}
		node = level[idx]
		level = node.Children
	}
	if node == nil {
		return nil, false
	}
	return node, true
}

// Trace resolves the ordered sequence of names from start down to and
// including name: a position-path search followed by a name-path replay.
func (t *Tree) Trace(name string, start *Node) ([]string, bool) {
	pos, ok := t.ResolvePositionPath(name, start)
	if !ok {
		return nil, false
	}
	return t.ResolveNamePath(pos, start)
}
