package linknet

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/tbraz/linknet/pkg/tree"
)

// ErrNotFound is returned when a peer name is not known to the network.
var ErrNotFound = errors.New("peer not found")

// ErrDuplicateNode is returned when a name is registered twice: fatal when
// discovered at construction or Resync, a rejected no-op at attach time.
var ErrDuplicateNode = errors.New("duplicate node name")

// entry records what the network knows about a peer. The peer exists as
// long as the entry does; pos is non-nil only once a route from the
// implicit root has been memoized.
type entry struct {
	pos tree.Path
}

func (e entry) routed() bool {
	return e.pos != nil
}

// Network owns one topology tree plus the peer registry and route cache
// kept consistent with it.
type Network struct {
	tree    *tree.Tree
	seen    map[string]entry
	memoize bool
	logger  *slog.Logger
}

// Option defines a functional option for configuring the Network.
type Option func(*Network)

// WithTree seeds the network with an existing tree. The network takes
// ownership and validates global name uniqueness during construction.
func WithTree(t *tree.Tree) Option {
	return func(n *Network) {
		n.tree = t
	}
}

// WithoutMemoize disables route caching; every Trace performs a full
// breadth-first search.
func WithoutMemoize() Option {
	return func(n *Network) {
		n.memoize = false
	}
}

// WithLogger sets a custom structured logger for the network.
func WithLogger(logger *slog.Logger) Option {
	return func(n *Network) {
		n.logger = logger
	}
}

// New initializes a Network. Memoization is on by default. When a seed tree
// is supplied, every descendant name is walked once and construction fails
// with ErrDuplicateNode if any name occurs more than once; this is the
// system's only structural validation and is intentionally paid here rather
// than on every query.
func New(opts ...Option) (*Network, error) {
	n := &Network{memoize: true}
	for _, opt := range opts {
		opt(n)
	}
	if n.logger == nil {
		n.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if n.tree == nil {
		n.tree = tree.New()
	}
	if err := n.Resync(); err != nil {
		return nil, err
	}
	return n, nil
}

// Tree exposes the owned topology tree for direct structural work. Any
// mutation made through it bypasses the registry and route cache; Resync
// must be called before the network is queried again.
func (n *Network) Tree() *tree.Tree {
	return n.tree
}

// Resync rebuilds the peer registry from the current tree state and clears
// every cached route. Fails with ErrDuplicateNode if the tree holds the
// same name twice; the registry is left untouched in that case.
func (n *Network) Resync() error {
	seen := make(map[string]entry)
	for _, name := range n.tree.DescendantNames(nil) {
		if _, dup := seen[name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateNode, name)
		}
		seen[name] = entry{}
	}
	n.seen = seen
	return nil
}

// HasPeer reports whether name is known to the network. This is a registry
// lookup; the tree is not searched.
func (n *Network) HasPeer(name string) bool {
	_, ok := n.seen[name]
	return ok
}

// AttachToSelf adds name as a new top-level peer, with an optional
// pre-built subtree beneath it.
func (n *Network) AttachToSelf(name string, sub *tree.Node) error {
	return n.attach("", name, sub)
}

// AttachToName adds name as a child of the named parent, with an optional
// pre-built subtree beneath it. Fails if the parent is unknown to the tree.
func (n *Network) AttachToName(parent, name string, sub *tree.Node) error {
	return n.attach(parent, name, sub)
}

func (n *Network) attach(parent, name string, sub *tree.Node) error {
	if n.HasPeer(name) {
		n.logger.Warn("attach rejected", "name", name, "reason", "already known")
		return fmt.Errorf("%w: %q", ErrDuplicateNode, name)
	}
	if _, err := n.tree.Insert(parent, name, sub); err != nil {
		return fmt.Errorf("attach %q: %w", name, err)
	}
	if sub != nil {
		// A bulk import may carry many new names; registering them in
		// one resync pass is cheaper than walking the subtree here.
		return n.Resync()
	}
	n.seen[name] = entry{}
	n.logger.Debug("peer attached", "name", name, "parent", parent)
	return nil
}

// Detach removes name and its entire subtree from the network and returns
// the descendant names that went with it, not including name itself.
// Every cached route is invalidated: surviving routes may pass through
// positions the removal has shifted.
func (n *Network) Detach(name string) ([]string, error) {
	if !n.HasPeer(name) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	sub, ok := n.tree.Remove(name, nil)
	if !ok {
		n.logger.Error("detach: registry name missing from tree", "name", name)
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	descendants := n.tree.DescendantNames(sub)
	delete(n.seen, name)
	for _, d := range descendants {
		delete(n.seen, d)
	}
	for k := range n.seen {
		n.seen[k] = entry{}
	}
	n.logger.Debug("peer detached", "name", name, "split", len(descendants))
	return descendants, nil
}

// Trace returns the hop path from the implicit root down to and including
// name. With memoization on, a cached position path is replayed by direct
// indexing; otherwise a breadth-first search resolves the route and, on
// success, caches it for the next call.
func (n *Network) Trace(name string) ([]string, error) {
	if e, ok := n.seen[name]; ok && n.memoize && e.routed() {
		if names, ok := n.tree.ResolveNamePath(e.pos, nil); ok {
			return names, nil
		}
		// The cached route no longer replays; the tree was mutated
		// behind the registry without a Resync. Drop it and re-search.
		n.logger.Warn("trace: cached route failed to replay", "name", name)
		n.seen[name] = entry{}
	}

	pos, ok := n.tree.ResolvePositionPath(name, nil)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	names, ok := n.tree.ResolveNamePath(pos, nil)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if n.memoize {
		if _, known := n.seen[name]; known {
			n.seen[name] = entry{pos: pos}
		}
	}
	return names, nil
}

// HopCount returns the length of Trace(name): the peer's depth from the
// implicit root plus one.
func (n *Network) HopCount(name string) (int, error) {
	names, err := n.Trace(name)
	if err != nil {
		return 0, err
	}
	return len(names), nil
}
