/*
Package linknet models the spanning-tree topology of a store-and-forward
messaging network and resolves hop paths between its peers.

A Network owns one topology tree plus a registry of every known peer name.
The tree (package tree) does the structural work: breadth-first path
discovery, position-path replay, subtree detach and graft. The Network
layers the two guarantees the tree deliberately does not give: global name
uniqueness, enforced at every attach, and memoization of resolved routes so
repeated traces replay a handful of child indices instead of re-searching
the whole tree.

# Usage

	net, err := linknet.New()
	if err != nil {
		log.Fatal(err)
	}

	net.AttachToSelf("hubA", nil)
	net.AttachToName("hubA", "leafA", nil)

	hops, err := net.Trace("leafA")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(hops) // [hubA leafA]

Topologies can also be seeded from literals (package dsl) or from a YAML
topology document (package topofile) and handed over with WithTree.

# Consistency contract

The Network's registry and route cache mirror the tree it owns. Mutating
that tree directly through Tree() bypasses both; call Resync afterwards,
or every subsequent answer is undefined. Detaching a peer drops it and all
of its descendants from the registry and invalidates every cached route,
since surviving routes may pass through shifted positions.

The Network is single-writer and not safe for concurrent use. Callers who
need sharing must serialize access to the whole instance; a structural
mutation and the cache update it implies have to be observed together.
*/
package linknet
