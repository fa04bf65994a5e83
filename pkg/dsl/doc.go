/*
Package dsl provides a Go DSL for constructing topologies programmatically.

It lets tests and embedding programs describe a spanning tree as nested Go
literals instead of loading a topology file, with the compiler checking the
shape. This is particularly useful for unit tests and dynamic topology
generation.

Example usage:

	t := dsl.New().
		Peer("hubA",
			dsl.N("lhubA",
				dsl.N("lleafA"),
				dsl.N("lleafB"),
			),
			dsl.N("leafA"),
		).
		Peer("hubB",
			dsl.N("leafAA"),
		).
		Build()

	names, _ := t.Trace("lleafB", nil) // [hubA lhubA lleafB]
*/
package dsl
