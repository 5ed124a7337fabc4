// Package model defines the graph types built through a creation scope:
// immutable node snapshots, shared mutable nodes, links and mutable graphs.
//
// The types carry attributes but do not interpret them. Rendering, layout
// and serialization are left to consumers.
//
// # Node Representations
//
// A Node is a value. Builder methods such as With return a new Node and
// leave the receiver untouched, so a snapshot handed out once keeps its
// attributes for good:
//
//	a := model.NewNode("a").With(attr.New("color", "red"))
//	b := a.With(attr.New("color", "blue")) // a is still red
//
// A MutableNode is a shared handle. Every holder of the pointer observes
// later changes:
//
//	n := model.NewMutableNode("a")
//	n.Attrs().Set("shape", "box")
//
// # Graphs
//
// A MutableGraph owns its nodes and subgraphs in insertion order and carries
// its own graph-level attribute set. It satisfies the capability a creation
// scope needs from an enclosing graph.
package model
