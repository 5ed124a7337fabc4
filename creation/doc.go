// Package creation implements the scoped construction context used to build
// graph models with terse calls.
//
// A Stack holds nested frames. Each frame carries three attribute default
// sets (nodes, links, graph), per-label caches of the nodes resolved in it,
// and an optional enclosing graph that receives new mutable nodes and
// subgraphs. When a frame with an enclosing graph is closed, its graph
// defaults are merged into that graph.
//
// # Scopes
//
// Use opens a scope, runs a function and always closes the scope again,
// including when the function returns an error or panics:
//
//	g := model.NewMutableGraph()
//	s := creation.NewStack()
//	_, err := creation.Use(s, g, func(f *creation.Frame) (struct{}, error) {
//	    f.NodeAttrs().Set("color", "red")
//	    f.GraphAttrs().Set("rankdir", "LR")
//	    a := s.ResolveMutableNode("a") // red, added to g
//	    s.Connect(a, s.ResolveMutableNode("b"))
//	    return struct{}{}, nil
//	})
//
// Resolving the same label twice in one frame yields the same node. Node
// defaults are copied when a label is first resolved; changing them later
// does not touch nodes that already exist.
//
// # Isolation
//
// A Stack is owned by one call path and does no locking. Give each goroutine
// its own Stack and carry it in a context.Context with WithStack:
//
//	ctx = creation.WithStack(ctx, creation.NewStack())
//	creation.UseContext(ctx, g, func(ctx context.Context, f *creation.Frame) (int, error) {
//	    n := creation.FromContext(ctx).ResolveNode("a")
//	    ...
//	})
//
// Without a stack, or with an empty one, every resolve call falls back to
// plain construction: nothing is cached and no defaults are applied.
package creation
