// Package graphscope builds in-memory graph models with terse, context-driven
// calls.
//
// A context carries a creation stack. Scopes opened on it decide which graph
// new nodes and subgraphs land in, deduplicate nodes by label and hand out
// attribute defaults, so construction code does not have to thread any of
// that through its calls.
//
// # Getting Started
//
// Attach a stack to a context, then build inside a scope:
//
//	ctx := graphscope.NewContext(context.Background())
//	g := model.NewMutableGraph().SetDirected(true)
//
//	_, err := graphscope.Use(ctx, g, func(ctx context.Context, f *creation.Frame) (struct{}, error) {
//		f.NodeAttrs().Set("shape", "box")
//		f.GraphAttrs().Set("rankdir", "LR")
//
//		api := graphscope.MutNode(ctx, "api")
//		graphscope.Connect(ctx, api, graphscope.MutNode(ctx, "db"))
//		graphscope.Connect(ctx, graphscope.MutNode(ctx, "api"), graphscope.MutNode(ctx, "cache"))
//		return struct{}{}, nil
//	})
//
// "api" is resolved twice and yields one node. Both nodes are boxes, and the
// graph receives rankdir=LR when the scope closes.
//
// # Scopes
//
// Scopes nest. Each scope has its own defaults and its own node caches, and
// is bound to at most one graph. Closing a scope merges its graph defaults
// into that graph; when several scopes close on the same graph the one
// closed last wins for a given key.
//
// Scopes are closed on every exit path. A failing body is reported as a
// *creation.Error wrapping the original error, and a failure while closing
// the scope is attached to it rather than replacing it.
//
// # Without a Scope
//
// Every helper works without an open scope or without a stack at all. It
// then behaves like the plain model constructors: no caching, no defaults,
// no graph registration. Only Get reports ErrNoActiveScope.
//
// # Concurrency
//
// A stack belongs to one call path. Call NewContext once per goroutine;
// stacks are never shared and never locked.
//
// # Configuration
//
// NewContextFromConfig loads a graphscope.yaml file (see package config)
// that can bound scope nesting, set the log level, switch on OpenTelemetry
// tracing and metrics and seed default attributes for every scope.
package graphscope
