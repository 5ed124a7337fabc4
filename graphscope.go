package graphscope

import (
	"context"
	"fmt"

	"github.com/zero-day-ai/graphscope/config"
	"github.com/zero-day-ai/graphscope/creation"
	"github.com/zero-day-ai/graphscope/model"
)

// NewContext returns a copy of ctx carrying a new, empty creation stack.
func NewContext(ctx context.Context, opts ...Option) context.Context {
	return creation.WithStack(ctx, creation.NewStack(opts...))
}

// NewContextFromConfig loads the configuration at path (a file, or a
// directory holding graphscope.yaml) and returns a context carrying a stack
// configured from it. Options are applied after the configuration.
func NewContextFromConfig(ctx context.Context, path string, opts ...Option) (context.Context, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load graphscope config: %w", err)
	}
	return NewContext(ctx, append([]Option{WithConfig(cfg)}, opts...)...), nil
}

// StackFrom returns the stack carried by ctx, or nil.
func StackFrom(ctx context.Context) *creation.Stack {
	return creation.FromContext(ctx)
}

// Begin opens a scope bound to g (nil for a detached scope).
// Prefer Use, which always closes the scope.
func Begin(ctx context.Context, g creation.Graph) (*creation.Frame, error) {
	return creation.FromContext(ctx).Begin(g)
}

// End closes the innermost scope. It is a no-op when no scope is open.
func End(ctx context.Context) error {
	return creation.FromContext(ctx).End()
}

// Current returns the innermost open scope, if any.
func Current(ctx context.Context) (*creation.Frame, bool) {
	return creation.FromContext(ctx).Current()
}

// Get returns the innermost open scope or an error wrapping ErrNoActiveScope.
func Get(ctx context.Context) (*creation.Frame, error) {
	return creation.FromContext(ctx).Get()
}

// Use opens a scope bound to g, runs fn and closes the scope on every exit path.
func Use[T any](ctx context.Context, g creation.Graph, fn func(context.Context, *creation.Frame) (T, error)) (T, error) {
	return creation.UseContext(ctx, g, fn)
}

// Node resolves an immutable node snapshot for label.
func Node(ctx context.Context, label model.Label) model.Node {
	return creation.FromContext(ctx).ResolveNode(label)
}

// MutNode resolves a shared mutable node for label.
func MutNode(ctx context.Context, label model.Label) *model.MutableNode {
	return creation.FromContext(ctx).ResolveMutableNode(label)
}

// MutGraph creates a graph, registered as a subgraph of the graph bound to
// the innermost scope if there is one.
func MutGraph(ctx context.Context) *model.MutableGraph {
	return creation.FromContext(ctx).ResolveSubgraph()
}

// Link creates a link carrying the innermost scope's link defaults.
func Link(ctx context.Context, from, to model.Endpoint) *model.Link {
	return creation.FromContext(ctx).ResolveLink(from, to)
}

// Connect creates a link from from to to and attaches it to from.
func Connect(ctx context.Context, from *model.MutableNode, to model.Endpoint) *model.Link {
	return creation.FromContext(ctx).Connect(from, to)
}
