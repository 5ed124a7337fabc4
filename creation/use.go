package creation

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Use opens a scope on s bound to g, runs fn and closes the scope on every
// exit path, including panics. A failure of fn is returned as a KindScopeBody
// *Error wrapping the original; a failure while closing the scope is
// attached as Cleanup and never hides the failure of fn.
func Use[T any](s *Stack, g Graph, fn func(*Frame) (T, error)) (T, error) {
	return use(context.Background(), s, g, "creation.Use", func(_ context.Context, f *Frame) (T, error) {
		return fn(f)
	})
}

// UseContext is Use for the stack carried by ctx. The context handed to fn
// carries the scope span.
func UseContext[T any](ctx context.Context, g Graph, fn func(context.Context, *Frame) (T, error)) (T, error) {
	s := FromContext(ctx)
	if s == nil {
		var zero T
		return zero, newNilStackError("creation.UseContext")
	}
	return use(ctx, s, g, "creation.UseContext", fn)
}

func use[T any](ctx context.Context, s *Stack, g Graph, op string, fn func(context.Context, *Frame) (T, error)) (result T, err error) {
	f, err := s.Begin(g)
	if err != nil {
		return result, err
	}

	ctx, span := s.spanTracer().Start(ctx, "graphscope.scope", trace.WithAttributes(
		attribute.String("graphscope.frame_id", f.id),
		attribute.Int("graphscope.depth", f.depth),
		attribute.String("graphscope.graph_id", graphID(f.graph)),
	))

	defer func() {
		defer span.End()

		endErr := s.endThrough(f)
		if endErr != nil {
			span.AddEvent("scope cleanup failed", trace.WithAttributes(
				attribute.String("error", endErr.Error()),
			))
		}

		switch {
		case err != nil:
			err = newScopeBodyError(op, err, endErr)
		case endErr != nil:
			var zero T
			result = zero
			err = newCleanupError(op, endErr)
		}

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}()

	return fn(ctx, f)
}
