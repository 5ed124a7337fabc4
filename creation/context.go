package creation

import "context"

// stackKey is an unexported type to prevent collisions with context keys from other packages.
type stackKey struct{}

// WithStack returns a new context carrying s.
func WithStack(ctx context.Context, s *Stack) context.Context {
	return context.WithValue(ctx, stackKey{}, s)
}

// FromContext returns the stack carried by ctx, or nil. A nil stack is
// valid: it behaves as an empty one.
func FromContext(ctx context.Context) *Stack {
	if ctx == nil {
		return nil
	}
	s, _ := ctx.Value(stackKey{}).(*Stack)
	return s
}
